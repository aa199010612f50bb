package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	examplePolicyOnce sync.Once
	examplePolicy     *bluemonday.Policy
)

// sanitizeExample keeps the italic markers produced for text fields and
// escapes everything else.
func sanitizeExample(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(exampleSanitizer().Sanitize(trimmed))
}

func exampleSanitizer() *bluemonday.Policy {
	examplePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("i")
		examplePolicy = policy
	})
	return examplePolicy
}
