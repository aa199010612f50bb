package catalog

import (
	_ "embed"

	"github.com/goliatone/go-namegen/pkg/model"
)

// FallbackWarning is shown whenever the built-in catalog replaces the
// configured one.
const FallbackWarning = "Warning: Default fallback data loaded. Example data is being used. " +
	"Behavior is expected when running locally, if not local check the catalog source and its contents."

//go:embed fallback.json
var fallbackDocument []byte

// Fallback returns the built-in two entry catalog. The embedded document is
// validated by tests, so a decode failure here is a build defect.
func Fallback() model.Catalog {
	catalog, err := Decode(fallbackDocument, BuiltinSource().Location())
	if err != nil {
		panic(err)
	}
	return catalog
}

// FallbackDocument returns a copy of the embedded fallback JSON.
func FallbackDocument() []byte {
	return append([]byte(nil), fallbackDocument...)
}
