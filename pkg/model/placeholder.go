package model

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Placeholder is one `{{KEY}}` occurrence inside a template. Start and End
// are byte offsets covering the delimiters.
type Placeholder struct {
	Key   string
	Start int
	End   int
}

// ScanPlaceholders lists every placeholder in template order. A key may not
// contain braces; `{{{A}}` therefore yields the placeholder `{{A}}` starting at
// the second brace.
func ScanPlaceholders(template string) []Placeholder {
	var out []Placeholder
	pos := 0
	for pos < len(template) {
		open := strings.Index(template[pos:], openDelim)
		if open < 0 {
			break
		}
		start := pos + open
		rest := template[start+len(openDelim):]
		end := strings.Index(rest, closeDelim)
		if end < 0 {
			break
		}
		key := rest[:end]
		if strings.ContainsAny(key, "{}") {
			pos = start + 1
			continue
		}
		stop := start + len(openDelim) + end + len(closeDelim)
		out = append(out, Placeholder{Key: key, Start: start, End: stop})
		pos = stop
	}
	return out
}

// PlaceholderKeys lists distinct keys in first-appearance order.
func PlaceholderKeys(template string) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, ph := range ScanPlaceholders(template) {
		if _, ok := seen[ph.Key]; ok {
			continue
		}
		seen[ph.Key] = struct{}{}
		keys = append(keys, ph.Key)
	}
	return keys
}
