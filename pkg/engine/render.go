package engine

import (
	"strings"

	"github.com/goliatone/go-namegen/pkg/model"
)

// Values maps field keys to raw values. Missing keys render as empty strings.
type Values map[string]string

// FieldState is the surface-level state of a single input.
type FieldState struct {
	Value   string `json:"value,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}

// Extract returns the raw value a field contributes to the template.
func Extract(field model.Field, state FieldState) string {
	return model.Match(field,
		func(dd model.Dropdown) string {
			for _, opt := range dd.Options {
				if opt.Value == state.Value {
					return opt.Value
				}
			}
			return ""
		},
		func(model.Text) string {
			return state.Value
		},
		func(cb model.Checkbox) string {
			if state.Checked {
				return cb.Key
			}
			return ""
		},
	)
}

// ExtractAll applies Extract to every field of the entry. Fields without a
// state use the zero state.
func ExtractAll(entry model.Entry, states map[string]FieldState) Values {
	values := make(Values, len(entry.Fields))
	for _, field := range entry.Fields {
		key := field.Base().Key
		values[key] = Extract(field, states[key])
	}
	return values
}

// RenderState extracts raw values from per-field states and renders them.
func RenderState(entry model.Entry, states map[string]FieldState) string {
	return Render(entry, ExtractAll(entry, states))
}

// Render substitutes values into the entry template and cleans the result.
// Placeholders whose key is not a declared field are left untouched.
func Render(entry model.Entry, values Values) string {
	return Clean(Substitute(entry, values))
}

// Substitute performs placeholder replacement without cleanup. Inserted
// values are never rescanned.
func Substitute(entry model.Entry, values Values) string {
	declared := make(map[string]struct{}, len(entry.Fields))
	for _, field := range entry.Fields {
		declared[field.Base().Key] = struct{}{}
	}

	template := entry.Template
	var b strings.Builder
	b.Grow(len(template))
	last := 0
	for _, ph := range model.ScanPlaceholders(template) {
		if _, ok := declared[ph.Key]; !ok {
			continue
		}
		b.WriteString(template[last:ph.Start])
		b.WriteString(values[ph.Key])
		last = ph.End
	}
	b.WriteString(template[last:])
	return b.String()
}

// Placeholders lists the keys referenced by a template in first-appearance
// order.
func Placeholders(template string) []string {
	return model.PlaceholderKeys(template)
}
