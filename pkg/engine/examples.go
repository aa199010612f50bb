package engine

import (
	"html"
	"math/rand/v2"

	"github.com/goliatone/go-namegen/pkg/model"
)

// DefaultExampleCount is the number of examples shown next to a form.
const DefaultExampleCount = 3

// MarkerFunc renders the stand-in used for a text field inside an example.
type MarkerFunc func(model.Text) string

// ExampleOption customises example generation.
type ExampleOption func(*exampleConfig)

type exampleConfig struct {
	rand   *rand.Rand
	marker MarkerFunc
}

// WithRand injects the random source used to pick dropdown options.
func WithRand(r *rand.Rand) ExampleOption {
	return func(cfg *exampleConfig) {
		if r != nil {
			cfg.rand = r
		}
	}
}

// WithMarker overrides the text field stand-in.
func WithMarker(marker MarkerFunc) ExampleOption {
	return func(cfg *exampleConfig) {
		if marker != nil {
			cfg.marker = marker
		}
	}
}

// ItalicMarker wraps the escaped field label in an <i> element.
func ItalicMarker(field model.Text) string {
	return "<i>" + html.EscapeString(field.Label) + "</i>"
}

// Examples renders count sample outputs. Dropdowns pick a uniformly random
// option, text fields show the marker and checkboxes are treated as checked.
func Examples(entry model.Entry, count int, opts ...ExampleOption) []string {
	if count <= 0 {
		return nil
	}
	cfg := exampleConfig{marker: ItalicMarker}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]string, 0, count)
	for range count {
		values := make(Values, len(entry.Fields))
		for _, field := range entry.Fields {
			values[field.Base().Key] = exampleValue(field, cfg)
		}
		out = append(out, Render(entry, values))
	}
	return out
}

func exampleValue(field model.Field, cfg exampleConfig) string {
	return model.Match(field,
		func(dd model.Dropdown) string {
			if len(dd.Options) == 0 {
				return ""
			}
			return dd.Options[cfg.intN(len(dd.Options))].Value
		},
		func(text model.Text) string {
			return cfg.marker(text)
		},
		func(cb model.Checkbox) string {
			return cb.Key
		},
	)
}

func (cfg exampleConfig) intN(n int) int {
	if cfg.rand != nil {
		return cfg.rand.IntN(n)
	}
	return rand.IntN(n)
}
