package gotemplate

import (
	"html"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-namegen/pkg/model"
)

// defaultFilters are installed on every engine. go-template already ships
// "trim".
func defaultFilters() map[string]any {
	return map[string]any{
		"placeholders": pongo2.FilterFunction(filterPlaceholders),
	}
}

// filterPlaceholders escapes a naming template and wraps every `{{KEY}}` in a
// span so the raw template can be shown next to the form.
func filterPlaceholders(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	tpl := in.String()
	var b strings.Builder
	last := 0
	for _, ph := range model.ScanPlaceholders(tpl) {
		b.WriteString(html.EscapeString(tpl[last:ph.Start]))
		b.WriteString(`<span class="ng-placeholder" data-key="`)
		b.WriteString(html.EscapeString(ph.Key))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(tpl[ph.Start:ph.End]))
		b.WriteString(`</span>`)
		last = ph.End
	}
	b.WriteString(html.EscapeString(tpl[last:]))
	return pongo2.AsSafeValue(b.String()), nil
}
