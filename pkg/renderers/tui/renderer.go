package tui

import (
	"bytes"
	"context"
	"html"
	"strings"

	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
	"github.com/goliatone/go-namegen/pkg/render"
)

// Renderer prints a styled, non-interactive summary of a page.
type Renderer struct {
	styles *Styles
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer returns the pretty renderer. When styles is nil the palette is
// derived from the request theme.
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

func (r *Renderer) Name() string {
	return "pretty"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	styles := StylesFromTheme(options.Theme)
	if r.styles != nil {
		styles = *r.styles
	}

	var buf bytes.Buffer
	surface := NewSurface(&buf, styles)
	if page.Warning != "" {
		surface.Warn(page.Warning)
	}
	surface.ShowForm(form.View{Entry: page.Entry, Template: page.Template, Fields: page.Fields})
	for _, desc := range page.Fields {
		surface.println("  " + styles.Label.Render(desc.Label+":") + " " + fieldDisplay(desc, page))
	}
	surface.ShowOutput(page.Output)
	if !options.HideExamples {
		examples := make([]string, 0, len(page.Examples))
		for _, example := range page.Examples {
			examples = append(examples, restyleMarkers(example, styles))
		}
		surface.ShowExamples(examples)
	}
	return buf.Bytes(), nil
}

func fieldDisplay(desc form.Descriptor, page render.Page) string {
	state := page.State(desc.Key)
	switch desc.Type {
	case model.FieldTypeCheckbox:
		if state.Checked {
			return "[x]"
		}
		return "[ ]"
	case model.FieldTypeDropdown:
		for _, opt := range desc.Options {
			if opt.Value == state.Value && state.Value != "" {
				return opt.Label + " (" + opt.Value + ")"
			}
		}
		return "-"
	default:
		if state.Value == "" {
			return "-"
		}
		return state.Value
	}
}

// restyleMarkers swaps `<i>label</i>` markers for the terminal marker style.
func restyleMarkers(example string, styles Styles) string {
	var b strings.Builder
	rest := example
	for {
		open := strings.Index(rest, "<i>")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open:], "</i>")
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		b.WriteString(styles.Marker.Render(html.UnescapeString(rest[open+3 : open+end])))
		rest = rest[open+end+4:]
	}
	b.WriteString(rest)
	return b.String()
}
