package plain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/render"
)

// JSONRenderer emits a compact machine-readable document.
type JSONRenderer struct {
	indent string
}

var _ render.Renderer = JSONRenderer{}

// NewJSON returns the JSON renderer. A non-empty indent pretty-prints.
func NewJSON(indent string) JSONRenderer {
	return JSONRenderer{indent: indent}
}

type jsonDocument struct {
	ID       string        `json:"id"`
	Output   string        `json:"output"`
	Values   engine.Values `json:"values"`
	Examples []string      `json:"examples"`
	Warning  string        `json:"warning,omitempty"`
}

func (JSONRenderer) Name() string {
	return "json"
}

func (JSONRenderer) ContentType() string {
	return "application/json"
}

func (r JSONRenderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := jsonDocument{
		ID:       page.Entry.ID,
		Output:   page.Output,
		Values:   page.Values,
		Examples: page.Examples,
		Warning:  page.Warning,
	}
	if doc.Values == nil {
		doc.Values = engine.Values{}
	}
	if doc.Examples == nil || options.HideExamples {
		doc.Examples = []string{}
	}

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(doc, "", r.indent)
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: %w", err)
	}
	return append(out, '\n'), nil
}
