package plain

import (
	"context"

	"github.com/goliatone/go-namegen/pkg/render"
)

// TextRenderer emits the rendered output followed by a newline.
type TextRenderer struct{}

var _ render.Renderer = TextRenderer{}

// NewText returns the text renderer.
func NewText() TextRenderer {
	return TextRenderer{}
}

func (TextRenderer) Name() string {
	return "text"
}

func (TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (TextRenderer) Render(ctx context.Context, page render.Page, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(page.Output + "\n"), nil
}
