package render

import (
	"context"
)

// Renderer converts a Page snapshot into a byte representation (HTML, text,
// JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}
