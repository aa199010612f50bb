package namegen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/orchestrator"
	"github.com/goliatone/go-namegen/pkg/render"
)

// Request aliases orchestrator.Request for callers using the root package.
type Request = orchestrator.Request

// RenderOptions describes per-request overrides that renderers can use to
// customise their output.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the catalog at source, fills entryID with values and renders
// the result using the named renderer ("text", "json", "html" or "pretty").
func Generate(ctx context.Context, source catalog.Source, entryID, rendererName string, values map[string]string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		EntryID:  entryID,
		Renderer: rendererName,
		Values:   values,
	})
}

// GenerateHTML renders the entry as a standalone HTML page.
func GenerateHTML(ctx context.Context, source catalog.Source, entryID string, options ...orchestrator.Option) ([]byte, error) {
	return Generate(ctx, source, entryID, "html", nil, options...)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
