package orchestrator

import (
	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/render"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom catalog loader.
func WithLoader(loader catalog.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithDefaultSource sets the catalog source used when a request names none.
func WithDefaultSource(src catalog.Source) Option {
	return func(o *Orchestrator) {
		o.defaultSource = src
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger passed to the loader result and form sessions.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithExampleOptions forwards options to example generation.
func WithExampleOptions(opts ...engine.ExampleOption) Option {
	return func(o *Orchestrator) {
		o.exampleOpts = append(o.exampleOpts, opts...)
	}
}

// WithClipboard sets the clipboard used for Request.Copy. Nil disables copying.
func WithClipboard(cb form.Clipboard) Option {
	return func(o *Orchestrator) {
		o.clipboard = cb
		o.clipboardSet = true
	}
}

// WithThemeSelector registers a go-theme selector. Requests without a theme
// name fall back to defaultTheme and defaultVariant.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithThemeFallbacks overrides the partials used when a theme omits them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}
