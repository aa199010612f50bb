package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-namegen/internal/catalog/loader"
	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
	"github.com/goliatone/go-namegen/pkg/render"
	"github.com/goliatone/go-namegen/pkg/renderers/plain"
	"github.com/goliatone/go-namegen/pkg/renderers/tui"
	"github.com/goliatone/go-namegen/pkg/renderers/vanilla"
)

const defaultRendererName = "text"

// Orchestrator coordinates the pipeline from catalog source to rendered
// output. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Orchestrator struct {
	loader          catalog.Loader
	defaultSource   catalog.Source
	registry        *render.Registry
	defaultRenderer string
	logger          zerolog.Logger
	exampleOpts     []engine.ExampleOption
	clipboard       form.Clipboard
	clipboardSet    bool
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single generation.
type Request struct {
	// Source identifies the catalog document. Optional when Catalog is set;
	// when both are empty the orchestrator default source is used.
	Source catalog.Source

	// Catalog bypasses the loader when the caller already holds a catalog.
	Catalog *model.Catalog

	// Warning is shown on the page when Catalog was loaded by the caller,
	// typically catalog.Result.Warning.
	Warning string

	// EntryID selects the naming convention. Empty renders the entry list only.
	EntryID string

	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	// Values sets dropdown and text fields by key.
	Values map[string]string

	// Checked lists checkbox keys that are ticked.
	Checked []string

	// ExampleCount overrides the number of examples. Zero keeps the default,
	// negative disables examples.
	ExampleCount int

	// Copy writes the generated output to the clipboard.
	Copy bool

	// ThemeName and ThemeVariant select a go-theme manifest when a selector
	// is configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer instructions.
	RenderOptions render.RenderOptions
}

// Response bundles the rendered bytes with the data they were built from.
type Response struct {
	Body        []byte
	ContentType string
	Page        render.Page
	Catalog     catalog.Result
}

// Generate executes the load → session → render sequence and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	resp, err := o.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Execute runs a request and returns the full response.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Response{}, err
	}

	result := o.resolveCatalog(ctx, req)
	page, session, err := o.buildPage(result, req)
	if err != nil {
		return Response{}, err
	}

	if req.Copy {
		if session == nil {
			return Response{}, errors.New("orchestrator: copy requires an entry id")
		}
		if err := session.Copy(ctx); err != nil {
			return Response{}, fmt.Errorf("orchestrator: copy output: %w", err)
		}
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return Response{}, err
		}
		options.Theme = cfg
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	body, contentType, err := o.registry.Render(ctx, name, page, options)
	if err != nil {
		return Response{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Response{Body: body, ContentType: contentType, Page: page, Catalog: result}, nil
}

// Page resolves the catalog and fills the requested entry without rendering.
func (o *Orchestrator) Page(ctx context.Context, req Request) (render.Page, error) {
	if ctx == nil {
		return render.Page{}, errors.New("orchestrator: context is required")
	}
	page, _, err := o.buildPage(o.resolveCatalog(ctx, req), req)
	return page, err
}

// LoadCatalog loads src (or the default source) once, falling back to the
// built-in catalog on failure.
func (o *Orchestrator) LoadCatalog(ctx context.Context, src catalog.Source) catalog.Result {
	if src == nil {
		src = o.defaultSource
	}
	return catalog.LoadOrFallback(ctx, o.loader, src, o.logger)
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveCatalog(ctx context.Context, req Request) catalog.Result {
	if req.Catalog != nil {
		return catalog.Result{Catalog: *req.Catalog, Warning: req.Warning}
	}
	return o.LoadCatalog(ctx, req.Source)
}

func (o *Orchestrator) buildPage(result catalog.Result, req Request) (render.Page, *form.Session, error) {
	ctrl := form.New(result.Catalog, nil, o.formOptions(req)...)

	if req.EntryID == "" {
		page := render.Page{Warning: result.Warning, Entries: ctrl.Entries()}
		return page, nil, nil
	}

	session, err := ctrl.Select(req.EntryID)
	if err != nil {
		return render.Page{}, nil, fmt.Errorf("orchestrator: %w", err)
	}
	if err := applyInputs(session, req); err != nil {
		return render.Page{}, nil, err
	}

	page := render.PageFromSession(session)
	page.Warning = result.Warning
	page.Entries = ctrl.Entries()
	return page, session, nil
}

func (o *Orchestrator) formOptions(req Request) []form.Option {
	opts := []form.Option{
		form.WithLogger(o.logger),
		form.WithExampleOptions(o.exampleOpts...),
	}
	if o.clipboardSet {
		opts = append(opts, form.WithClipboard(o.clipboard))
	}
	switch {
	case req.ExampleCount < 0:
		opts = append(opts, form.WithExampleCount(0))
	case req.ExampleCount > 0:
		opts = append(opts, form.WithExampleCount(req.ExampleCount))
	}
	return opts
}

func applyInputs(session *form.Session, req Request) error {
	keys := make([]string, 0, len(req.Values))
	for key := range req.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := session.SetValue(key, req.Values[key]); err != nil {
			return fmt.Errorf("orchestrator: field %q: %w", key, err)
		}
	}
	for _, key := range req.Checked {
		if err := session.SetChecked(key, true); err != nil {
			return fmt.Errorf("orchestrator: field %q: %w", key, err)
		}
	}
	return nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	name := req.ThemeName
	if name == "" {
		name = o.defaultTheme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.defaultVariant
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	return render.ThemeConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(catalog.NewLoaderOptions(catalog.WithDefaultSources()))
	}
	if o.defaultSource == nil {
		o.defaultSource = catalog.SourceFromFile(DefaultCatalogPath)
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}
}

// DefaultCatalogPath is the catalog file read when no source is configured.
const DefaultCatalogPath = "templates.json"

// DefaultRegistry returns a registry holding the built-in renderers: "html",
// "text", "json" and "pretty".
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	html, err := vanilla.New()
	if err != nil {
		return registry, err
	}
	registry.MustRegister(html)
	registry.MustRegister(plain.NewText())
	registry.MustRegister(plain.NewJSON("  "))
	registry.MustRegister(tui.NewRenderer(nil))
	return registry, nil
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		vanilla.PagePartial: vanilla.PageTemplate,
	}
}
