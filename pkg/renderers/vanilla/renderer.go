package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-namegen/pkg/render"
	rendertemplate "github.com/goliatone/go-namegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-namegen/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineCSS        bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStylesheet toggles embedding the default stylesheet in the page.
// It is on by default.
func WithInlineStylesheet(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineCSS = enabled
	}
}

// Renderer produces a standalone HTML snapshot of a form page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	inlineCSS bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineCSS: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, inlineCSS: cfg.inlineCSS}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the page template with the snapshot and theme data.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]any{
		"title":    pageTitle(page, options),
		"warning":  page.Warning,
		"entry":    page.Entry,
		"entries":  buildEntryViews(page),
		"template": page.Template,
		"fields":   buildFieldViews(page),
		"output":   page.Output,
		"classes":  chromeClasses(),
	}
	if !options.HideExamples {
		data["examples"] = sanitizeExamples(page.Examples)
	}
	if r.inlineCSS {
		data["stylesheet"] = defaultStylesheet()
	}
	pageTemplate := PageTemplate
	if cfg := options.Theme; cfg != nil {
		if partial := cfg.Partials[PagePartial]; partial != "" {
			pageTemplate = partial
		}
		data["theme"] = map[string]any{
			"name":    cfg.Theme,
			"variant": cfg.Variant,
			"style":   render.CSSVarsStyle(cfg.CSSVars),
		}
		if cfg.AssetURL != nil {
			data["stylesheetURL"] = cfg.AssetURL(StylesheetAsset)
		}
	}

	result, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
