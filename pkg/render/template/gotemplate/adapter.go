package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-namegen/pkg/render/template"
)

const defaultExtension = ".tmpl"

// Option configures the adapter before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	globalData map[string]any
	engineOpts []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk. When combined with
// WithFS the directory is searched first, so it can override embedded files.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the template extension appended to bare names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions forwards raw go-template options to the underlying
// engine. They run after the adapter's own options.
func WithGoTemplateOptions(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				cfg.engineOpts = append(cfg.engineOpts, opt)
			}
		}
	}
}

// Engine satisfies template.TemplateRenderer on top of a go-template engine.
type Engine struct {
	engine *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: defaultExtension,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(defaultFilters()),
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	opts = append(opts, cfg.engineOpts...)

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: configure engine: %w", err)
	}
	return &Engine{engine: engine}, nil
}

// Render treats name as inline template content when it contains pongo2
// delimiters and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	result, err := e.engine.Render(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RenderTemplate executes a named template from the configured loaders.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	result, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RenderString executes inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	result, err := e.engine.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RegisterFilter registers a filter globally with pongo2. Filters are process
// wide, so registering an existing name is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.engine.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values every template can see.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	return e.engine.GlobalContext(data)
}
