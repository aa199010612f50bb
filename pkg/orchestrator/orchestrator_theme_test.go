package orchestrator

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-namegen/pkg/render"
	"github.com/goliatone/go-namegen/pkg/renderers/vanilla"
	"github.com/goliatone/go-namegen/pkg/testsupport"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	cat := testsupport.Catalog()
	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "default-theme", "default-variant"),
	)

	_, err := orch.Generate(context.Background(), Request{
		Catalog:      &cat,
		EntryID:      "bucket",
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != selection.Theme {
		t.Fatalf("theme name mismatch: want %s, got %s", selection.Theme, cfg.Theme)
	}
	if cfg.Variant != selection.Variant {
		t.Fatalf("theme variant mismatch: want %s, got %s", selection.Variant, cfg.Variant)
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.Partials[vanilla.PagePartial]; got != vanilla.PageTemplate {
		t.Fatalf("partials not merged with fallbacks: want %s, got %s", vanilla.PageTemplate, got)
	}
	if cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("tokens not propagated")
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestOrchestrator_ThemeDefaultsAndVariants(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			vanilla.PagePartial: "themes/acme/page.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				vanilla.StylesheetAsset: "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						vanilla.StylesheetAsset: "theme.dark.css",
					},
				},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	cat := testsupport.Catalog()
	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector, "acme", "dark"),
	)
	if _, err := orch.Generate(context.Background(), Request{Catalog: &cat, EntryID: "bucket"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("expected default theme selection, got %+v", selector.calls[0])
	}
	cfg := renderer.options.Theme
	if cfg.Partials[vanilla.PagePartial] != "themes/acme/page.tmpl" {
		t.Fatalf("expected manifest template override, got %s", cfg.Partials[vanilla.PagePartial])
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if got := cfg.AssetURL(vanilla.StylesheetAsset); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
}

func TestOrchestrator_ThemeSelectorError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unknown theme")}
	cat := testsupport.Catalog()
	orch := New(WithThemeSelector(selector, "", ""))

	_, err := orch.Generate(context.Background(), Request{Catalog: &cat, EntryID: "bucket"})
	if err == nil {
		t.Fatalf("expected theme selection error")
	}
}

func TestOrchestrator_ExplicitThemeSkipsSelector(t *testing.T) {
	selector := &stubThemeSelector{}
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	cat := testsupport.Catalog()
	orch := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()), WithThemeSelector(selector, "acme", ""))
	explicit := &theme.RendererConfig{Theme: "explicit"}
	_, err := orch.Generate(context.Background(), Request{
		Catalog:       &cat,
		EntryID:       "bucket",
		RenderOptions: render.RenderOptions{Theme: explicit},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 0 {
		t.Fatalf("selector should not run when a theme is supplied")
	}
	if renderer.options.Theme != explicit {
		t.Fatalf("explicit theme not forwarded")
	}
}

type captureRenderer struct {
	page    render.Page
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, page render.Page, opts render.RenderOptions) ([]byte, error) {
	r.page = page
	r.options = opts
	return []byte(page.Output), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
