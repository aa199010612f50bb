package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, page Page, _ RenderOptions) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(page.Output), nil
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "b"})
	registry.MustRegister(stubRenderer{name: "a"})

	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	out, contentType, err := registry.Render(context.Background(), "a", Page{Output: "IT-001"}, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "IT-001" || contentType != "text/plain" {
		t.Fatalf("unexpected render result %q %q", out, contentType)
	}

	_, _, err = registry.Render(context.Background(), "missing", Page{}, RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), "available: [a b]") {
		t.Fatalf("expected not found error listing names, got %v", err)
	}

	registry.MustRegister(stubRenderer{name: "broken", err: errors.New("boom")})
	if _, _, err := registry.Render(context.Background(), "broken", Page{}, RenderOptions{}); err == nil {
		t.Fatalf("expected renderer error")
	}
}

func TestPageFromSession(t *testing.T) {
	catalog := model.NewCatalog(model.Entry{
		ID:       "svc",
		Name:     "Service",
		Template: "{{Team}}-{{Name}}",
		Fields:   []model.Field{model.NewText("Team", "Team"), model.NewText("Name", "Name")},
	})
	session, err := form.New(catalog, nil, form.WithExampleCount(1)).Select("svc")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.SetValue("Name", "api"); err != nil {
		t.Fatalf("set: %v", err)
	}

	page := PageFromSession(session)
	if page.Entry.ID != "svc" || page.Output != "api" || len(page.Fields) != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.State("Name").Value != "api" || page.Values["Team"] != "" {
		t.Fatalf("unexpected state capture %+v", page)
	}
	if len(page.Examples) != 1 || page.Examples[0] != "<i>Team</i>-<i>Name</i>" {
		t.Fatalf("unexpected examples %v", page.Examples)
	}
}

func TestThemeConfig(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:      "acme",
			Tokens:    map[string]string{"brand": "#123456", "radius": "4px"},
			Templates: map[string]string{"namegen.page": "themes/acme/page.tmpl"},
			Assets: theme.Assets{
				Prefix: "/assets/acme",
				Files:  map[string]string{"namegen.stylesheet": "theme.css"},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{"brand": "#654321"},
					Assets: theme.Assets{Files: map[string]string{"namegen.script": "dark.js"}},
				},
			},
		},
	}

	cfg := ThemeConfig(selection, map[string]string{
		"namegen.page":     "builtin/page",
		"namegen.examples": "builtin",
	})
	if cfg.Tokens["brand"] != "#654321" || cfg.CSSVars["--radius"] != "4px" {
		t.Fatalf("tokens not merged: %+v", cfg.Tokens)
	}
	if cfg.Partials["namegen.page"] != "themes/acme/page.tmpl" || cfg.Partials["namegen.examples"] != "builtin" {
		t.Fatalf("partials not merged: %+v", cfg.Partials)
	}
	if got := cfg.AssetURL("namegen.stylesheet"); got != "/assets/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("namegen.script"); got != "/assets/acme/dark.js" {
		t.Fatalf("unexpected script url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
	if ThemeConfig(nil, nil) != nil {
		t.Fatalf("expected nil config for nil selection")
	}

	style := CSSVarsStyle(cfg.CSSVars)
	if style != ":root { --brand: #654321; --radius: 4px; }" {
		t.Fatalf("unexpected style %q", style)
	}
}

func TestThemeConfigVariantPrefixAppliesToVariantFilesOnly(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "acme",
			Assets: theme.Assets{
				Prefix: "/assets/base",
				Files:  map[string]string{"logo": "logo.svg"},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Assets: theme.Assets{
						Prefix: "/assets/dark",
						Files:  map[string]string{"namegen.stylesheet": "theme.css"},
					},
				},
			},
		},
	}

	cfg := ThemeConfig(selection, nil)
	want := selection.RendererTheme(nil)
	for _, key := range []string{"logo", "namegen.stylesheet", "missing"} {
		if got, exp := cfg.AssetURL(key), want.AssetURL(key); got != exp {
			t.Fatalf("asset %q: got %q want %q", key, got, exp)
		}
	}
	if got := cfg.AssetURL("logo"); got != "/assets/base/logo.svg" {
		t.Fatalf("base asset took variant prefix: %q", got)
	}
	if got := cfg.AssetURL("namegen.stylesheet"); got != "/assets/dark/theme.css" {
		t.Fatalf("unexpected variant asset %q", got)
	}
}
