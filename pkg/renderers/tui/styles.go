package tui

import (
	"github.com/charmbracelet/lipgloss"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Styles controls how terminal output is decorated.
type Styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Output   lipgloss.Style
	Example  lipgloss.Style
	Marker   lipgloss.Style
	Warning  lipgloss.Style
	Required lipgloss.Style
}

// Theme token names read by StylesFromTheme.
const (
	TokenBrand   = "brand"
	TokenMuted   = "muted"
	TokenWarning = "warning"
	TokenDanger  = "danger"
)

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return stylesFromColors(map[string]string{
		TokenBrand:   "#2563eb",
		TokenMuted:   "#6b7280",
		TokenWarning: "#d97706",
		TokenDanger:  "#dc2626",
	})
}

// StylesFromTheme overrides the default palette with go-theme tokens.
func StylesFromTheme(cfg *theme.RendererConfig) Styles {
	colors := map[string]string{
		TokenBrand:   "#2563eb",
		TokenMuted:   "#6b7280",
		TokenWarning: "#d97706",
		TokenDanger:  "#dc2626",
	}
	if cfg != nil {
		for key := range colors {
			if value := cfg.Tokens[key]; value != "" {
				colors[key] = value
			}
		}
	}
	return stylesFromColors(colors)
}

func stylesFromColors(colors map[string]string) Styles {
	color := func(key string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: colors[key], Dark: colors[key]}
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(color(TokenBrand)),
		Muted:    lipgloss.NewStyle().Foreground(color(TokenMuted)),
		Label:    lipgloss.NewStyle().Bold(true),
		Output:   lipgloss.NewStyle().Bold(true).Foreground(color(TokenBrand)),
		Example:  lipgloss.NewStyle().Foreground(color(TokenMuted)),
		Marker:   lipgloss.NewStyle().Italic(true),
		Warning:  lipgloss.NewStyle().Foreground(color(TokenWarning)),
		Required: lipgloss.NewStyle().Foreground(color(TokenDanger)),
	}
}

// MarkerFunc renders text-field stand-ins in examples with the Marker style
// instead of HTML tags.
func (s Styles) MarkerFunc() engine.MarkerFunc {
	return func(field model.Text) string {
		return s.Marker.Render(field.Label)
	}
}
