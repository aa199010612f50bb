package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the page snapshot.
type RenderOptions struct {
	// Theme carries resolved go-theme tokens, partials and asset URLs. Nil
	// means renderers use their built-in styling.
	Theme *theme.RendererConfig
	// Title overrides the document title used by HTML renderers.
	Title string
	// HideExamples suppresses the examples block.
	HideExamples bool
}
