package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// PageTemplate is the entry point rendered for every page.
	PageTemplate   = "templates/page.tmpl"
	StylesheetName = "namegen-vanilla.css"
	// PagePartial is the go-theme template key that replaces PageTemplate.
	PagePartial = "namegen.page"
	// StylesheetAsset is the go-theme asset key for an external stylesheet.
	StylesheetAsset = "namegen.stylesheet"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded CSS so callers can serve or copy it.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
