// Package template defines the template engine seam used by HTML renderers.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
