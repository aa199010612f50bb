// Package plain provides the text and JSON renderers used by the CLI and by
// scripts consuming generated names.
package plain
