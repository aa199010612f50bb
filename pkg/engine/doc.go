// Package engine turns a catalog entry plus a set of field values into the
// final identifier string. Rendering substitutes `{{KEY}}` placeholders in a
// single left-to-right scan, then runs a fixed chain of cleanup passes that
// remove the separators and decorative brackets left behind by empty values.
// Every function is pure and safe to call on each keystroke.
package engine
