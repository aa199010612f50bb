package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoEntries is returned when the catalog has nothing to select.
	ErrNoEntries = errors.New("tui: catalog has no entries")
)
