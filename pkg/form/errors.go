package form

import "errors"

var (
	// ErrEntryNotFound is returned when Select receives an unknown id.
	ErrEntryNotFound = errors.New("form: entry not found")
	// ErrUnknownField is returned for keys not declared by the entry.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrFieldType is returned when a change does not fit the field variant,
	// e.g. a text value for a checkbox.
	ErrFieldType = errors.New("form: value does not match field type")
	// ErrNoSession is returned by controller helpers before any entry is selected.
	ErrNoSession = errors.New("form: no entry selected")
	// ErrClipboardDisabled is returned by Copy when no clipboard is configured.
	ErrClipboardDisabled = errors.New("form: clipboard disabled")
)
