package form

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard receives the rendered output on copy.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("form: system clipboard unsupported on this platform")
	}
	return clipboard.WriteAll(text)
}
