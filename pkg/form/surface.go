package form

import "github.com/goliatone/go-namegen/pkg/model"

// View is the payload handed to Surface.ShowForm.
type View struct {
	Entry    model.Summary `json:"entry"`
	Template string        `json:"template"`
	Fields   []Descriptor  `json:"fields"`
}

// Surface is the display side of the controller. Implementations must not
// call back into the controller from these methods.
type Surface interface {
	ShowEntries(entries []model.Summary)
	ShowForm(view View)
	Hide()
	ShowOutput(output string)
	ShowExamples(examples []string)
	Warn(message string)
}

// NopSurface discards every update. Headless callers use it to drive a
// session without a display.
type NopSurface struct{}

func (NopSurface) ShowEntries([]model.Summary) {}
func (NopSurface) ShowForm(View)               {}
func (NopSurface) Hide()                       {}
func (NopSurface) ShowOutput(string)           {}
func (NopSurface) ShowExamples([]string)       {}
func (NopSurface) Warn(string)                 {}

var _ Surface = NopSurface{}
