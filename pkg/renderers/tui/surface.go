package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Surface prints controller updates to a terminal.
type Surface struct {
	out    io.Writer
	styles Styles
	last   string
	shown  bool
}

var _ form.Surface = (*Surface)(nil)

// NewSurface returns a Surface writing to out.
func NewSurface(out io.Writer, styles Styles) *Surface {
	return &Surface{out: out, styles: styles}
}

func (s *Surface) ShowEntries(entries []model.Summary) {
	for _, entry := range entries {
		line := "  " + s.styles.Label.Render(entry.Name) + " " + s.styles.Muted.Render("("+entry.ID+")")
		if entry.Description != "" {
			line += "\n    " + s.styles.Muted.Render(entry.Description)
		}
		s.println(line)
	}
}

func (s *Surface) ShowForm(view form.View) {
	s.reset()
	s.println(s.styles.Title.Render(view.Entry.Name))
	if view.Entry.Description != "" {
		s.println(s.styles.Muted.Render(view.Entry.Description))
	}
	s.println(s.styles.Muted.Render("Template: ") + view.Template)
}

func (s *Surface) Hide() {
	s.reset()
}

// ShowOutput prints the live output whenever it changes. The first output of
// a form is always printed, even when empty.
func (s *Surface) ShowOutput(output string) {
	if s.shown && output == s.last {
		return
	}
	s.last = output
	s.shown = true
	s.println(s.styles.Label.Render("Output:") + " " + s.styles.Output.Render(output))
}

func (s *Surface) ShowExamples(examples []string) {
	if len(examples) == 0 {
		return
	}
	s.println(s.styles.Label.Render("Examples:"))
	for _, example := range examples {
		s.println("  - " + s.styles.Example.Render(example))
	}
}

func (s *Surface) Warn(message string) {
	s.println(s.styles.Warning.Render(message))
}

func (s *Surface) reset() {
	s.last = ""
	s.shown = false
}

func (s *Surface) println(line string) {
	_, _ = fmt.Fprintln(s.out, strings.TrimRight(line, "\n"))
}
