package render

import (
	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Page is a snapshot of a selected entry ready to be rendered.
type Page struct {
	Entry    model.Summary                `json:"entry"`
	Template string                       `json:"template"`
	Fields   []form.Descriptor            `json:"fields"`
	States   map[string]engine.FieldState `json:"states,omitempty"`
	Values   engine.Values                `json:"values"`
	Output   string                       `json:"output"`
	Examples []string                     `json:"examples,omitempty"`
	Warning  string                       `json:"warning,omitempty"`
	Entries  []model.Summary              `json:"entries,omitempty"`
}

// PageFromSession captures the current state of a form session.
func PageFromSession(session *form.Session) Page {
	entry := session.Entry()
	return Page{
		Entry:    entry.Summary(),
		Template: entry.Template,
		Fields:   session.Descriptors(),
		States:   session.States(),
		Values:   session.Values(),
		Output:   session.Output(),
		Examples: session.Examples(),
	}
}

// State returns the recorded input state of a field.
func (p Page) State(key string) engine.FieldState {
	return p.States[key]
}
