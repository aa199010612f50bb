package form

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Session tracks the input state of one selected entry. It is not safe for
// concurrent use.
type Session struct {
	entry     model.Entry
	states    map[string]engine.FieldState
	output    string
	examples  []string
	surface   Surface
	clipboard Clipboard
	logger    zerolog.Logger
}

// Entry returns the selected entry.
func (s *Session) Entry() model.Entry {
	return s.entry
}

// Descriptors describes the entry's inputs.
func (s *Session) Descriptors() []Descriptor {
	return Describe(s.entry)
}

// Set replaces the state of one field and recomputes the output.
func (s *Session) Set(key string, state engine.FieldState) error {
	if _, err := s.field(key); err != nil {
		return err
	}
	s.states[key] = state
	s.recompute()
	return nil
}

// SetValue updates a dropdown selection or text input.
func (s *Session) SetValue(key, value string) error {
	field, err := s.field(key)
	if err != nil {
		return err
	}
	if field.Type() == model.FieldTypeCheckbox {
		return fmt.Errorf("%w: %s is a checkbox", ErrFieldType, key)
	}
	return s.Set(key, engine.FieldState{Value: value})
}

// SetChecked toggles a checkbox.
func (s *Session) SetChecked(key string, checked bool) error {
	field, err := s.field(key)
	if err != nil {
		return err
	}
	if field.Type() != model.FieldTypeCheckbox {
		return fmt.Errorf("%w: %s is a %s", ErrFieldType, key, field.Type())
	}
	return s.Set(key, engine.FieldState{Checked: checked})
}

// State returns the current state of a field.
func (s *Session) State(key string) engine.FieldState {
	return s.states[key]
}

// States returns a copy of every recorded field state.
func (s *Session) States() map[string]engine.FieldState {
	out := make(map[string]engine.FieldState, len(s.states))
	for key, state := range s.states {
		out[key] = state
	}
	return out
}

// Values returns the raw value mapping handed to the engine.
func (s *Session) Values() engine.Values {
	return engine.ExtractAll(s.entry, s.states)
}

// Output returns the last rendered string.
func (s *Session) Output() string {
	return s.output
}

// Examples returns the examples generated when the entry was selected.
func (s *Session) Examples() []string {
	return append([]string(nil), s.examples...)
}

// Copy sends the rendered output, and nothing else, to the clipboard.
func (s *Session) Copy(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.clipboard == nil {
		return ErrClipboardDisabled
	}
	if err := s.clipboard.WriteAll(s.output); err != nil {
		s.logger.Warn().Err(err).Msg("copy to clipboard failed")
		return fmt.Errorf("form: copy: %w", err)
	}
	s.logger.Debug().Int("bytes", len(s.output)).Msg("output copied")
	return nil
}

func (s *Session) field(key string) (model.Field, error) {
	field, ok := s.entry.Field(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return field, nil
}

func (s *Session) recompute() {
	s.output = engine.RenderState(s.entry, s.states)
	s.surface.ShowOutput(s.output)
}
