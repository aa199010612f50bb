package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Runner drives a form controller through terminal prompts.
type Runner struct {
	driver     PromptDriver
	out        io.Writer
	styles     Styles
	copyPrompt bool
	logger     zerolog.Logger
}

// New constructs a Runner with the survey driver and default styles.
func New(options ...Option) *Runner {
	r := &Runner{
		out:        os.Stdout,
		styles:     DefaultStyles(),
		copyPrompt: true,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r
}

// Controller builds a form controller wired to a terminal surface. Examples
// use the italic terminal marker instead of HTML tags.
func (r *Runner) Controller(catalog model.Catalog, options ...form.Option) *form.Controller {
	opts := []form.Option{
		form.WithLogger(r.logger),
		form.WithExampleOptions(engine.WithMarker(r.styles.MarkerFunc())),
	}
	opts = append(opts, options...)
	return form.New(catalog, NewSurface(r.out, r.styles), opts...)
}

// Run selects entryID (or asks for one when empty), prompts for every field
// and returns the finished session. Each answer is applied immediately, so the
// surface prints the live output after every change.
func (r *Runner) Run(ctx context.Context, ctrl *form.Controller, entryID string) (*form.Session, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}

	if entryID == "" {
		id, err := r.chooseEntry(ctx, ctrl.Entries())
		if err != nil {
			return nil, err
		}
		entryID = id
	}

	session, err := ctrl.Select(entryID)
	if err != nil {
		return nil, err
	}

	for _, desc := range session.Descriptors() {
		if err := r.promptField(ctx, session, desc); err != nil {
			return nil, err
		}
	}

	if r.copyPrompt && session.Output() != "" {
		if err := r.offerCopy(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (r *Runner) chooseEntry(ctx context.Context, entries []model.Summary) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}
	names := make([]string, len(entries))
	descriptions := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
		descriptions[i] = entry.Description
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Naming convention",
		Options:      names,
		Descriptions: descriptions,
		PageSize:     10,
		Filter:       fuzzyFilter,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(entries) {
		return "", fmt.Errorf("tui: selection %d out of range", idx)
	}
	return entries[idx].ID, nil
}

func (r *Runner) promptField(ctx context.Context, session *form.Session, desc form.Descriptor) error {
	message := desc.Label
	if desc.Required {
		message += " " + r.styles.Required.Render("*")
	}
	current := session.State(desc.Key)

	switch desc.Type {
	case model.FieldTypeDropdown:
		options := make([]string, 0, len(desc.Options)+1)
		options = append(options, desc.Prompt)
		defaultIdx := 0
		for i, opt := range desc.Options {
			options = append(options, opt.Label)
			if current.Value != "" && opt.Value == current.Value {
				defaultIdx = i + 1
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: defaultIdx,
			Filter:       fuzzyFilter,
		})
		if err != nil {
			return err
		}
		value := ""
		if idx > 0 && idx <= len(desc.Options) {
			value = desc.Options[idx-1].Value
		}
		return session.SetValue(desc.Key, value)
	case model.FieldTypeText:
		value, err := r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: current.Value,
			Help:    desc.Placeholder,
		})
		if err != nil {
			return err
		}
		return session.SetValue(desc.Key, value)
	case model.FieldTypeCheckbox:
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: current.Checked,
		})
		if err != nil {
			return err
		}
		return session.SetChecked(desc.Key, checked)
	default:
		return fmt.Errorf("tui: unsupported field type %q", desc.Type)
	}
}

func (r *Runner) offerCopy(ctx context.Context, session *form.Session) error {
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Copy output to clipboard?", Default: true})
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := session.Copy(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("copy failed")
		return r.driver.Info(ctx, r.styles.Warning.Render("Copy failed: "+err.Error()))
	}
	return r.driver.Info(ctx, r.styles.Muted.Render("Copied!"))
}

// fuzzyFilter keeps options whose text fuzzily matches the typed filter.
func fuzzyFilter(filter, value string, _ int) bool {
	if filter == "" {
		return true
	}
	return len(fuzzy.Find(filter, []string{value})) > 0
}
