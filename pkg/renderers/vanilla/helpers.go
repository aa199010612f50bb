package vanilla

import (
	"strings"

	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
	"github.com/goliatone/go-namegen/pkg/render"
)

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type fieldView struct {
	Key         string       `json:"key"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Required    bool         `json:"required"`
	ControlID   string       `json:"controlId"`
	Placeholder string       `json:"placeholder"`
	Prompt      string       `json:"prompt"`
	Value       string       `json:"value"`
	Checked     bool         `json:"checked"`
	Options     []optionView `json:"options"`
}

type entryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

func buildFieldViews(page render.Page) []fieldView {
	out := make([]fieldView, 0, len(page.Fields))
	for _, desc := range page.Fields {
		state := page.State(desc.Key)
		view := fieldView{
			Key:         desc.Key,
			Type:        string(desc.Type),
			Label:       desc.Label,
			Required:    desc.Required,
			ControlID:   controlID(desc),
			Placeholder: desc.Placeholder,
			Prompt:      desc.Prompt,
		}
		switch desc.Type {
		case model.FieldTypeDropdown:
			view.Options = make([]optionView, 0, len(desc.Options))
			for _, opt := range desc.Options {
				view.Options = append(view.Options, optionView{
					Value:    opt.Value,
					Label:    opt.Label,
					Selected: opt.Value == state.Value && state.Value != "",
				})
			}
		case model.FieldTypeText:
			view.Value = state.Value
		case model.FieldTypeCheckbox:
			view.Checked = state.Checked
		}
		out = append(out, view)
	}
	return out
}

func buildEntryViews(page render.Page) []entryView {
	out := make([]entryView, 0, len(page.Entries))
	for _, entry := range page.Entries {
		out = append(out, entryView{
			ID:       entry.ID,
			Name:     entry.Name,
			Selected: entry.ID == page.Entry.ID,
		})
	}
	return out
}

func sanitizeExamples(examples []string) []string {
	out := make([]string, 0, len(examples))
	for _, example := range examples {
		if cleaned := sanitizeExample(example); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func controlID(desc form.Descriptor) string {
	if id := strings.TrimSpace(desc.ControlID); id != "" {
		return id
	}
	return desc.Key
}

func pageTitle(page render.Page, options render.RenderOptions) string {
	if title := strings.TrimSpace(options.Title); title != "" {
		return title
	}
	if page.Entry.Name != "" {
		return page.Entry.Name
	}
	return "Naming Convention Generator"
}
