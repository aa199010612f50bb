package form

import "github.com/goliatone/go-namegen/pkg/model"

// Descriptor is everything a surface needs to build one input.
type Descriptor struct {
	Key         string          `json:"key"`
	Type        model.FieldType `json:"type"`
	Label       string          `json:"label"`
	Required    bool            `json:"required,omitempty"`
	ControlID   string          `json:"controlId"`
	Placeholder string          `json:"placeholder,omitempty"`
	Prompt      string          `json:"prompt,omitempty"`
	Options     []model.Option  `json:"options,omitempty"`
}

// Describe returns one descriptor per field in declaration order.
func Describe(entry model.Entry) []Descriptor {
	out := make([]Descriptor, 0, len(entry.Fields))
	for _, field := range entry.Fields {
		out = append(out, describeField(field))
	}
	return out
}

func describeField(field model.Field) Descriptor {
	base := field.Base()
	desc := Descriptor{
		Key:       base.Key,
		Type:      field.Type(),
		Label:     base.Label,
		Required:  base.Required,
		ControlID: base.Key,
	}
	return model.Match(field,
		func(f model.Dropdown) Descriptor {
			desc.Prompt = "-- Select " + base.Label + " --"
			desc.Options = append([]model.Option(nil), f.Options...)
			return desc
		},
		func(model.Text) Descriptor {
			desc.Placeholder = "Enter " + base.Label
			return desc
		},
		func(model.Checkbox) Descriptor { return desc },
	)
}
