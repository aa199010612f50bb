package model

// FieldType names the wire-level field kinds.
type FieldType string

const (
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeText     FieldType = "text"
	FieldTypeCheckbox FieldType = "checkbox"
)

// Valid reports whether the type is one of the supported variants.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeDropdown, FieldTypeText, FieldTypeCheckbox:
		return true
	default:
		return false
	}
}

// Option is a selectable dropdown choice. Value is substituted into the
// template, Label is shown to the user.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldBase carries the attributes every field variant shares. Key doubles as
// the placeholder name and as the control id on rendering surfaces.
type FieldBase struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Base returns the shared attributes.
func (b FieldBase) Base() FieldBase {
	return b
}

// Field is implemented only by Dropdown, Text and Checkbox.
type Field interface {
	Type() FieldType
	Base() FieldBase
	sealed()
}

// Dropdown selects one value out of a fixed list of options.
type Dropdown struct {
	FieldBase
	Options []Option `json:"options"`
}

// Text accepts free-form input.
type Text struct {
	FieldBase
}

// Checkbox toggles the field key itself in or out of the template.
type Checkbox struct {
	FieldBase
}

func (Dropdown) Type() FieldType { return FieldTypeDropdown }
func (Text) Type() FieldType     { return FieldTypeText }
func (Checkbox) Type() FieldType { return FieldTypeCheckbox }

func (Dropdown) sealed() {}
func (Text) sealed()     {}
func (Checkbox) sealed() {}

// NewDropdown builds an optional dropdown field.
func NewDropdown(key, label string, options ...Option) Dropdown {
	return Dropdown{
		FieldBase: FieldBase{Key: key, Label: label},
		Options:   append([]Option(nil), options...),
	}
}

// NewText builds an optional text field.
func NewText(key, label string) Text {
	return Text{FieldBase: FieldBase{Key: key, Label: label}}
}

// NewCheckbox builds an optional checkbox field.
func NewCheckbox(key, label string) Checkbox {
	return Checkbox{FieldBase: FieldBase{Key: key, Label: label}}
}

// Entry is one selectable naming template.
type Entry struct {
	ID          string
	Name        string
	Description string
	Template    string
	Fields      []Field
}

// Summary is the display subset of an Entry used by selectors.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Summary returns the selector view of the entry.
func (e Entry) Summary() Summary {
	return Summary{ID: e.ID, Name: e.Name, Description: e.Description}
}

// Field returns the field registered for key. When keys are duplicated the
// last declaration wins, matching substitution behaviour.
func (e Entry) Field(key string) (Field, bool) {
	var (
		found Field
		ok    bool
	)
	for _, field := range e.Fields {
		if field.Base().Key == key {
			found, ok = field, true
		}
	}
	return found, ok
}

// clone copies the entry, storing pointer variants by value so the catalog
// never aliases caller-owned fields.
func (e Entry) clone() Entry {
	out := e
	out.Fields = make([]Field, len(e.Fields))
	for i, field := range e.Fields {
		out.Fields[i] = cloneField(field)
	}
	return out
}

func cloneField(field Field) Field {
	return Match(field,
		func(f Dropdown) Field {
			f.Options = append([]Option(nil), f.Options...)
			return f
		},
		func(f Text) Field { return f },
		func(f Checkbox) Field { return f },
	)
}
