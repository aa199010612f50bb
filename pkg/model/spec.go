package model

import (
	"errors"
	"fmt"
	"strings"
)

// EntrySpec is the serialised form of an Entry as found in catalog documents.
type EntrySpec struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Template    string      `json:"template" yaml:"template"`
	Fields      []FieldSpec `json:"fields" yaml:"fields"`
}

// FieldSpec is the serialised form of a Field.
type FieldSpec struct {
	Key      string    `json:"key" yaml:"key"`
	Type     FieldType `json:"type" yaml:"type"`
	Label    string    `json:"label" yaml:"label"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Options  []Option  `json:"options,omitempty" yaml:"options,omitempty"`
}

var errMissingKey = errors.New("field key is required")

// Field decodes the wire representation into its variant. Options are ignored
// for non-dropdown fields.
func (s FieldSpec) Field() (Field, error) {
	if strings.TrimSpace(s.Key) == "" {
		return nil, errMissingKey
	}
	base := FieldBase{Key: s.Key, Label: s.Label, Required: s.Required}
	switch s.Type {
	case FieldTypeDropdown:
		return Dropdown{FieldBase: base, Options: append([]Option(nil), s.Options...)}, nil
	case FieldTypeText:
		return Text{FieldBase: base}, nil
	case FieldTypeCheckbox:
		return Checkbox{FieldBase: base}, nil
	default:
		return nil, fmt.Errorf("field %q: unknown type %q", s.Key, s.Type)
	}
}

// Entry decodes the wire representation, rejecting unknown field types and
// fields without a key.
func (s EntrySpec) Entry() (Entry, error) {
	entry := Entry{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Template:    s.Template,
		Fields:      make([]Field, 0, len(s.Fields)),
	}
	for idx, spec := range s.Fields {
		field, err := spec.Field()
		if err != nil {
			return Entry{}, fmt.Errorf("model: entry %q fields[%d]: %w", s.ID, idx, err)
		}
		entry.Fields = append(entry.Fields, field)
	}
	return entry, nil
}

// SpecFromEntry converts an Entry back to its wire representation.
func SpecFromEntry(entry Entry) EntrySpec {
	spec := EntrySpec{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: entry.Description,
		Template:    entry.Template,
		Fields:      make([]FieldSpec, 0, len(entry.Fields)),
	}
	for _, field := range entry.Fields {
		base := field.Base()
		fs := FieldSpec{Key: base.Key, Type: field.Type(), Label: base.Label, Required: base.Required}
		fs.Options = Match(field,
			func(f Dropdown) []Option { return append([]Option(nil), f.Options...) },
			func(Text) []Option { return nil },
			func(Checkbox) []Option { return nil },
		)
		spec.Fields = append(spec.Fields, fs)
	}
	return spec
}

// CatalogFromSpecs decodes a whole document.
func CatalogFromSpecs(specs []EntrySpec) (Catalog, error) {
	entries := make([]Entry, 0, len(specs))
	for idx, spec := range specs {
		entry, err := spec.Entry()
		if err != nil {
			return Catalog{}, fmt.Errorf("entries[%d]: %w", idx, err)
		}
		entries = append(entries, entry)
	}
	return NewCatalog(entries...), nil
}
