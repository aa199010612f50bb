package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleEntry() Entry {
	return Entry{
		ID:       "asset",
		Name:     "Asset",
		Template: "{{PUBLIC}}-{{Department}}-{{SerialNumber}}",
		Fields: []Field{
			NewCheckbox("PUBLIC", "Public Server"),
			NewDropdown("Department", "Department", Option{Value: "IT", Label: "IT"}),
			NewText("SerialNumber", "Serial Number"),
		},
	}
}

func TestEntrySpecDecodesVariants(t *testing.T) {
	spec := EntrySpec{
		ID:       "asset",
		Template: "{{A}}",
		Fields: []FieldSpec{
			{Key: "A", Type: FieldTypeDropdown, Label: "A", Required: true, Options: []Option{{Value: "1", Label: "One"}}},
			{Key: "B", Type: FieldTypeText, Label: "B", Options: []Option{{Value: "ignored"}}},
			{Key: "C", Type: FieldTypeCheckbox, Label: "C"},
		},
	}

	entry, err := spec.Entry()
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if len(entry.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(entry.Fields))
	}
	dd, ok := entry.Fields[0].(Dropdown)
	if !ok {
		t.Fatalf("expected dropdown, got %T", entry.Fields[0])
	}
	if !dd.Required || len(dd.Options) != 1 {
		t.Fatalf("unexpected dropdown: %+v", dd)
	}
	if _, ok := entry.Fields[1].(Text); !ok {
		t.Fatalf("expected text, got %T", entry.Fields[1])
	}
	if _, ok := entry.Fields[2].(Checkbox); !ok {
		t.Fatalf("expected checkbox, got %T", entry.Fields[2])
	}

	roundTrip := SpecFromEntry(entry)
	spec.Fields[1].Options = nil
	if diff := cmp.Diff(spec, roundTrip); diff != "" {
		t.Fatalf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestEntrySpecRejectsMalformedFields(t *testing.T) {
	cases := map[string]FieldSpec{
		"unknown type": {Key: "A", Type: "radio"},
		"missing key":  {Type: FieldTypeText},
	}
	for name, field := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := EntrySpec{ID: "x", Fields: []FieldSpec{field}}.Entry()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), `entry "x" fields[0]`) {
				t.Fatalf("error lacks location: %v", err)
			}
		})
	}
}

func TestCatalogLookupFirstMatchWins(t *testing.T) {
	first := sampleEntry()
	second := sampleEntry()
	second.Name = "Shadow"
	catalog := NewCatalog(first, second)

	got, ok := catalog.Lookup("asset")
	if !ok {
		t.Fatalf("expected lookup hit")
	}
	if got.Name != "Asset" {
		t.Fatalf("expected first entry, got %q", got.Name)
	}
	if _, ok := catalog.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	entry := sampleEntry()
	catalog := NewCatalog(entry)

	entry.Name = "mutated"
	entries := catalog.Entries()
	entries[0].Name = "mutated too"
	dd := entries[0].Fields[1].(Dropdown)
	dd.Options[0].Value = "XX"

	got, _ := catalog.Lookup("asset")
	if got.Name != "Asset" {
		t.Fatalf("catalog entry mutated: %q", got.Name)
	}
	if got.Fields[1].(Dropdown).Options[0].Value != "IT" {
		t.Fatalf("catalog options mutated")
	}
}

func TestCatalogStoresPointerVariantsByValue(t *testing.T) {
	dd := NewDropdown("ENV", "Environment", Option{Value: "prd", Label: "Production"})
	text := NewText("ID", "Identifier")
	catalog := NewCatalog(Entry{ID: "ptr", Template: "{{ENV}}-{{ID}}", Fields: []Field{&dd, &text}})

	dd.Options[0].Value = "mutated"
	got, _ := catalog.Lookup("ptr")
	stored, ok := got.Fields[0].(Dropdown)
	if !ok {
		t.Fatalf("expected dropdown stored by value, got %T", got.Fields[0])
	}
	if stored.Options[0].Value != "prd" {
		t.Fatalf("catalog aliases caller options: %+v", stored.Options)
	}
	if _, ok := got.Fields[1].(Text); !ok {
		t.Fatalf("expected text stored by value, got %T", got.Fields[1])
	}

	spec := SpecFromEntry(Entry{ID: "ptr", Fields: []Field{&dd}})
	if len(spec.Fields) != 1 || len(spec.Fields[0].Options) != 1 || spec.Fields[0].Options[0].Value != "mutated" {
		t.Fatalf("pointer dropdown lost its options: %+v", spec.Fields)
	}
}

func TestCatalogSearch(t *testing.T) {
	catalog := NewCatalog(
		Entry{ID: "server", Name: "Server Name"},
		Entry{ID: "laptop", Name: "Laptop Tag", Description: "end user devices"},
	)

	all := catalog.Search("  ")
	if len(all) != 2 || all[0].ID != "server" {
		t.Fatalf("empty query should list every entry, got %+v", all)
	}

	got := catalog.Search("lap")
	if len(got) == 0 || got[0].ID != "laptop" {
		t.Fatalf("expected laptop first, got %+v", got)
	}
	if none := catalog.Search("zzzz"); len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestEntryFieldLastDeclarationWins(t *testing.T) {
	entry := Entry{Fields: []Field{NewText("A", "first"), NewText("A", "second")}}
	field, ok := entry.Field("A")
	if !ok || field.Base().Label != "second" {
		t.Fatalf("expected last declaration, got %+v", field)
	}
}

func TestMatchDispatchesVariants(t *testing.T) {
	name := func(f Field) string {
		return Match(f,
			func(Dropdown) string { return "dropdown" },
			func(Text) string { return "text" },
			func(Checkbox) string { return "checkbox" },
		)
	}
	entry := sampleEntry()
	got := []string{name(entry.Fields[0]), name(entry.Fields[1]), name(entry.Fields[2])}
	if diff := cmp.Diff([]string{"checkbox", "dropdown", "text"}, got); diff != "" {
		t.Fatalf("match mismatch (-want +got):\n%s", diff)
	}
}

func TestScanPlaceholders(t *testing.T) {
	got := ScanPlaceholders("[{{Env}}] {{{A}}-{{B}}}-{{Env}}-{{ bad")
	want := []Placeholder{
		{Key: "Env", Start: 1, End: 8},
		{Key: "A", Start: 11, End: 16},
		{Key: "B", Start: 17, End: 22},
		{Key: "Env", Start: 24, End: 31},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}

	keys := PlaceholderKeys("{{B}}{{A}}{{B}}")
	if diff := cmp.Diff([]string{"B", "A"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLintReportsIssues(t *testing.T) {
	entry := Entry{
		ID:       "broken",
		Template: "{{A}}-{{Missing}}",
		Fields: []Field{
			NewText("A", "A"),
			NewText("A", "A again"),
			NewDropdown("Env", "Environment"),
		},
	}

	kinds := make(map[IssueKind][]string)
	for _, issue := range Lint(entry) {
		kinds[issue.Kind] = append(kinds[issue.Kind], issue.Field)
	}
	want := map[IssueKind][]string{
		IssueDuplicateKey:         {"A"},
		IssueEmptyOptions:         {"Env"},
		IssueUnmatchedPlaceholder: {"Missing"},
		IssueUnusedField:          {"Env"},
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("lint mismatch (-want +got):\n%s", diff)
	}
	if issues := Lint(sampleEntry()); len(issues) != 0 {
		t.Fatalf("expected clean entry, got %v", issues)
	}
}

func TestLintCatalogIDs(t *testing.T) {
	catalog := NewCatalog(sampleEntry(), sampleEntry(), Entry{})
	var kinds []IssueKind
	for _, issue := range LintCatalog(catalog) {
		kinds = append(kinds, issue.Kind)
	}
	want := []IssueKind{IssueEmptyID, IssueDuplicateID}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("catalog lint mismatch (-want +got):\n%s", diff)
	}
}
