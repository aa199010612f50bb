package model

import (
	"fmt"
	"sort"
)

// IssueKind classifies lint findings.
type IssueKind string

const (
	IssueUnmatchedPlaceholder IssueKind = "unmatched-placeholder"
	IssueDuplicateKey         IssueKind = "duplicate-key"
	IssueUnusedField          IssueKind = "unused-field"
	IssueEmptyOptions         IssueKind = "empty-options"
	IssueEmptyID              IssueKind = "empty-id"
	IssueDuplicateID          IssueKind = "duplicate-id"
)

// Issue is a single authoring problem. Lint never changes runtime behaviour:
// unmatched placeholders still pass through and duplicate keys still resolve
// to the last declaration.
type Issue struct {
	Entry   string    `json:"entry"`
	Field   string    `json:"field,omitempty"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("%s: %s: %s", i.Entry, i.Field, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Entry, i.Message)
}

// Lint inspects a single entry.
func Lint(entry Entry) []Issue {
	var issues []Issue
	report := func(field string, kind IssueKind, format string, args ...any) {
		issues = append(issues, Issue{
			Entry:   entry.ID,
			Field:   field,
			Kind:    kind,
			Message: fmt.Sprintf(format, args...),
		})
	}

	declared := make(map[string]int, len(entry.Fields))
	for _, field := range entry.Fields {
		key := field.Base().Key
		declared[key]++
		if declared[key] == 2 {
			report(key, IssueDuplicateKey, "key %q declared more than once; the last declaration wins", key)
		}
		if dd, ok := field.(Dropdown); ok && len(dd.Options) == 0 {
			report(key, IssueEmptyOptions, "dropdown has no options")
		}
	}

	referenced := make(map[string]struct{})
	for _, key := range PlaceholderKeys(entry.Template) {
		referenced[key] = struct{}{}
		if _, ok := declared[key]; !ok {
			report(key, IssueUnmatchedPlaceholder, "placeholder {{%s}} has no matching field", key)
		}
	}

	seen := make(map[string]struct{}, len(entry.Fields))
	for _, field := range entry.Fields {
		key := field.Base().Key
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := referenced[key]; !ok {
			report(key, IssueUnusedField, "field is not referenced by the template")
		}
	}
	return issues
}

// LintCatalog inspects every entry plus catalog-wide id constraints. Issues
// are sorted by entry id, then field, then kind.
func LintCatalog(catalog Catalog) []Issue {
	var issues []Issue
	ids := make(map[string]int)
	for idx, entry := range catalog.entries {
		if entry.ID == "" {
			issues = append(issues, Issue{
				Entry:   fmt.Sprintf("#%d", idx),
				Kind:    IssueEmptyID,
				Message: "entry has no id",
			})
		} else {
			ids[entry.ID]++
			if ids[entry.ID] == 2 {
				issues = append(issues, Issue{
					Entry:   entry.ID,
					Kind:    IssueDuplicateID,
					Message: "id declared more than once; lookups return the first entry",
				})
			}
		}
		issues = append(issues, Lint(entry)...)
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Entry != issues[j].Entry {
			return issues[i].Entry < issues[j].Entry
		}
		if issues[i].Field != issues[j].Field {
			return issues[i].Field < issues[j].Field
		}
		return issues[i].Kind < issues[j].Kind
	})
	return issues
}
