package model

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Catalog is an ordered, immutable collection of entries.
type Catalog struct {
	entries []Entry
}

// NewCatalog copies the provided entries into a catalog.
func NewCatalog(entries ...Entry) Catalog {
	cloned := make([]Entry, len(entries))
	for i, entry := range entries {
		cloned[i] = entry.clone()
	}
	return Catalog{entries: cloned}
}

// Len reports the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in declaration order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.clone()
	}
	return out
}

// Lookup returns the first entry with the given id.
func (c Catalog) Lookup(id string) (Entry, bool) {
	for _, entry := range c.entries {
		if entry.ID == id {
			return entry.clone(), true
		}
	}
	return Entry{}, false
}

// Summaries lists the selector view of every entry.
func (c Catalog) Summaries() []Summary {
	out := make([]Summary, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Summary()
	}
	return out
}

// Search ranks entries by fuzzy match against their id, name and
// description. An empty query returns every entry in declaration order.
func (c Catalog) Search(query string) []Summary {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Summaries()
	}
	matches := fuzzy.FindFrom(query, searchSource(c.entries))
	out := make([]Summary, 0, len(matches))
	for _, match := range matches {
		out = append(out, c.entries[match.Index].Summary())
	}
	return out
}

type searchSource []Entry

func (s searchSource) String(i int) string {
	entry := s[i]
	return entry.Name + " " + entry.ID + " " + entry.Description
}

func (s searchSource) Len() int {
	return len(s)
}
