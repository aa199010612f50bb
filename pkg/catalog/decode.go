package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-namegen/pkg/model"
)

// ErrEmptyCatalog reports a document with no content or an explicit null.
// An empty sequence is a valid, empty catalog.
var ErrEmptyCatalog = errors.New("catalog: document is empty")

// Decode parses a catalog document. The location extension picks the format:
// ".json" is strict JSON, ".yaml" and ".yml" are YAML, anything else tries
// JSON first, then YAML.
func Decode(data []byte, location string) (model.Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Catalog{}, fmt.Errorf("%w: %s", ErrEmptyCatalog, location)
	}

	specs, err := decodeSpecs(data, documentFormat(location))
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: parse %s: %w", location, err)
	}
	if specs == nil {
		return model.Catalog{}, fmt.Errorf("%w: %s", ErrEmptyCatalog, location)
	}

	catalog, err := model.CatalogFromSpecs(specs)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: %s: %w", location, err)
	}
	return catalog, nil
}

type format int

const (
	formatAny format = iota
	formatJSON
	formatYAML
)

func documentFormat(location string) format {
	name := location
	if strings.Contains(location, "://") {
		if u, err := url.Parse(location); err == nil {
			name = u.Path
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatAny
	}
}

func decodeSpecs(data []byte, kind format) ([]model.EntrySpec, error) {
	var specs []model.EntrySpec
	switch kind {
	case formatJSON:
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return specs, nil
	case formatYAML:
		if err := yaml.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return specs, nil
	}

	if err := json.Unmarshal(data, &specs); err == nil {
		return specs, nil
	}
	specs = nil
	if err := yaml.Unmarshal(data, &specs); err == nil {
		return specs, nil
	}
	return nil, errors.New("invalid JSON or YAML")
}

// Encode writes the catalog back to indented JSON.
func Encode(catalog model.Catalog) ([]byte, error) {
	entries := catalog.Entries()
	specs := make([]model.EntrySpec, 0, len(entries))
	for _, entry := range entries {
		specs = append(specs, model.SpecFromEntry(entry))
	}
	data, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	return data, nil
}
