package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a catalog document originated so loaders can operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindFS      SourceKind = "fs"
	SourceKindURL     SourceKind = "url"
	SourceKindBuiltin SourceKind = "builtin"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL returns a Source for an HTTP/HTTPS endpoint. It panics if the
// URL is invalid to surface configuration mistakes early; use ParseSource for
// user input.
func SourceFromURL(raw string) Source {
	src, err := urlSourceFrom(raw)
	if err != nil {
		panic(err.Error())
	}
	return src
}

func urlSourceFrom(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("catalog: empty URL source")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid URL %q: %w", raw, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("catalog: URL %q has no host", raw)
	}
	return urlSource{raw: raw}, nil
}

type builtinSource struct{}

func (builtinSource) Location() string {
	return "builtin:fallback"
}

func (builtinSource) Kind() SourceKind {
	return SourceKindBuiltin
}

// BuiltinSource identifies the embedded fallback catalog.
func BuiltinSource() Source {
	return builtinSource{}
}

// ParseSource maps a user-supplied location onto a Source: http(s) URLs become
// URL sources, `fs:` prefixed names address the loader file system and
// everything else is treated as a file path.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return nil, fmt.Errorf("catalog: source is required")
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return urlSourceFrom(raw)
	case strings.HasPrefix(raw, "fs:"):
		name := strings.TrimPrefix(raw, "fs:")
		if name == "" {
			return nil, fmt.Errorf("catalog: fs source %q has no name", raw)
		}
		return SourceFromFS(name), nil
	case raw == BuiltinSource().Location():
		return BuiltinSource(), nil
	default:
		return SourceFromFile(raw), nil
	}
}
