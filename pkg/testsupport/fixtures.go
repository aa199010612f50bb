package testsupport

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/model"
)

//go:embed testdata/catalog.yaml
var fixtureCatalog []byte

// Catalog returns the shared fixture catalog (entries "server" and "bucket").
func Catalog() model.Catalog {
	cat, err := catalog.Decode(fixtureCatalog, "testsupport/catalog.yaml")
	if err != nil {
		panic(fmt.Sprintf("testsupport: decode fixture catalog: %v", err))
	}
	return cat
}

// CatalogDocument returns the raw YAML for the fixture catalog.
func CatalogDocument() []byte {
	return append([]byte(nil), fixtureCatalog...)
}

// LoadCatalog reads a catalog fixture from disk, failing the test on error.
func LoadCatalog(t *testing.T, path string) model.Catalog {
	t.Helper()

	cat, err := LoadCatalogFromPath(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

// LoadCatalogFromPath decodes a JSON or YAML catalog without requiring
// testing.T so callers can wire fixtures in setup functions.
func LoadCatalogFromPath(path string) (model.Catalog, error) {
	if path == "" {
		return model.Catalog{}, errors.New("testsupport: catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("testsupport: read catalog: %w", err)
	}
	cat, err := catalog.Decode(data, path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("testsupport: decode catalog: %w", err)
	}
	return cat, nil
}

// WriteTempCatalog writes data to a temporary catalog file and returns its path.
func WriteTempCatalog(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
