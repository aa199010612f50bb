package namegen

import (
	internalLoader "github.com/goliatone/go-namegen/internal/catalog/loader"
	"github.com/goliatone/go-namegen/pkg/catalog"
)

// NewLoader constructs a catalog loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
