// Package catalog loads template catalogs from files, fs.FS entries or HTTP
// endpoints. Documents may be JSON or YAML; both decode into model.EntrySpec
// values. When a catalog cannot be loaded, LoadOrFallback substitutes the
// built-in catalog exactly once and reports a warning for the surface to show.
//
// Loader implementations live under internal/catalog/loader; construct one
// through namegen.NewLoader.
package catalog
