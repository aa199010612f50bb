package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-namegen/pkg/model"
)

// Result describes the outcome of the single startup load.
type Result struct {
	Catalog  model.Catalog
	Source   Source
	FellBack bool
	Err      error
	Warning  string
}

// LoadOrFallback loads the catalog once. Any failure, including a nil loader
// or source, substitutes Fallback() without retrying; the cause is kept in
// Result.Err and logged at warn level.
func LoadOrFallback(ctx context.Context, loader Loader, src Source, logger zerolog.Logger) Result {
	if src != nil && src.Kind() == SourceKindBuiltin {
		return Result{Catalog: Fallback(), Source: src}
	}

	var err error
	switch {
	case loader == nil:
		err = errors.New("catalog: loader is required")
	case src == nil:
		err = errors.New("catalog: source is required")
	default:
		var catalog model.Catalog
		catalog, err = loader.Load(ctx, src)
		if err == nil {
			logger.Debug().
				Str("source", src.Location()).
				Int("entries", catalog.Len()).
				Msg("catalog loaded")
			return Result{Catalog: catalog, Source: src}
		}
	}

	event := logger.Warn().Err(err)
	if src != nil {
		event = event.Str("source", src.Location())
	}
	event.Msg("catalog load failed, using built-in fallback")

	return Result{
		Catalog:  Fallback(),
		Source:   BuiltinSource(),
		FellBack: true,
		Err:      err,
		Warning:  FallbackWarning,
	}
}
