package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	namegen "github.com/goliatone/go-namegen"
	"github.com/goliatone/go-namegen/internal/config"
	"github.com/goliatone/go-namegen/internal/logging"
	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/orchestrator"
	"github.com/goliatone/go-namegen/pkg/renderers/tui"
)

// app carries state shared by the subcommands. Tests replace driver and
// clipboard to run without a terminal.
type app struct {
	v         *viper.Viper
	cfgFile   string
	cfg       config.Config
	logger    zerolog.Logger
	out       io.Writer
	errOut    io.Writer
	driver    tui.PromptDriver
	clipboard form.Clipboard
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		v:      viper.New(),
		logger: zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: a.errOut})
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loader() catalog.Loader {
	return namegen.NewLoader(catalog.WithHTTPFallback(a.cfg.Catalog.Timeout))
}

func (a *app) source() catalog.Source {
	src, err := catalog.ParseSource(a.cfg.Catalog.Source)
	if err != nil {
		a.logger.Warn().Err(err).Str("source", a.cfg.Catalog.Source).Msg("invalid catalog source")
		return nil
	}
	return src
}

func (a *app) orchestrator() *orchestrator.Orchestrator {
	opts := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithDefaultRenderer(a.cfg.Render.Format),
	}
	switch {
	case !a.cfg.Clipboard.Enabled:
		opts = append(opts, orchestrator.WithClipboard(nil))
	case a.clipboard != nil:
		opts = append(opts, orchestrator.WithClipboard(a.clipboard))
	}
	return orchestrator.New(opts...)
}

func (a *app) formOptions() []form.Option {
	opts := []form.Option{form.WithExampleCount(a.cfg.Examples.Count)}
	switch {
	case !a.cfg.Clipboard.Enabled:
		opts = append(opts, form.WithClipboard(nil))
	case a.clipboard != nil:
		opts = append(opts, form.WithClipboard(a.clipboard))
	}
	return opts
}

// loadCatalog performs the single startup load with fallback and prints the
// fallback warning to stderr.
func (a *app) loadCatalog(ctx context.Context) catalog.Result {
	result := catalog.LoadOrFallback(ctx, a.loader(), a.source(), a.logger)
	if result.Warning != "" {
		a.warn(result.Warning)
	}
	return result
}

func (a *app) warn(message string) {
	_, _ = io.WriteString(a.errOut, message+"\n")
}
