package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/renderers/tui"
)

func newFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form [id]",
		Short: "Fill an entry interactively (default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd, args)
		},
	}
}

func (a *app) runForm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	result := catalog.LoadOrFallback(ctx, a.loader(), a.source(), a.logger)

	opts := []tui.Option{
		tui.WithOutput(a.out),
		tui.WithLogger(a.logger),
		tui.WithCopyPrompt(a.cfg.Clipboard.Enabled),
	}
	if a.driver != nil {
		opts = append(opts, tui.WithPromptDriver(a.driver))
	}
	runner := tui.New(opts...)

	ctrl := runner.Controller(result.Catalog, a.formOptions()...)
	ctrl.Warn(result.Warning)

	entryID := ""
	if len(args) == 1 {
		entryID = args[0]
	}
	if _, err := runner.Run(ctx, ctrl, entryID); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		return err
	}
	return nil
}
