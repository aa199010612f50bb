package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/renderers/tui"
)

func newExamplesCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "examples <id>",
		Short: "Print randomly generated example names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.loadCatalog(cmd.Context())
			entry, ok := result.Catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", form.ErrEntryNotFound, args[0])
			}
			n := a.cfg.Examples.Count
			if cmd.Flags().Changed("count") {
				n = count
			}
			marker := engine.WithMarker(tui.DefaultStyles().MarkerFunc())
			for _, example := range engine.Examples(entry, n, marker) {
				fmt.Fprintln(a.out, example)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", engine.DefaultExampleCount, "number of examples")
	return cmd
}
