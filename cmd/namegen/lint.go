package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/model"
)

func newLintCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report authoring problems in the configured catalog",
		Long: `lint loads the configured catalog without the built-in fallback and reports
unmatched placeholders, duplicate keys or ids, unused fields and empty dropdowns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := catalog.ParseSource(a.cfg.Catalog.Source)
			if err != nil {
				return err
			}
			cat, err := a.loader().Load(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("lint %s: %w", src.Location(), err)
			}

			issues := model.LintCatalog(cat)
			for _, issue := range issues {
				fmt.Fprintln(a.out, issue.String())
			}
			if len(issues) == 0 {
				fmt.Fprintf(a.out, "%s: %d entries, no issues\n", src.Location(), cat.Len())
				return nil
			}
			if strict {
				return fmt.Errorf("lint: %d issue(s) found", len(issues))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when issues are found")
	return cmd
}
