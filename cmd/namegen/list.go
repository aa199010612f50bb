package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List catalog entries, optionally fuzzy filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.loadCatalog(cmd.Context())
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			for _, entry := range result.Catalog.Search(query) {
				line := fmt.Sprintf("%s\t%s", entry.ID, entry.Name)
				if entry.Description != "" {
					line += "\t" + entry.Description
				}
				fmt.Fprintln(a.out, strings.TrimSpace(line))
			}
			return nil
		},
	}
}
