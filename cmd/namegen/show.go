package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/form"
	"github.com/goliatone/go-namegen/pkg/model"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Describe an entry's template and fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.loadCatalog(cmd.Context())
			entry, ok := result.Catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", form.ErrEntryNotFound, args[0])
			}

			fmt.Fprintf(a.out, "%s (%s)\n", entry.Name, entry.ID)
			if entry.Description != "" {
				fmt.Fprintln(a.out, entry.Description)
			}
			fmt.Fprintf(a.out, "template: %s\n", entry.Template)
			fmt.Fprintf(a.out, "placeholders: %s\n", strings.Join(engine.Placeholders(entry.Template), ", "))
			fmt.Fprintln(a.out, "fields:")
			for _, desc := range form.Describe(entry) {
				line := fmt.Sprintf("  %s (%s) %s", desc.Key, desc.Type, desc.Label)
				if desc.Required {
					line += " *"
				}
				if desc.Type == model.FieldTypeDropdown {
					values := make([]string, 0, len(desc.Options))
					for _, opt := range desc.Options {
						values = append(values, opt.Value+"="+opt.Label)
					}
					line += " [" + strings.Join(values, ", ") + "]"
				}
				fmt.Fprintln(a.out, line)
			}
			return nil
		},
	}
}
