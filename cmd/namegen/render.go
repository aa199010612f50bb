package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-namegen/pkg/orchestrator"
	"github.com/goliatone/go-namegen/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		sets       []string
		checks     []string
		copyOutput bool
		noExamples bool
		title      string
	)
	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Render an entry from flag values",
		Example: `  namegen render server --set ENV=prd --set ID=01 --check PUBLIC
  namegen render server --set ENV=dev --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			result := a.loadCatalog(cmd.Context())

			resp, err := a.orchestrator().Execute(cmd.Context(), orchestrator.Request{
				Catalog:      &result.Catalog,
				Warning:      result.Warning,
				EntryID:      args[0],
				Renderer:     a.cfg.Render.Format,
				Values:       values,
				Checked:      checks,
				ExampleCount: exampleCount(a.cfg.Examples.Count),
				Copy:         copyOutput,
				RenderOptions: render.RenderOptions{
					Title:        title,
					HideExamples: noExamples,
				},
			})
			if err != nil {
				return err
			}
			_, err = a.out.Write(resp.Body)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&sets, "set", nil, "set a dropdown or text field (KEY=VALUE, repeatable)")
	flags.StringSliceVar(&checks, "check", nil, "tick a checkbox field (repeatable)")
	flags.StringP("format", "f", "", "output format: text, json, html or pretty")
	flags.BoolVar(&copyOutput, "copy", false, "copy the output to the clipboard")
	flags.BoolVar(&noExamples, "no-examples", false, "omit examples from the output")
	flags.StringVar(&title, "title", "", "page title for html output")
	_ = a.v.BindPFlag("render.format", flags.Lookup("format"))
	return cmd
}

func parseAssignments(raw []string) (map[string]string, error) {
	values := make(map[string]string, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected KEY=VALUE", item)
		}
		values[key] = value
	}
	return values, nil
}

// exampleCount maps the configured count onto orchestrator semantics, where
// zero means "default" and negative disables examples.
func exampleCount(n int) int {
	if n == 0 {
		return -1
	}
	return n
}
