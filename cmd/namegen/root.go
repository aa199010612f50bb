package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "namegen",
		Short: "Generate names from naming convention templates",
		Long: `namegen loads a catalog of naming conventions and fills their {{KEY}}
placeholders from dropdown, text and checkbox fields, either interactively or
from flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd, args)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./namegen.yaml or ~/.config/namegen/config.yaml)")
	flags.String("catalog", "", "catalog source: file path, fs:<path>, http(s) URL or builtin:fallback")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("clipboard", true, "enable clipboard integration")

	_ = a.v.BindPFlag("catalog.source", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("clipboard.enabled", flags.Lookup("clipboard"))

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newRenderCmd(a),
		newExamplesCmd(a),
		newFormCmd(a),
		newLintCmd(a),
	)
	return root
}
