package main

import (
	"filey/internal/gui"

	"github.com/spf13/cobra"
)

func runGUI(args []string) error {
	app := gui.NewApp(cfg, cfgPath, startDir(args))
	app.Run()
	return nil
}

func newGuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Launch the desktop window",
		Long:  `Launch the graphical browser. This is also what running filey without a subcommand does.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(args)
		},
	}
}
