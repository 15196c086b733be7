package main

import (
	"filey/internal/tui"

	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [directory]",
		Short: "Browse in the terminal",
		Long:  `Browse files in a full-screen terminal interface. Same keys as a pager: j/k to move, enter to open, ? for help.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg, cfgPath, startDir(args))
		},
	}
}
