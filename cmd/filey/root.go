package main

import (
	"os"
	"path/filepath"

	"filey/internal/config"
	"filey/internal/log"

	"github.com/spf13/cobra"
)

// Loaded once in PersistentPreRun and shared by every subcommand.
var (
	cfg     *config.Settings
	cfgPath string
)

func newRootCmd() *cobra.Command {
	var configFlag string
	var debug bool

	cmd := &cobra.Command{
		Use:     "filey [directory]",
		Short:   "A small desktop file browser",
		Long:    `Filey is a file browser with animated navigation, drag-and-drop moves, and a themeable interface. Run without a subcommand to launch the desktop window.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)
			cfgPath = configFlag
			if cfgPath == "" {
				cfgPath = config.DefaultPath()
			}
			cfg = config.LoadFile(cfgPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(args)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default ~/.config/filey/settings.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newGuiCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newScanCmd())

	return cmd
}

// startDir resolves the directory to browse: the argument if given, the last
// visited path otherwise, falling back to the working directory.
func startDir(args []string) string {
	if len(args) > 0 {
		if abs, err := filepath.Abs(args[0]); err == nil {
			return abs
		}
		return args[0]
	}
	if cfg.LastPath != "" {
		if info, err := os.Stat(cfg.LastPath); err == nil && info.IsDir() {
			return cfg.LastPath
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
