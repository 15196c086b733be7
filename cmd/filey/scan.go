package main

import (
	"fmt"

	"filey/internal/scan"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	scanHeaderStyle = lipgloss.NewStyle().Bold(true)
	scanFolderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	scanSizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// newScanCmd prints a one-shot listing of a directory. Useful for scripting
// and for exercising the scanner without a display.
func newScanCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List a directory once and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := startDir(args)
			entries := scan.List(dir)

			if plain {
				for _, e := range entries {
					fmt.Println(e.Display())
				}
				return nil
			}

			fmt.Println(scanHeaderStyle.Render(dir))
			for _, e := range entries {
				if e.IsFolder {
					fmt.Println("  " + scanFolderStyle.Render(e.Name+"/"))
					continue
				}
				fmt.Printf("  %s %s\n", e.Name, scanSizeStyle.Render(e.SizeText))
			}
			fmt.Println(scanSizeStyle.Render(fmt.Sprintf("%d items", len(entries))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "unstyled output")
	return cmd
}
