package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterManifest = `version: "1"
steps:
  - target: header
    text: "Welcome! This bar shows the app title and global hints."
    vanchor: bottom
    hanchor: center
  - target: sidebar
    text: "Sections live in the sidebar. Scroll with j and k."
    vanchor: middle
    hanchor: right
    hoffset: 2
  - target: content
    text: "The content pane shows the selected section's entries."
    vanchor: middle
    hanchor: center
  - target: footer
    text: "Key hints for the current mode are always shown down here."
    vanchor: top
    hanchor: center
    voffset: -1
`

var initCmd = &cobra.Command{
	Use:   "init [steps-file]",
	Short: "Write a starter step manifest",
	Long: `Init writes a starter manifest targeting the demo screen's
regions (header, sidebar, content, footer). The file is not overwritten
if it already exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "steps.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterManifest), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	cmd.Printf("wrote %s\n", path)
	return nil
}
