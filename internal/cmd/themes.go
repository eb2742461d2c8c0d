package cmd

import (
	"github.com/Iron-Ham/tourguide/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	_, loadErrs := styles.DiscoverCustomThemes()
	for _, err := range loadErrs {
		cmd.PrintErrf("warning: %v\n", err)
	}

	current := viper.GetString("tui.theme")
	for _, name := range styles.ValidThemes() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		cmd.Printf("%s%s\n", marker, name)
	}
}
