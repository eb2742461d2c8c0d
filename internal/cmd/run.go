package cmd

import (
	"fmt"

	"github.com/Iron-Ham/tourguide/internal/config"
	"github.com/Iron-Ham/tourguide/internal/logging"
	"github.com/Iron-Ham/tourguide/internal/tui"
	"github.com/Iron-Ham/tourguide/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the walkthrough demo TUI",
	Long: `Run launches the demo terminal UI and, depending on configuration,
starts the walkthrough immediately. Steps are read from the configured
manifest file; edits to it are picked up live unless live reload is
disabled.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("steps", "", "step manifest file (overrides config)")
	runCmd.Flags().String("theme", "", "color theme (overrides config)")
	runCmd.Flags().Bool("no-autostart", false, "do not start the walkthrough on launch")
	_ = viper.BindPFlag("walkthrough.steps_file", runCmd.Flags().Lookup("steps"))
	_ = viper.BindPFlag("tui.theme", runCmd.Flags().Lookup("theme"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	// Register custom themes before validation so a custom tui.theme passes.
	_, _ = styles.DiscoverCustomThemes()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if noAuto, _ := cmd.Flags().GetBool("no-autostart"); noAuto {
		cfg.Walkthrough.AutoStart = false
	}

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Close()

	app, err := tui.NewApp(cfg, log.WithComponent("tui"))
	if err != nil {
		return err
	}
	return app.Run()
}
