package cmd

import (
	"github.com/Iron-Ham/tourguide/internal/steps"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <steps-file>",
	Short: "Validate a step manifest",
	Long: `Validate parses a step manifest and reports the first problem it
finds: unsupported version, empty sequence, missing targets or text,
or unknown anchors.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	seq, err := steps.Load(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s: ok (%d steps)\n", args[0], len(seq))
	for i, step := range seq {
		cmd.Printf("  %d. %s  →  %s/%s\n", i+1, step.TargetID, step.VAnchor, step.HAnchor)
	}
	return nil
}
