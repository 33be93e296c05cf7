package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blwy10/cognition-revops-agent/platform/logging"
)

// rootCmd is the base command for the revops dataset CLI. Subcommands
// (generate, validate, vocab) are attached here.
var rootCmd = &cobra.Command{
	Use:           "revops",
	Short:         "Synthetic CRM dataset tooling",
	Long:          "Generate, validate, and bootstrap inputs for the synthetic CRM/sales dataset.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.NewLogger(logging.Config{
			Component: "revops",
			Level:     os.Getenv("LOG_LEVEL"),
		})
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger, ok := logging.FromContext(cmd.Context()); ok {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
