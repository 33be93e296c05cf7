// Package validatecmd re-checks every invariant on an existing dataset
// document.
package validatecmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cliconfig "github.com/blwy10/cognition-revops-agent/apps/cli/config"
	"github.com/blwy10/cognition-revops-agent/dataset"
	"github.com/blwy10/cognition-revops-agent/generator"
	"github.com/blwy10/cognition-revops-agent/platform/logging"
)

// Command builds the validate subcommand.
func Command() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an existing dataset document against every invariant",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load()
			if err != nil {
				return err
			}

			logger := logging.FromContextOr(cmd.Context(), zap.NewNop()).
				With(zap.String("command", "validate"))

			doc, err := dataset.Read(filePath)
			if err != nil {
				return err
			}
			if err := generator.Validate(doc.Dataset(), cfg); err != nil {
				return fmt.Errorf("dataset %s failed validation: %w", filePath, err)
			}

			logger.Info("dataset valid",
				zap.String("path", filePath),
				zap.String("run_id", doc.RunID.String()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "dataset.json", "dataset document to validate")
	return cmd
}
