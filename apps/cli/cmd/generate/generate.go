// Package generatecmd runs a full generation pass and writes the dataset
// document.
package generatecmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cliconfig "github.com/blwy10/cognition-revops-agent/apps/cli/config"
	"github.com/blwy10/cognition-revops-agent/dataset"
	"github.com/blwy10/cognition-revops-agent/generator"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
	"github.com/blwy10/cognition-revops-agent/platform/logging"
)

// Command builds the generate subcommand.
func Command() *cobra.Command {
	var (
		vocabDir string
		outPath  string
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a validated synthetic CRM dataset document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			logger := logging.FromContextOr(cmd.Context(), zap.NewNop()).
				With(zap.String("command", "generate"))

			voc, err := vocab.Load(vocab.DefaultPaths(vocabDir))
			if err != nil {
				return err
			}

			ds, err := generator.Generate(cfg, voc)
			if err != nil {
				return err
			}
			if err := generator.Validate(ds, cfg); err != nil {
				return fmt.Errorf("generated dataset failed validation: %w", err)
			}

			doc := dataset.New(ds)
			if err := doc.Write(outPath); err != nil {
				return err
			}

			total := 0
			for _, o := range ds.Opportunities {
				total += o.Amount
			}
			logger.Info("dataset generated",
				zap.Int64("seed", cfg.Seed),
				zap.String("run_id", doc.RunID.String()),
				zap.Int("reps", len(ds.Reps)),
				zap.Int("accounts", len(ds.Accounts)),
				zap.Int("opportunities", len(ds.Opportunities)),
				zap.Int("territories", len(ds.Territories)),
				zap.Int("history", len(ds.History)),
				zap.Int("total_pipeline", total),
				zap.String("path", outPath),
			)
			fmt.Fprintln(cmd.OutOrStdout(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabDir, "vocab-dir", "./vocab", "directory holding the vocabulary files")
	cmd.Flags().StringVar(&outPath, "out", "dataset.json", "path for the dataset document")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the SEED environment variable")
	return cmd
}
