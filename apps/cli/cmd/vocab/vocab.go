// Package vocabcmd bootstraps the vocabulary files the generator samples
// from.
package vocabcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// Command groups vocabulary helpers.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary file utilities",
	}
	cmd.AddCommand(initCommand())
	return cmd
}

func initCommand() *cobra.Command {
	var (
		dir  string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter set of vocabulary files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vocab.WriteStarterFiles(dir, seed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./vocab", "directory to write the vocabulary files into")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the fake-name source")
	return cmd
}
