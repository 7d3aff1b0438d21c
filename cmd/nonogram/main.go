// Command nonogram solves nonogram puzzles from a file, or serves the
// solver over HTTP, generalizing the teacher's fixed 9x9 Sudoku binary to
// arbitrary W×H nonograms.
package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nonogram/solver/internal/config"
)

func main() {
	cfg := config.Default()
	root := newRootCmd(&cfg)
	if err := root.Execute(); err != nil {
		var unsolved errUnsolved
		if !errors.As(err, &unsolved) {
			log.Errorf("%v", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "nonogram",
		Short: "Solve nonogram puzzles",
		Long: `nonogram solves nonogram (picross) puzzles via constraint
propagation with bounded speculative search.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Finalize(cmd.Flags())
			if err := cfg.ParseStallHints(); err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	cfg.BindFlags(root.PersistentFlags())
	root.AddCommand(newSolveCmd(cfg))
	root.AddCommand(newServeCmd(cfg))
	return root
}
