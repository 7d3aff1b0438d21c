package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nonogram/solver/internal/config"
	"github.com/nonogram/solver/internal/puzzlefile"
	"github.com/nonogram/solver/internal/render"
	"github.com/nonogram/solver/nonogram"
)

// errUnsolved signals that the puzzle was parsed and rendered fine but has
// no solution; main checks for it with errors.As to exit(1) without
// logging it as an unexpected error.
type errUnsolved struct{ kind nonogram.FailureKind }

func (e errUnsolved) Error() string { return "unsolved: " + e.kind.String() }

func newSolveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "solve <file>",
		Short:        "Solve a puzzle file and print the result",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readPuzzleFile(args[0])
			if err != nil {
				return err
			}

			opts := nonogram.DefaultOptions()
			opts.MaxIterations = cfg.MaxIterations
			opts.StallHints = cfg.StallHints

			log.Debugf("solving %s (%dx%d)", args[0], len(spec.ColRuns), len(spec.RowRuns))
			out := nonogram.Solve(spec, opts)
			if err := render.Outcome(cmd.OutOrStdout(), out); err != nil {
				return errors.Wrap(err, "can't render result")
			}
			if !out.Solved {
				cmd.SilenceErrors = true
				return errUnsolved{kind: out.Kind}
			}
			return nil
		},
	}
}

// readPuzzleFile sniffs the leading byte of path to decide between the JSON
// and text puzzle notations puzzlefile understands.
func readPuzzleFile(path string) (nonogram.PuzzleSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nonogram.PuzzleSpec{}, errors.Wrapf(err, "can't open %s", path)
	}
	defer f.Close()

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil {
		return nonogram.PuzzleSpec{}, errors.Wrapf(err, "can't read %s", path)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nonogram.PuzzleSpec{}, errors.Wrapf(err, "can't rewind %s", path)
	}

	if buf[0] == '{' {
		return puzzlefile.DecodeJSON(f)
	}
	return puzzlefile.DecodeText(f)
}
