package nonogram

// Outcome is the public result of a Solve call: either Solved with a full
// grid, or not, with a partial grid and the FailureKind that stopped
// propagation.
type Outcome struct {
	Solved bool
	Grid   [][]Status
	Kind   FailureKind
}

// Solve runs the deductive constraint-propagation solver with bounded
// speculative search (§1) against spec, honoring opts (the zero value is a
// usable default — see Options). It never returns a Go error for puzzle-
// level failure; that is reported as Outcome.Solved == false with
// Outcome.Kind set, alongside the partially-solved Outcome.Grid, per §7.
func Solve(spec PuzzleSpec, opts Options) Outcome {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	p, err := newPuzzle(spec)
	if err != nil {
		return Outcome{Solved: false, Grid: p.Grid.Statuses(), Kind: kindOf(err)}
	}

	solved, kind := runDriver(p, &opts)
	return Outcome{Solved: solved, Grid: p.Grid.Statuses(), Kind: kind}
}
