package nonogram

// lineState is the persistent per-line state a transient Line view reads
// and mutates: its runs, in spec order, and whether the line is completed.
type lineState struct {
	runs      []*Run
	completed bool
}

func (ls *lineState) clone() *lineState {
	runs := make([]*Run, len(ls.runs))
	for i, r := range ls.runs {
		runs[i] = r.clone()
	}
	return &lineState{runs: runs, completed: ls.completed}
}

// Puzzle is the full solving state: the grid plus one lineState per row and
// per column. Cell mutation always goes through Grid's cells; rows/cols
// hold only run bookkeeping.
type Puzzle struct {
	Grid *Grid
	rows []*lineState
	cols []*lineState
}

// newPuzzle builds a Puzzle from spec. It always returns a Puzzle with the
// grid shaped to spec's dimensions, even when a line is infeasible — the
// caller needs the (still all-UNKNOWN) grid to report a partial result
// alongside the error.
func newPuzzle(spec PuzzleSpec) (*Puzzle, error) {
	height := len(spec.RowRuns)
	width := len(spec.ColRuns)

	p := &Puzzle{Grid: NewGrid(width, height)}
	p.rows = make([]*lineState, height)
	p.cols = make([]*lineState, width)

	var first error
	for i, lengths := range spec.RowRuns {
		ls, err := newLineState(Horizontal, i, lengths, width)
		if err != nil && first == nil {
			first = err
		}
		p.rows[i] = ls
	}
	for i, lengths := range spec.ColRuns {
		ls, err := newLineState(Vertical, i, lengths, height)
		if err != nil && first == nil {
			first = err
		}
		p.cols[i] = ls
	}
	return p, first
}

// newLineState builds the runs for one line and checks the feasibility
// invariant from §3: sum of run lengths plus one gap per adjacent pair must
// fit within the line. lineState is returned even on infeasibility so the
// grid shape stays intact for partial-result reporting.
func newLineState(o Orientation, lineIndex int, lengths []int, lineLen int) (*lineState, error) {
	runs := make([]*Run, len(lengths))
	sum := 0
	for i, l := range lengths {
		runs[i] = &Run{Orientation: o, LineIndex: lineIndex, Index: i, Length: l}
		sum += l
	}
	minSpace := sum
	if len(lengths) > 0 {
		minSpace += len(lengths) - 1
	}
	ls := &lineState{runs: runs}
	if minSpace > lineLen {
		return ls, &Failure{Kind: KindNoPlacement, Line: LineID{Orientation: o, Index: lineIndex}}
	}
	return ls, nil
}

func (p *Puzzle) lineState(id LineID) *lineState {
	if id.Orientation == Horizontal {
		return p.rows[id.Index]
	}
	return p.cols[id.Index]
}

func (p *Puzzle) runsFor(id LineID) []*Run {
	return p.lineState(id).runs
}

func (p *Puzzle) width() int  { return len(p.cols) }
func (p *Puzzle) height() int { return len(p.rows) }

// complete reports whether every row and every column is completed.
func (p *Puzzle) complete() bool {
	for _, ls := range p.rows {
		if !ls.completed {
			return false
		}
	}
	for _, ls := range p.cols {
		if !ls.completed {
			return false
		}
	}
	return true
}

// clone takes the full structural snapshot speculative recursion needs:
// a fresh Grid plus fresh Run/lineState bookkeeping, sharing nothing with
// the original.
func (p *Puzzle) clone() *Puzzle {
	cp := &Puzzle{Grid: p.Grid.Clone()}
	cp.rows = make([]*lineState, len(p.rows))
	for i, ls := range p.rows {
		cp.rows[i] = ls.clone()
	}
	cp.cols = make([]*lineState, len(p.cols))
	for i, ls := range p.cols {
		cp.cols[i] = ls.clone()
	}
	return cp
}

// firstUnknownCell scans rows then columns, in order, for the first
// incomplete line and the first UNKNOWN cell within it — the deterministic
// tie-break the driver uses to pick a speculative cell (§4.7).
func (p *Puzzle) firstUnknownCell() (row, col int, ok bool) {
	for i, ls := range p.rows {
		if ls.completed {
			continue
		}
		for c := 0; c < p.width(); c++ {
			if p.Grid.At(i, c).Status() == Unknown {
				return i, c, true
			}
		}
	}
	for i, ls := range p.cols {
		if ls.completed {
			continue
		}
		for r := 0; r < p.height(); r++ {
			if p.Grid.At(r, i).Status() == Unknown {
				return r, i, true
			}
		}
	}
	return 0, 0, false
}
