package nonogram

// runDriver is the puzzle driver of §4.7. It drains the work queue through
// solveLine, fanning every change out to its crossing line; when the queue
// empties on an unsolved puzzle it applies any pending stall hints once,
// and failing that picks one UNKNOWN cell, speculatively assumes it FILLED
// in a cloned Puzzle, and recurses. A failed branch forces the opposite
// status into the parent and propagation resumes.
//
// opts is shared by pointer across the whole recursive search so that
// StallHints, consumed by setting the slice to nil, are applied at most
// once for the entire call — not once per speculative branch.
func runDriver(p *Puzzle, opts *Options) (bool, FailureKind) {
	q := newLineQueue(p.height(), p.width())
	for i := range p.rows {
		q.push(LineID{Horizontal, i})
	}
	for i := range p.cols {
		q.push(LineID{Vertical, i})
	}

	for {
		for !q.empty() {
			id, _ := q.pop()
			changes, err := solveLineCounted(p, id, opts)
			if err != nil {
				return false, kindOf(err)
			}
			for _, ch := range changes {
				enqueueCrossing(q, ch.Row, ch.Col)
			}
		}

		if p.complete() {
			return true, 0
		}

		if len(opts.StallHints) > 0 {
			hints := opts.StallHints
			opts.StallHints = nil
			for _, h := range hints {
				cell := p.Grid.At(h.Row, h.Col)
				ch, err := cell.SetStatus(h.Status)
				if err != nil {
					return false, kindOf(err)
				}
				if ch != nil {
					enqueueCrossing(q, h.Row, h.Col)
				}
			}
			continue
		}

		row, col, ok := p.firstUnknownCell()
		if !ok {
			return true, 0
		}

		clone := p.clone()
		clone.Grid.At(row, col).status = Filled

		if opts.Progress != nil {
			opts.Progress(EventSpeculateDescend, LineID{}, nil)
		}
		solved, _ := runDriver(clone, opts)
		if opts.Progress != nil {
			opts.Progress(EventSpeculateAscend, LineID{}, nil)
		}

		if solved {
			*p = *clone
			return true, 0
		}

		cell := p.Grid.At(row, col)
		ch, err := cell.SetStatus(Empty)
		if err != nil {
			return false, kindOf(err)
		}
		if ch != nil {
			enqueueCrossing(q, row, col)
		}
	}
}

// solveLineCounted wraps solveLine with the MaxIterations guard and the
// before/after progress callbacks.
func solveLineCounted(p *Puzzle, id LineID, opts *Options) ([]Change, error) {
	opts.iterations++
	if opts.iterations > opts.MaxIterations {
		return nil, &Failure{Kind: KindMaxIterationsExceeded, Line: id}
	}
	if opts.Progress != nil {
		opts.Progress(EventLineStart, id, nil)
	}
	changes, err := solveLine(p, id)
	if opts.Progress != nil {
		opts.Progress(EventLineEnd, id, changes)
	}
	return changes, err
}

func enqueueCrossing(q *lineQueue, row, col int) {
	q.push(LineID{Horizontal, row})
	q.push(LineID{Vertical, col})
}
