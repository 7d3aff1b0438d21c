package nonogram

// inferStatuses is §4.4: every position inside all of a run's remaining
// candidates must be FILLED and owned by that run; a run with exactly one
// remaining candidate is complete, with its neighbours forced EMPTY; and
// any position outside every run's candidates must be EMPTY.
func inferStatuses(l *Line) ([]Change, error) {
	var changes []Change
	runs := l.Runs()
	n := l.Length()

	for i, run := range runs {
		if run.Completed || len(run.Candidates) == 0 {
			continue
		}
		certain := run.certainRange()
		for p := certain.Start; p < certain.End; p++ {
			cell := l.At(p)
			if ch, err := cell.SetStatus(Filled); err != nil {
				return changes, err
			} else if ch != nil {
				changes = append(changes, *ch)
			}
			if ch, err := cell.AssignOwner(l.id.Orientation, i); err != nil {
				return changes, err
			} else if ch != nil {
				changes = append(changes, *ch)
			}
		}
		if len(run.Candidates) == 1 {
			placement := run.Candidates[0]
			run.Completed = true
			if placement.Start > 0 {
				if ch, err := l.At(placement.Start - 1).SetStatus(Empty); err != nil {
					return changes, err
				} else if ch != nil {
					changes = append(changes, *ch)
				}
			}
			if placement.End < n {
				if ch, err := l.At(placement.End).SetStatus(Empty); err != nil {
					return changes, err
				} else if ch != nil {
					changes = append(changes, *ch)
				}
			}
		}
	}

	covered := make([]bool, n)
	for _, run := range runs {
		for _, c := range run.Candidates {
			for p := c.Start; p < c.End; p++ {
				covered[p] = true
			}
		}
	}
	for pos := 0; pos < n; pos++ {
		if covered[pos] {
			continue
		}
		if ch, err := l.At(pos).SetStatus(Empty); err != nil {
			return changes, err
		} else if ch != nil {
			changes = append(changes, *ch)
		}
	}
	return changes, nil
}

// inferRunAssignments is §4.5: for every maximal unowned FILLED sequence,
// narrow down which run it belongs to. A unique possible owner assigns
// immediately; otherwise two weaker deductions still apply (same-length
// possible set forces the sequence's neighbours EMPTY; the shared window of
// the shortest possible run's length fills additional cells at both ends).
//
// Sequences are walked left to right, tracking the lowest run index still
// available to a later sequence: once a sequence is uniquely (or
// necessarily, via its lowest possible index) assigned to run k, no
// sequence further right can belong to any run before k, since runs occupy
// a line in the order given by the puzzle (the ordering narrowing rule of
// §4.5's final bullet, restricted to this monotone single pass).
func inferRunAssignments(l *Line) ([]Change, error) {
	var changes []Change
	o := l.id.Orientation
	runs := l.Runs()
	fields := l.Fields()
	minRunIdx := 0

	for _, seq := range l.filledSequences() {
		if !l.sequenceUnowned(seq, o) {
			continue
		}

		var possible []int
		for i := minRunIdx; i < len(runs); i++ {
			run := runs[i]
			if run.Length < seq.Len() {
				continue
			}
			for _, c := range run.Candidates {
				if c.ContainsRange(seq) {
					possible = append(possible, i)
					break
				}
			}
		}
		if len(possible) == 0 {
			return changes, &Failure{Kind: KindOwnershipImpossible, Line: l.id, Range: seq}
		}
		if len(possible) == 1 {
			idx := possible[0]
			for p := seq.Start; p < seq.End; p++ {
				if ch, err := l.At(p).AssignOwner(o, idx); err != nil {
					return changes, err
				} else if ch != nil {
					changes = append(changes, *ch)
				}
			}
			if idx > minRunIdx {
				minRunIdx = idx
			}
			continue
		}
		minRunIdx = possible[0]

		allSameLen := true
		minLen := runs[possible[0]].Length
		for _, idx := range possible {
			if runs[idx].Length != seq.Len() {
				allSameLen = false
			}
			if runs[idx].Length < minLen {
				minLen = runs[idx].Length
			}
		}
		if allSameLen {
			if seq.Start > 0 {
				if ch, err := l.At(seq.Start - 1).SetStatus(Empty); err != nil {
					return changes, err
				} else if ch != nil {
					changes = append(changes, *ch)
				}
			}
			if seq.End < l.Length() {
				if ch, err := l.At(seq.End).SetStatus(Empty); err != nil {
					return changes, err
				} else if ch != nil {
					changes = append(changes, *ch)
				}
			}
		}

		field := fieldContaining(fields, seq)
		m := minLen
		leftAnchor := max(seq.Start-m+1, field.Start)
		leftEnd := leftAnchor + m
		for p := seq.Start; p < leftEnd; p++ {
			if ch, err := l.At(p).SetStatus(Filled); err != nil {
				return changes, err
			} else if ch != nil {
				changes = append(changes, *ch)
			}
		}
		rightAnchor := min(seq.End+m-1, field.End)
		rightStart := rightAnchor - m
		for p := rightStart; p < seq.End; p++ {
			if ch, err := l.At(p).SetStatus(Filled); err != nil {
				return changes, err
			} else if ch != nil {
				changes = append(changes, *ch)
			}
		}
	}

	return changes, nil
}

func (l *Line) sequenceUnowned(seq Range, o Orientation) bool {
	for p := seq.Start; p < seq.End; p++ {
		if _, ok := l.At(p).Owner(o); ok {
			return false
		}
	}
	return true
}
