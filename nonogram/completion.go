package nonogram

// checkCompletedRuns is §4.6's first step: every maximal run of contiguous
// FILLED cells may have at most one owner. More than one distinct owner in
// the same sequence is a contradiction; exactly one assigns that owner to
// every cell of the sequence, and completes the run when the sequence's
// length matches the run's length.
func checkCompletedRuns(l *Line) ([]Change, error) {
	var changes []Change
	o := l.id.Orientation
	runs := l.Runs()

	for _, seq := range l.filledSequences() {
		owners := map[int]bool{}
		for p := seq.Start; p < seq.End; p++ {
			if idx, ok := l.At(p).Owner(o); ok {
				owners[idx] = true
			}
		}
		if len(owners) > 1 {
			return changes, &Failure{Kind: KindOwnershipImpossible, Line: l.id, Range: seq}
		}
		if len(owners) != 1 {
			continue
		}
		var idx int
		for k := range owners {
			idx = k
		}
		for p := seq.Start; p < seq.End; p++ {
			if ch, err := l.At(p).AssignOwner(o, idx); err != nil {
				return changes, err
			} else if ch != nil {
				changes = append(changes, *ch)
			}
		}
		run := runs[idx]
		if run.Completed || seq.Len() != run.Length {
			continue
		}
		run.Completed = true
		run.Candidates = []Range{seq}
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
	return changes, nil
}

// checkLineCompleted is §4.6's second step: a line with no runs, or whose
// every run is zero-length or already completed, has every remaining
// UNKNOWN cell forced EMPTY and is marked completed. A FILLED cell outside
// every completed run's placement is reported as a StatusConflict.
func checkLineCompleted(l *Line) ([]Change, error) {
	var changes []Change
	runs := l.Runs()

	allDone := true
	for _, run := range runs {
		if run.Length == 0 {
			run.Completed = true
			continue
		}
		if !run.Completed {
			allDone = false
		}
	}
	if !allDone {
		return changes, nil
	}

	for pos := 0; pos < l.Length(); pos++ {
		// Cells of a completed run's placement stay FILLED. Every other cell
		// goes through SetStatus, not just UNKNOWN ones: a cell the crossing
		// line already forced FILLED here is a contradiction, and SetStatus
		// surfaces it as a StatusConflict instead of it passing silently.
		placed := false
		for _, run := range runs {
			placed = placed || (run.Length > 0 && run.Candidates[0].Contains(pos))
		}
		if placed {
			continue
		}
		if ch, err := l.At(pos).SetStatus(Empty); err != nil {
			return changes, err
		} else if ch != nil {
			changes = append(changes, *ch)
		}
	}
	l.setCompleted(true)
	return changes, nil
}
