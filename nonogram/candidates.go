package nonogram

// recomputeCandidates rebuilds the candidate set of every non-completed run
// on the line from scratch (§9 takes the spec's explicit license not to
// cache monotone bounds across calls, for auditability over speed).
//
// Pass 1 (left to right) finds, for each run, every position satisfying
// conditions 1-4, 6 and 7 of §4.3, using the predecessor's already-computed
// earliest candidate as a floor. Pass 2 (right to left) then prunes
// candidates violating condition 5, using each successor's latest
// candidate as a ceiling. A run left with no candidates after either pass
// is a NoPlacement contradiction.
func recomputeCandidates(l *Line) ([]Change, error) {
	runs := l.Runs()
	n := l.Length()

	for i, run := range runs {
		if run.Completed {
			continue
		}
		lowerBound := 0
		if i > 0 {
			lowerBound = runs[i-1].EarliestEnd() + 1
		}
		var candidates []Range
		for s := lowerBound; s+run.Length <= n; s++ {
			if validCandidate(l, runs, i, s) {
				candidates = append(candidates, Range{s, s + run.Length})
			}
		}
		if len(candidates) == 0 {
			return nil, &Failure{Kind: KindNoPlacement, Line: l.id, Run: i}
		}
		run.Candidates = candidates
	}

	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		if run.Completed || i == len(runs)-1 {
			continue
		}
		upperLimit := runs[i+1].LatestStart() - 1
		var pruned []Range
		for _, c := range run.Candidates {
			if c.End <= upperLimit {
				pruned = append(pruned, c)
			}
		}
		if len(pruned) == 0 {
			return nil, &Failure{Kind: KindNoPlacement, Line: l.id, Run: i}
		}
		run.Candidates = pruned
	}

	return nil, nil
}

// validCandidate checks conditions 1, 2, 3, 6 and 7 of §4.3 for run idx
// placed at position s. Condition 4 (the predecessor floor) is enforced by
// the caller's scan range, condition 5 (the successor ceiling) by the
// second pass in recomputeCandidates.
func validCandidate(l *Line, runs []*Run, idx int, s int) bool {
	run := runs[idx]
	n := l.Length()
	end := s + run.Length
	o := l.id.Orientation

	for p := s; p < end; p++ {
		cell := l.At(p)
		if cell.Status() == Empty {
			return false // condition 1
		}
		if owner, ok := cell.Owner(o); ok && owner != idx {
			return false // condition 2
		}
	}
	if s > 0 && l.At(s-1).Status() == Filled {
		return false // condition 3 (left neighbour)
	}
	if end < n && l.At(end).Status() == Filled {
		return false // condition 3 (right neighbour)
	}
	rng := Range{s, end}
	for _, pos := range l.runOwnedPositions(idx) {
		if !rng.Contains(pos) {
			return false // condition 6
		}
	}
	if idx == 0 {
		for p := 0; p < s; p++ {
			if l.At(p).Status() == Filled {
				return false // condition 7, leftmost run
			}
		}
	}
	if idx == len(runs)-1 {
		for p := end; p < n; p++ {
			if l.At(p).Status() == Filled {
				return false // condition 7, rightmost run
			}
		}
	}
	return true
}
