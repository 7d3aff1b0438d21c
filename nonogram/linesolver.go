package nonogram

// solveLine runs the fixed §4.6 order — check_completed_runs,
// check_line_completed, and (if the line isn't done) recompute_candidates,
// infer_run_assignments, infer_statuses — returning the concatenated change
// log in source order, or the first failure encountered.
func solveLine(p *Puzzle, id LineID) ([]Change, error) {
	l := newLine(p, id)
	var all []Change

	changes, err := checkCompletedRuns(l)
	all = append(all, changes...)
	if err != nil {
		return all, err
	}

	changes, err = checkLineCompleted(l)
	all = append(all, changes...)
	if err != nil {
		return all, err
	}
	if l.Completed() {
		return all, nil
	}

	changes, err = recomputeCandidates(l)
	all = append(all, changes...)
	if err != nil {
		return all, err
	}

	changes, err = inferRunAssignments(l)
	all = append(all, changes...)
	if err != nil {
		return all, err
	}

	changes, err = inferStatuses(l)
	all = append(all, changes...)
	if err != nil {
		return all, err
	}

	return all, nil
}
