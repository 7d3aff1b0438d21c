package nonogram

import "testing"

func newTestPuzzle(t *testing.T, spec PuzzleSpec) *Puzzle {
	t.Helper()
	p, err := newPuzzle(spec)
	if err != nil {
		t.Fatalf("unexpected infeasible spec: %v", err)
	}
	return p
}

func TestCheckCompletedRunsAssignsUniqueOwner(t *testing.T) {
	p := newTestPuzzle(t, PuzzleSpec{
		RowRuns: [][]int{{2}},
		ColRuns: [][]int{{1}, {1}, {}},
	})
	// Force both cells of the only run FILLED without going through the
	// deductive path, to isolate checkCompletedRuns, and give only the first
	// cell an owner: checkCompletedRuns must spread it to the whole sequence.
	if _, err := p.Grid.At(0, 0).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Grid.At(0, 1).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Grid.At(0, 0).AssignOwner(Horizontal, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := newLine(p, LineID{Horizontal, 0})
	changes, err := checkCompletedRuns(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("expected owner-assignment changes")
	}
	for _, pos := range []int{0, 1} {
		idx, ok := p.Grid.At(0, pos).Owner(Horizontal)
		if !ok || idx != 0 {
			t.Fatalf("cell %d not owned by run 0: %v, %v", pos, idx, ok)
		}
	}
	if !p.rows[0].runs[0].Completed {
		t.Fatal("expected the run to be marked completed")
	}
}

func TestCheckCompletedRunsConflictingOwners(t *testing.T) {
	p := newTestPuzzle(t, PuzzleSpec{
		RowRuns: [][]int{{2}},
		ColRuns: [][]int{{1}, {1}, {}},
	})
	if _, err := p.Grid.At(0, 0).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Grid.At(0, 1).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Grid.At(0, 0).AssignOwner(Horizontal, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Force the second cell of the same contiguous FILLED sequence to a
	// different owner than the first: the sequence has two distinct owners.
	p.rows[0].runs = append(p.rows[0].runs, &Run{Orientation: Horizontal, LineIndex: 0, Index: 1, Length: 0})
	if _, err := p.Grid.At(0, 1).AssignOwner(Horizontal, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := newLine(p, LineID{Horizontal, 0})
	_, err := checkCompletedRuns(l)
	f, ok := err.(*Failure)
	if !ok || f.Kind != KindOwnershipImpossible {
		t.Fatalf("expected KindOwnershipImpossible, got %v", err)
	}
}

// TestCheckLineCompletedForcesRemainingEmpty exercises the all-runs-done
// path: every UNKNOWN position must be forced EMPTY and the line marked
// completed.
func TestCheckLineCompletedForcesRemainingEmpty(t *testing.T) {
	p := newTestPuzzle(t, PuzzleSpec{
		RowRuns: [][]int{{}},
		ColRuns: [][]int{{}, {}, {}},
	})
	l := newLine(p, LineID{Horizontal, 0})
	changes, err := checkLineCompleted(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 3 {
		t.Fatalf("expected all 3 cells forced EMPTY, got %d changes", len(changes))
	}
	if !l.Completed() {
		t.Fatal("expected the line to be marked completed")
	}
}

// TestCheckLineCompletedDetectsContradiction is the regression case: a
// line with no runs demands every cell EMPTY, but another line already
// forced one of those cells FILLED. That must surface as a conflict, not
// pass silently.
func TestCheckLineCompletedDetectsContradiction(t *testing.T) {
	p := newTestPuzzle(t, PuzzleSpec{
		RowRuns: [][]int{{2}},
		ColRuns: [][]int{{1}, {}},
	})
	if _, err := p.Grid.At(0, 1).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := newLine(p, LineID{Vertical, 1})
	_, err := checkLineCompleted(l)
	f, ok := err.(*Failure)
	if !ok || f.Kind != KindStatusConflict {
		t.Fatalf("expected KindStatusConflict, got %v", err)
	}
}
