package nonogram

// Cell holds one grid square's tri-state status plus the two run-owner
// indices (one per orientation), each set at most once and only once the
// cell is FILLED. Cell never panics: every policy violation is returned as
// a *Failure so the driver can route it into the backtracking discipline.
type Cell struct {
	Row, Col int

	status  Status
	hOwner  *int
	vOwner  *int
}

// Status returns the cell's current tri-state value.
func (c *Cell) Status() Status {
	return c.status
}

// SetStatus transitions the cell to new. UNKNOWN->{FILLED,EMPTY} succeeds
// and returns the resulting Change; re-asserting the current value is a
// no-op (nil Change, nil error); asserting the other terminal status fails
// with a StatusConflict Failure. The status field is monotone: once this
// returns a non-nil Change, the cell never reverts.
func (c *Cell) SetStatus(new Status) (*Change, error) {
	if c.status == new {
		return nil, nil
	}
	if c.status != Unknown {
		return nil, &Failure{Kind: KindStatusConflict, Row: c.Row, Col: c.Col, Old: c.status, New: new}
	}
	old := c.status
	c.status = new
	return &Change{Kind: ChangeStatus, Row: c.Row, Col: c.Col, OldStatus: old, NewStatus: new}, nil
}

// AssignOwner records that this cell belongs to run runIndex in the given
// orientation. Requires the cell to already be FILLED (NotFilled
// otherwise). Re-asserting the same owner is a no-op; asserting a different
// owner than the one already set fails with OwnerConflict.
func (c *Cell) AssignOwner(o Orientation, runIndex int) (*Change, error) {
	if c.status != Filled {
		return nil, &Failure{Kind: KindNotFilled, Row: c.Row, Col: c.Col, Orientation: o, New: c.status}
	}
	ptr := c.ownerPtr(o)
	if *ptr != nil {
		if **ptr == runIndex {
			return nil, nil
		}
		return nil, &Failure{Kind: KindOwnerConflict, Row: c.Row, Col: c.Col, Orientation: o}
	}
	v := runIndex
	*ptr = &v
	return &Change{Kind: ChangeOwner, Row: c.Row, Col: c.Col, Orientation: o, OldOwner: -1, NewOwner: runIndex}, nil
}

// Owner reports the run index owning this cell in orientation o, if any.
func (c *Cell) Owner(o Orientation) (int, bool) {
	ptr := c.ownerPtr(o)
	if *ptr == nil {
		return 0, false
	}
	return **ptr, true
}

func (c *Cell) ownerPtr(o Orientation) **int {
	if o == Horizontal {
		return &c.hOwner
	}
	return &c.vOwner
}

func (c *Cell) clone() Cell {
	cp := Cell{Row: c.Row, Col: c.Col, status: c.status}
	if c.hOwner != nil {
		v := *c.hOwner
		cp.hOwner = &v
	}
	if c.vOwner != nil {
		v := *c.vOwner
		cp.vOwner = &v
	}
	return cp
}
