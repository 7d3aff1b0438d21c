package nonogram

// DefaultMaxIterations caps total line-solver invocations per §6.
const DefaultMaxIterations = 100_000

// EventKind tags a progress observer call.
type EventKind int

const (
	EventLineStart EventKind = iota
	EventLineEnd
	EventSpeculateDescend
	EventSpeculateAscend
)

func (k EventKind) String() string {
	switch k {
	case EventLineStart:
		return "line-start"
	case EventLineEnd:
		return "line-end"
	case EventSpeculateDescend:
		return "speculate-descend"
	case EventSpeculateAscend:
		return "speculate-ascend"
	default:
		return "unknown"
	}
}

// ProgressFunc is called before and after each line-solver invocation and
// on each speculative descent/ascent. Observers must not mutate solver
// state; id and changes are only meaningful for EventLineStart/EventLineEnd.
type ProgressFunc func(kind EventKind, id LineID, changes []Change)

// Hint is a cell the caller wants forced to a status once deduction stalls,
// before speculative search begins (§6's stall_hints).
type Hint struct {
	Row, Col int
	Status   Status
}

// Options configures a Solve call. The zero value is usable: MaxIterations
// defaults to DefaultMaxIterations when <= 0, and a nil Progress/empty
// StallHints are simply no-ops.
type Options struct {
	MaxIterations int
	StallHints    []Hint
	Progress      ProgressFunc

	iterations int // running count of line-solver invocations, guarded by MaxIterations
}

// DefaultOptions returns the documented defaults from §6.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}
