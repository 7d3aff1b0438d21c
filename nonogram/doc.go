// Package nonogram solves nonogram (picross) puzzles: given a list of
// run-length descriptors for every row and column of a W×H grid, it derives
// a FILLED/EMPTY status for every cell that satisfies all the descriptors.
//
// The solver is a fixed-point constraint propagation loop over rows and
// columns (see Line, Run and the recompute/infer/complete steps in
// candidates.go, inference.go and completion.go), driven by a work queue
// (queue.go) that falls back to bounded speculative search with rollback
// (driver.go) when propagation alone cannot finish the puzzle.
//
// Parsing puzzle files and rendering solved grids are not this package's
// job — see internal/puzzlefile and internal/render. Solve is the only
// entry point external callers need.
package nonogram
