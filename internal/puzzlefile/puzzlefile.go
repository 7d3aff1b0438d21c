// Package puzzlefile decodes a nonogram.PuzzleSpec from either of two
// on-disk forms: the JSON wire format cmd/nonogram serve also accepts, and a
// plain line-oriented text notation for hand-written puzzle files.
package puzzlefile

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nonogram/solver/nonogram"
)

// DecodeJSON reads a {"row_runs": [...], "col_runs": [...]} document, the
// same shape the teacher's solver decoded straight off an http.Request body.
func DecodeJSON(r io.Reader) (nonogram.PuzzleSpec, error) {
	var spec nonogram.PuzzleSpec
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return nonogram.PuzzleSpec{}, errors.Wrap(err, "can't decode JSON puzzle")
	}
	return spec, nil
}

// DecodeText reads the row-per-line notation: one line of whitespace- or
// comma-separated run lengths per row, a single blank line, then the same
// for columns. A run list of "0" denotes a line with no filled cells. Blank
// lines never stand for such a line: the first one separates rows from
// columns and any later ones are skipped.
//
//	1
//	3
//	1
//
//	1
//	3
//	1
func DecodeText(r io.Reader) (nonogram.PuzzleSpec, error) {
	scanner := bufio.NewScanner(r)
	var rowRuns, colRuns [][]int
	section := &rowRuns

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if section == &rowRuns {
				section = &colRuns
				continue
			}
			continue
		}
		runs, err := parseRunLine(line)
		if err != nil {
			return nonogram.PuzzleSpec{}, errors.Wrapf(err, "line %d", lineNo)
		}
		*section = append(*section, runs)
	}
	if err := scanner.Err(); err != nil {
		return nonogram.PuzzleSpec{}, errors.Wrap(err, "reading puzzle text")
	}
	return nonogram.PuzzleSpec{RowRuns: rowRuns, ColRuns: colRuns}, nil
}

// Result is the JSON wire form of a nonogram.Outcome, a rename of the
// teacher's JsonGrid{Solution, Status} into the two-outcome shape the
// solver itself returns.
type Result struct {
	Grid        [][]nonogram.Status `json:"grid,omitempty"`
	PartialGrid [][]nonogram.Status `json:"partial_grid,omitempty"`
	Status      string              `json:"status"`
	Kind        string              `json:"kind,omitempty"`
}

// EncodeResult translates a solver outcome into its wire Result and writes
// it as JSON to w.
func EncodeResult(w io.Writer, out nonogram.Outcome) error {
	res := Result{Status: "failed", Kind: out.Kind.String()}
	if out.Solved {
		res.Status = "solved"
		res.Grid = out.Grid
		res.Kind = ""
	} else {
		res.PartialGrid = out.Grid
	}
	if err := json.NewEncoder(w).Encode(res); err != nil {
		return errors.Wrap(err, "can't encode result")
	}
	return nil
}

func parseRunLine(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	runs := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad run length %q", f)
		}
		if n == 0 && len(fields) == 1 {
			return []int{}, nil
		}
		runs = append(runs, n)
	}
	return runs, nil
}
