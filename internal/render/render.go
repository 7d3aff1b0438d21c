// Package render draws a solved or partial nonogram grid as block-character
// ASCII, generalizing the teacher's sudoku/local_test.go printGrid helper
// from a fixed 9x9, 3-cell-bordered grid to an arbitrary W×H grid bordered
// every 5 cells.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nonogram/solver/nonogram"
)

// borderEvery is a cosmetic convention only, unlike Sudoku's every-3-cells
// border, which marks real 3x3 box boundaries; nonograms have no analogue.
const borderEvery = 5

// Grid writes grid as a bordered block-character grid to w: '#' for FILLED,
// '.' for EMPTY, '?' for UNKNOWN.
func Grid(w io.Writer, grid [][]nonogram.Status) error {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[0])
	horzLine := strings.Repeat("─", width*2+1)

	for r, row := range grid {
		if r%borderEvery == 0 {
			if _, err := fmt.Fprintf(w, "%s\n", horzLine); err != nil {
				return err
			}
		}
		for c, s := range row {
			if c%borderEvery == 0 {
				if _, err := fmt.Fprint(w, "|"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%c ", glyph(s)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "|\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", horzLine)
	return err
}

func glyph(s nonogram.Status) rune {
	switch s {
	case nonogram.Filled:
		return '#'
	case nonogram.Empty:
		return '.'
	default:
		return '?'
	}
}

// Outcome writes out.Grid (the solved grid, or the partial grid on failure)
// plus a one-line status footer.
func Outcome(w io.Writer, out nonogram.Outcome) error {
	if err := Grid(w, out.Grid); err != nil {
		return err
	}
	if out.Solved {
		_, err := fmt.Fprintln(w, "solved")
		return err
	}
	_, err := fmt.Fprintf(w, "failed: %s\n", out.Kind)
	return err
}
