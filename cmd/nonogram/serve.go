package main

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nonogram/solver/internal/config"
	"github.com/nonogram/solver/internal/puzzlefile"
	"github.com/nonogram/solver/nonogram"
)

const helpText = `Nonogram Solver API.

Invoke at this endpoint using POST, Content-Type application/json, with a
body of the form:

	{"row_runs": [[1],[3],[1]], "col_runs": [[1],[3],[1]]}

The response is either {"status":"solved","grid":[...]} or
{"status":"failed","kind":"...","partial_grid":[...]}.`

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			http.HandleFunc("/nonogram/solve", solveHandler(cfg))
			log.Infof("listening on %s", cfg.ListenAddr)
			return errors.Wrap(http.ListenAndServe(cfg.ListenAddr, nil), "serve")
		},
	}
}

// solveHandler generalizes the teacher's sudoku solver HTTP handler from a
// fixed 9x9 grid to arbitrary W×H nonograms. Each request builds its own
// Puzzle from its own decoded PuzzleSpec, so concurrent requests never share
// solver state.
func solveHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprintln(w, helpText)

		case http.MethodPost:
			defer r.Body.Close()
			spec, err := puzzlefile.DecodeJSON(r.Body)
			if err != nil {
				log.Errorf("%v", err)
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintln(w, "400 - Bad Request")
				return
			}

			opts := nonogram.DefaultOptions()
			opts.MaxIterations = cfg.MaxIterations
			opts.StallHints = cfg.StallHints

			out := nonogram.Solve(spec, opts)
			if err := puzzlefile.EncodeResult(w, out); err != nil {
				log.Errorf("%v", err)
			}

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			fmt.Fprintln(w, "405 - Method Not Allowed")
		}
	}
}
