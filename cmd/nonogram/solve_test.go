package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nonogram/solver/internal/config"
)

func TestSolveCmdTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.non")
	text := "1\n3\n1\n\n1\n3\n1\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	cfg := config.Default()
	cmd := newSolveCmd(&cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected rendered grid output")
	}
}

func TestSolveCmdMissingFile(t *testing.T) {
	cfg := config.Default()
	cmd := newSolveCmd(&cfg)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.non")})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}

// TestSolveCmdUnsolvedReturnsError exercises a contradictory puzzle end to
// end and checks RunE reports failure via its return value rather than
// os.Exit, which would otherwise kill the test binary.
func TestSolveCmdUnsolvedReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.non")
	// A 2x1 grid where the row demands a run of 1 but both columns
	// demand 0, an infeasible combination.
	text := "1\n\n0\n0\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	cfg := config.Default()
	cmd := newSolveCmd(&cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unsolvable puzzle")
	}
	var unsolved errUnsolved
	if !errors.As(err, &unsolved) {
		t.Fatalf("got error %v, want errUnsolved", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected the partial result to still be rendered")
	}
}
