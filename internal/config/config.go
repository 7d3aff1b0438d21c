// Package config builds the settings shared by the nonogram CLI's solve and
// serve subcommands from pflag-bound flags, with NONOGRAM_* environment
// variables as a fallback for unset flags.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/nonogram/solver/nonogram"
)

// Config holds every setting cmd/nonogram's subcommands read.
type Config struct {
	MaxIterations int
	StallHints    []nonogram.Hint
	ListenAddr    string
	LogLevel      string

	stallHintsRaw string
}

// Default mirrors the documented driver defaults.
func Default() Config {
	return Config{
		MaxIterations: nonogram.DefaultMaxIterations,
		ListenAddr:    "localhost:8000",
		LogLevel:      "info",
	}
}

// BindFlags registers --max-iterations, --stall-hints, --listen-addr and
// --log-level on fs against c, so callers can do BindFlags then fs.Parse,
// then ParseStallHints, then Finalize.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "cap on total line-solver invocations")
	fs.StringVar(&c.stallHintsRaw, "stall-hints", "", "semicolon-separated row,col,status triples (status: FILLED or EMPTY), applied once deduction stalls")
	fs.StringVar(&c.ListenAddr, "listen-addr", c.ListenAddr, "address the serve subcommand listens on")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level: debug, info, warn, error")
}

// ParseStallHints decodes --stall-hints into c.StallHints. Call after
// fs.Parse. A malformed triple is wrapped with context identifying which
// one failed.
func (c *Config) ParseStallHints() error {
	if c.stallHintsRaw == "" {
		return nil
	}
	for _, triple := range strings.Split(c.stallHintsRaw, ";") {
		fields := strings.Split(triple, ",")
		if len(fields) != 3 {
			return errors.Errorf("stall hint %q: want row,col,status", triple)
		}
		row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return errors.Wrapf(err, "stall hint %q: bad row", triple)
		}
		col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return errors.Wrapf(err, "stall hint %q: bad col", triple)
		}
		var status nonogram.Status
		switch strings.ToUpper(strings.TrimSpace(fields[2])) {
		case "FILLED":
			status = nonogram.Filled
		case "EMPTY":
			status = nonogram.Empty
		default:
			return errors.Errorf("stall hint %q: status must be FILLED or EMPTY", triple)
		}
		c.StallHints = append(c.StallHints, nonogram.Hint{Row: row, Col: col, Status: status})
	}
	return nil
}

// Finalize overlays NONOGRAM_* environment variables onto any flag the
// caller did not pass explicitly on fs. An explicit flag always wins over
// the environment, which in turn wins over the Default() value.
func (c *Config) Finalize(fs *pflag.FlagSet) {
	if !fs.Changed("max-iterations") {
		if v, ok := os.LookupEnv("NONOGRAM_MAX_ITERATIONS"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxIterations = n
			}
		}
	}
	if !fs.Changed("listen-addr") {
		if v, ok := os.LookupEnv("NONOGRAM_LISTEN_ADDR"); ok {
			c.ListenAddr = v
		}
	}
	if !fs.Changed("log-level") {
		if v, ok := os.LookupEnv("NONOGRAM_LOG_LEVEL"); ok {
			c.LogLevel = v
		}
	}
}
