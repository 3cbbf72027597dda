// Package bench runs literal full-scale bulk scenarios that unit tests
// only exercise at a scaled-down N and P. It mirrors the teacher's
// benchmarks package: a Config plus a Harness that collects named
// Results and prints them in text, CSV, or JSON.
package bench

import (
	"io"

	"github.com/go-logr/logr"
)

// Config controls a Harness run.
type Config struct {
	// Output receives human-readable progress lines written during a
	// run (ignored by PrintJSON/PrintCSV, which take their own writer).
	Output io.Writer

	// Verbose enables per-scenario progress lines on Output.
	Verbose bool

	// Workers bounds the concurrency of a scenario's bulk
	// verification pass. A value <= 0 means "run serially."
	Workers int

	// Seed feeds every scenario's random SDR generation.
	Seed int64

	// Log receives construction and summary events; defaults to
	// discarding if left zero-valued.
	Log logr.Logger
}

// DefaultConfig returns a Config with literal-scale scenarios in mind:
// bounded worker count, no logging, seed fixed for reproducibility.
func DefaultConfig() Config {
	return Config{
		Workers: 8,
		Seed:    1,
	}
}
