// Command sdrbench runs the associative-memory library's literal
// full-scale bulk scenarios: thousands-of-SDRs dyadic and triadic
// recall chains, dense/sparse backend equivalence, a sequence
// prediction pass, and the binarize tie-widening check.
//
// Usage:
//
//	go run ./cmd/sdrbench [flags]
//
// Flags:
//
//	-format     Output format: text, csv, or json (default: text)
//	-scenario   Run only the named scenario (default: all)
//	-workers    Worker count for bulk verification fan-out (default: 8)
//	-seed       Random seed (default: 1)
//	-o          Output file (default: stdout)
//	-v          Verbose progress output
//
// Example:
//
//	# Run every scenario with human-readable output
//	go run ./cmd/sdrbench
//
//	# Run the dyadic bulk scenario alone, JSON output, for CI comparison
//	go run ./cmd/sdrbench -scenario=dyadic-bulk -format=json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/sdrmem/bench"
	"github.com/sarchlab/sdrmem/internal/telemetry"
)

var (
	format     = flag.String("format", "text", "Output format: text, csv, or json")
	scenario   = flag.String("scenario", "", "Run only the named scenario (default: all)")
	workers    = flag.Int("workers", 8, "Worker count for bulk verification fan-out")
	seed       = flag.Int64("seed", 1, "Random seed")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	verbose    = flag.Bool("v", false, "Verbose progress output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sdrbench - associative memory bulk scenario runner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sdrbench [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the literal N/P/count scenarios used to confirm recall\n")
		fmt.Fprintf(os.Stderr, "capacity at scale; unit tests only exercise scaled-down variants.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	output := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				fmt.Fprintf(os.Stderr, "error closing output file: %v\n", cerr)
			}
		}()
		output = f
	}

	cfg := bench.DefaultConfig()
	cfg.Workers = *workers
	cfg.Seed = *seed
	cfg.Verbose = *verbose
	cfg.Output = os.Stderr
	if *verbose {
		cfg.Log = telemetry.NewLogger("sdrbench", os.Stderr)
	}

	harness := bench.NewHarness(cfg)

	all := bench.AllScenarios()
	if *scenario == "" {
		harness.AddScenarios(all...)
	} else {
		found := false
		for _, s := range all {
			if s.Name == *scenario {
				harness.AddScenarios(s)
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *scenario)
			os.Exit(1)
		}
	}

	results := harness.RunAll(context.Background())

	var err error
	switch *format {
	case "json":
		err = bench.PrintJSON(output, results)
	case "csv":
		err = bench.PrintCSV(output, results)
	case "text":
		bench.PrintText(output, results)
	default:
		fmt.Fprintf(os.Stderr, "unknown format: %s (use text, csv, or json)\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if !r.Pass {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d scenarios failed\n", failed, len(results))
		os.Exit(1)
	}
}
