package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/sarchlab/sdrmem/internal/telemetry"
)

// Result is the outcome of one scenario run.
type Result struct {
	Name     string
	N, P     int
	Count    int // number of store/query operations performed
	SizeErrs int // recalls/queries that came back the wrong size
	DistErrs int // recalls/queries that differ from the expected SDR
	Duration time.Duration
	Pass     bool
	Detail   string
}

// Scenario is a named, self-contained benchmark function. It receives
// the harness Config so it can honor Workers/Seed/Verbose, and returns
// a Result plus any error that prevented it from completing at all
// (a failed assertion inside the scenario is reported via Result.Pass,
// not via this error).
type Scenario struct {
	Name string
	Run  func(ctx context.Context, cfg Config) (Result, error)
}

// Harness runs a list of Scenarios and collects their Results, in the
// shape of the teacher's benchmark runner: AddBenchmarks/RunAll/Print*.
type Harness struct {
	cfg       Config
	scenarios []Scenario
}

// NewHarness constructs a Harness bound to cfg. A zero-valued cfg.Log
// is replaced with a discarding logger, the same default the
// predictor package uses for callers that don't care to observe
// construction.
func NewHarness(cfg Config) *Harness {
	if cfg.Log == (logr.Logger{}) {
		cfg.Log = telemetry.Discard()
	}
	cfg.Log.V(1).Info("constructing harness", "workers", cfg.Workers, "seed", cfg.Seed)
	return &Harness{cfg: cfg}
}

// AddScenarios appends to the harness's run list.
func (h *Harness) AddScenarios(scenarios ...Scenario) {
	h.scenarios = append(h.scenarios, scenarios...)
}

// RunAll runs every added scenario in order and returns their Results.
// A scenario that errors out (as opposed to merely failing its
// assertions) is recorded with Pass=false and the error text in Detail.
func (h *Harness) RunAll(ctx context.Context) []Result {
	results := make([]Result, 0, len(h.scenarios))
	for _, s := range h.scenarios {
		if h.cfg.Verbose && h.cfg.Output != nil {
			fmt.Fprintf(h.cfg.Output, "running %s...\n", s.Name)
		}
		start := time.Now()
		res, err := s.Run(ctx, h.cfg)
		res.Name = s.Name
		res.Duration = time.Since(start)
		if err != nil {
			res.Pass = false
			res.Detail = err.Error()
		}
		results = append(results, res)
	}
	return results
}
