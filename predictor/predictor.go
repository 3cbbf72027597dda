// Package predictor implements the Sequence Predictor: two triadic
// memories and a rolling three-SDR context that turn an online stream
// of SDRs into learned transitions, using a random-key context trick
// to disambiguate histories that share a recent bigram.
package predictor

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/sarchlab/sdrmem/internal/telemetry"
	"github.com/sarchlab/sdrmem/memory"
	"github.com/sarchlab/sdrmem/sdr"
)

// SequencePredictor wraps two TriadicMemory instances (Mkeys, Mpred)
// and a rolling context of three SDRs (r, u, yPrev). Predict is not a
// pure function: it stores into both memories and updates the
// predictor in place. The new context triple is computed first and
// then assigned as a whole at the end of each step.
type SequencePredictor struct {
	n, p        int
	minDistance float64
	rng         *rand.Rand

	mKeys memory.TriadicMemory
	mPred memory.TriadicMemory

	log logr.Logger

	r, u, yPrev []uint32
}

// New constructs a SequencePredictor from cfg, seeding its context
// with three freshly generated random SDRs. Construction is logged at
// the discard level; use NewWithLogger to observe it.
func New(cfg Config) *SequencePredictor {
	return NewWithLogger(cfg, telemetry.Discard())
}

// NewWithLogger is New but with an explicit logr.Logger, tagged with
// a fresh run ID so concurrent predictors can be told apart in logs.
// The predictor never reaches for a package-level logger, matching
// the teacher's habit of threading dependencies explicitly rather
// than through singletons.
func NewWithLogger(cfg Config, log logr.Logger) *SequencePredictor {
	minDistance := cfg.MinDistance
	if minDistance == 0 {
		minDistance = DefaultMinDistance
	}

	runID := telemetry.NewRunID()
	log = log.WithValues("run", runID)
	log.V(1).Info("constructing sequence predictor", "N", cfg.N, "P", cfg.P, "minDistance", minDistance)

	sp := &SequencePredictor{
		n:           cfg.N,
		p:           cfg.P,
		minDistance: minDistance,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		mKeys:       memory.NewDenseTriadic(cfg.N, cfg.P),
		mPred:       memory.NewDenseTriadic(cfg.N, cfg.P),
		log:         log,
	}
	sp.ResetContext()
	return sp
}

// ResetContext replaces the rolling context with three freshly
// generated random SDRs, as at construction.
func (sp *SequencePredictor) ResetContext() {
	sp.r = sdr.Random(sp.rng, sp.n, sp.p)
	sp.u = sdr.Random(sp.rng, sp.n, sp.p)
	sp.yPrev = sdr.Random(sp.rng, sp.n, sp.p)
	sp.log.V(1).Info("context reset")
}

// Predict consumes one input SDR, teaches the predictor the
// transition it just observed if it differs enough from what was
// predicted, and returns the SDR predicted for the step after this
// one.
//
// The predictor is known to cycle back to the first element of a
// learned sequence after its last element, since (u, yPrev) -> y
// storage has no terminator; this is an external contract of the
// algorithm, not a bug to paper over.
func (sp *SequencePredictor) Predict(input []uint32) []uint32 {
	pred := sp.mPred.QueryZ(sp.u, sp.yPrev)
	if sdr.Distance(input, pred) > sp.minDistance {
		sp.mPred.Store(sp.u, sp.yPrev, input)
	}

	uNew := sdr.Union(sp.yPrev, sp.r)

	rNew := sp.mKeys.QueryZ(uNew, input)
	uCheck := sp.mKeys.QueryX(input, rNew)
	if sdr.Overlap(uNew, uCheck) < sp.p {
		rNew = sdr.Random(sp.rng, sp.n, sp.p)
		sp.mKeys.Store(uNew, input, rNew)
	}

	sp.r, sp.u, sp.yPrev = rNew, uNew, input

	return sp.mPred.QueryZ(sp.u, sp.yPrev)
}
