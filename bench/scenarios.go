package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/sdrmem/memory"
	"github.com/sarchlab/sdrmem/predictor"
	"github.com/sarchlab/sdrmem/sdr"
)

// DyadicBulk stores a chain of 45001 random SDRs (N=1000, P=10) into a
// DyadicMemory pair by pair, then recalls every key and checks it
// reproduces the next SDR in the chain.
func DyadicBulk() Scenario {
	const n, p, count = 1000, 10, 45000
	return Scenario{
		Name: "dyadic-bulk",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			series := sdr.RandomSeries(rng, count+1, n, p)

			mem := memory.NewDenseDyadic(n, p)
			for i := 0; i < count; i++ {
				mem.Store(series[i], series[i+1])
			}

			res := Result{N: n, P: p, Count: count}
			errs, groupErr := verifyParallel(ctx, cfg.Workers, count, func(i int) (sizeErr, distErr bool) {
				got := mem.Recall(series[i])
				if len(got) != p {
					return true, false
				}
				return false, sdr.Distance(got, series[i+1]) != 0
			})
			if groupErr != nil {
				return res, groupErr
			}
			res.SizeErrs, res.DistErrs = errs[0], errs[1]
			res.Pass = res.SizeErrs == 0 && res.DistErrs == 0
			res.Detail = fmt.Sprintf("%d size errors, %d distance errors out of %d recalls", res.SizeErrs, res.DistErrs, count)
			return res, nil
		},
	}
}

// TriadicBulkZ stores 100000 consecutive triples from a chain of
// 100002 random SDRs (N=1000, P=10), then calls QueryZ on every stored
// triple's (X,Y) and checks it reproduces Z exactly.
func TriadicBulkZ() Scenario {
	const n, p, count = 1000, 10, 100000
	return Scenario{
		Name: "triadic-bulk-z",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			series := sdr.RandomSeries(rand.New(rand.NewSource(cfg.Seed)), count+2, n, p)
			mem := memory.NewDenseTriadic(n, p)
			for k := 0; k < count; k++ {
				mem.Store(series[k], series[k+1], series[k+2])
			}

			res := Result{N: n, P: p, Count: count}
			errs, groupErr := verifyParallel(ctx, cfg.Workers, count, func(k int) (sizeErr, distErr bool) {
				got := mem.QueryZ(series[k], series[k+1])
				if len(got) != p {
					return true, false
				}
				return false, sdr.Distance(got, series[k+2]) != 0
			})
			if groupErr != nil {
				return res, groupErr
			}
			res.SizeErrs, res.DistErrs = errs[0], errs[1]
			res.Pass = res.SizeErrs == 0 && res.DistErrs == 0
			res.Detail = fmt.Sprintf("%d size errors, %d distance errors out of %d QueryZ calls", res.SizeErrs, res.DistErrs, count)
			return res, nil
		},
	}
}

// TriadicBulkXY uses the same setup as TriadicBulkZ, but checks
// QueryX and QueryY against the same stored triples.
func TriadicBulkXY() Scenario {
	const n, p, count = 1000, 10, 100000
	return Scenario{
		Name: "triadic-bulk-xy",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			series := sdr.RandomSeries(rand.New(rand.NewSource(cfg.Seed)), count+2, n, p)
			mem := memory.NewDenseTriadic(n, p)
			for k := 0; k < count; k++ {
				mem.Store(series[k], series[k+1], series[k+2])
			}

			res := Result{N: n, P: p, Count: count * 2}
			errs, groupErr := verifyParallel(ctx, cfg.Workers, count, func(k int) (sizeErr, distErr bool) {
				gotX := mem.QueryX(series[k+1], series[k+2])
				gotY := mem.QueryY(series[k], series[k+2])
				sizeErr = len(gotX) != p || len(gotY) != p
				distErr = sdr.Distance(gotX, series[k]) != 0 || sdr.Distance(gotY, series[k+1]) != 0
				return sizeErr, distErr
			})
			if groupErr != nil {
				return res, groupErr
			}
			res.SizeErrs, res.DistErrs = errs[0], errs[1]
			res.Pass = res.SizeErrs == 0 && res.DistErrs == 0
			res.Detail = fmt.Sprintf("%d size errors, %d distance errors out of %d QueryX/QueryY pairs", res.SizeErrs, res.DistErrs, count)
			return res, nil
		},
	}
}

// BackendEquivalence stores the same sequence into both a dense and a
// sparse TriadicMemory and checks every query returns bit-for-bit
// identical SDRs.
func BackendEquivalence() Scenario {
	const n, p, count = 400, 10, 2000
	return Scenario{
		Name: "backend-equivalence",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			series := sdr.RandomSeries(rand.New(rand.NewSource(cfg.Seed)), count+2, n, p)
			dense := memory.NewDenseTriadic(n, p)
			sparse := memory.NewSparseTriadic(n, p)
			for k := 0; k < count; k++ {
				dense.Store(series[k], series[k+1], series[k+2])
				sparse.Store(series[k], series[k+1], series[k+2])
			}

			res := Result{N: n, P: p, Count: count}
			mismatches := 0
			for k := 0; k < count; k++ {
				dz := dense.QueryZ(series[k], series[k+1])
				sz := sparse.QueryZ(series[k], series[k+1])
				if sdr.Distance(dz, sz) != 0 || len(dz) != len(sz) {
					mismatches++
				}
			}
			res.DistErrs = mismatches
			res.Pass = mismatches == 0
			res.Detail = fmt.Sprintf("%d dense/sparse mismatches out of %d queries", mismatches, count)
			return res, nil
		},
	}
}

// SequencePredict teaches a SequencePredictor (N=1000, P=20) the 8
// tokens of "the brown fox jumped over the lazy dog" (7 distinct words,
// one random SDR per word, so both occurrences of "the" share a label) and
// checks the second pass predicts the next token for every step but
// the last.
func SequencePredict() Scenario {
	const n, p = 1000, 20
	return Scenario{
		Name: "sequence-predict",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			words := strings.Fields("the brown fox jumped over the lazy dog")
			rng := rand.New(rand.NewSource(cfg.Seed))
			labels := map[string][]uint32{}
			for _, w := range words {
				if _, ok := labels[w]; !ok {
					labels[w] = sdr.Random(rng, n, p)
				}
			}

			sp := predictor.New(predictor.Config{N: n, P: p, Seed: cfg.Seed})
			for _, w := range words {
				sp.Predict(labels[w])
			}

			res := Result{N: n, P: p, Count: len(words) - 1}
			mispredicted := 0
			for i, w := range words {
				got := sp.Predict(labels[w])
				if i == len(words)-1 {
					continue
				}
				if sdr.Distance(got, labels[words[i+1]]) != 0 {
					mispredicted++
				}
			}
			res.DistErrs = mispredicted
			res.Pass = mispredicted == 0
			res.Detail = fmt.Sprintf("%d of %d steps mispredicted", mispredicted, res.Count)
			return res, nil
		},
	}
}

// BinarizeTies confirms that a four-way tie for the P-th largest sum
// widens the result to include every tied index, rather than picking
// an arbitrary P of them.
func BinarizeTies() Scenario {
	return Scenario{
		Name: "binarize-ties",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			sums := make([]uint32, 1000)
			sums[0], sums[1], sums[2], sums[3] = 3, 3, 3, 3
			got := memory.Binarize(sums, 2)
			want := []uint32{0, 1, 2, 3}

			res := Result{N: 1000, P: 2, Count: 1}
			if sdr.Distance(got, want) != 0 || len(got) != len(want) {
				res.DistErrs = 1
				res.Detail = fmt.Sprintf("got %v, want %v", got, want)
				return res, nil
			}
			res.Pass = true
			res.Detail = "tie correctly widened to 4 bits"
			return res, nil
		},
	}
}

// CheckedBoundary exercises memory.Checked and memory.CheckedT against
// a mix of well-formed and malformed SDRs, confirming that the
// boundary wrapper passes valid calls through and rejects every
// malformed one with the expected sentinel error.
func CheckedBoundary() Scenario {
	const n, p, count = 200, 10, 500
	return Scenario{
		Name: "checked-boundary",
		Run: func(ctx context.Context, cfg Config) (Result, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			dyadic := memory.Checked(memory.NewDenseDyadic(n, p), n)
			triadic := memory.CheckedT(memory.NewDenseTriadic(n, p), n)

			res := Result{N: n, P: p, Count: count}
			violations := 0
			for i := 0; i < count; i++ {
				x := sdr.Random(rng, n, p)
				y := sdr.Random(rng, n, p)
				z := sdr.Random(rng, n, p)

				if err := dyadic.Store(x, y); err != nil {
					violations++
					continue
				}
				if _, err := dyadic.Recall(x); err != nil {
					violations++
				}
				if err := triadic.Store(x, y, z); err != nil {
					violations++
					continue
				}
				if _, err := triadic.Query(x, y, nil); err != nil {
					violations++
				}

				malformed := []uint32{5, 3, 1}
				if err := dyadic.Store(malformed, y); !errors.Is(err, sdr.ErrNotSorted) {
					violations++
				}
				if _, err := triadic.Query(x, y, z); !errors.Is(err, memory.ErrAxisCount) {
					violations++
				}
			}

			res.SizeErrs = violations
			res.Pass = violations == 0
			res.Detail = fmt.Sprintf("%d unexpected validation outcomes out of %d rounds", violations, count)
			return res, nil
		},
	}
}

// AllScenarios returns every literal-scale scenario in a fixed order.
func AllScenarios() []Scenario {
	return []Scenario{
		DyadicBulk(),
		TriadicBulkZ(),
		TriadicBulkXY(),
		BackendEquivalence(),
		SequencePredict(),
		BinarizeTies(),
		CheckedBoundary(),
	}
}

// verifyParallel runs check(i) for i in [0, count) across workers
// goroutines via errgroup, and tallies (sizeErrs, distErrs) without a
// shared mutex by giving each worker its own local counters and
// summing them on join.
func verifyParallel(ctx context.Context, workers, count int, check func(i int) (sizeErr, distErr bool)) ([2]int, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > count && count > 0 {
		workers = count
	}

	g, ctx := errgroup.WithContext(ctx)
	totals := make([][2]int, workers)
	chunk := (count + workers - 1) / workers

	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if end > count {
			end = count
		}
		g.Go(func() error {
			if start >= end {
				return nil
			}
			var sizeErrs, distErrs int
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				sErr, dErr := check(i)
				if sErr {
					sizeErrs++
				}
				if dErr {
					distErrs++
				}
			}
			totals[w] = [2]int{sizeErrs, distErrs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return [2]int{}, err
	}

	var out [2]int
	for _, t := range totals {
		out[0] += t[0]
		out[1] += t[1]
	}
	return out, nil
}
