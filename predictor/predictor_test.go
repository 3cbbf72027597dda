package predictor_test

import (
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdrmem/predictor"
	"github.com/sarchlab/sdrmem/sdr"
)

var _ = Describe("SequencePredictor", func() {
	It("does not panic on the first Predict before anything is learned", func() {
		sp := predictor.New(predictor.Config{N: 300, P: 12, Seed: 1})
		input := sdr.Random(rand.New(rand.NewSource(2)), 300, 12)
		// A first Predict call must not panic even though nothing has
		// been learned yet; the predicted SDR is meaningless noise
		// until something is taught.
		Expect(func() { sp.Predict(input) }).NotTo(Panic())
	})

	Describe("learning a short sentence, scaled down", func() {
		const n, p = 300, 12

		It("predicts the next token on a second pass for the middle of the sentence", func() {
			words := strings.Fields("the brown fox jumped over the lazy dog")

			rng := rand.New(rand.NewSource(5))
			labels := map[string][]uint32{}
			var distinct []string
			for _, w := range words {
				if _, ok := labels[w]; !ok {
					labels[w] = sdr.Random(rng, n, p)
					distinct = append(distinct, w)
				}
			}

			sp := predictor.New(predictor.Config{N: n, P: p, Seed: 9})

			// First pass: teach the transitions.
			for _, w := range words {
				sp.Predict(labels[w])
			}

			// Second pass: the prediction returned after feeding
			// words[i] should match words[i+1]'s label for every
			// step but the last, since the predictor wraps to the
			// first element after the final one in a learned
			// sequence.
			for i, w := range words {
				got := sp.Predict(labels[w])
				if i == len(words)-1 {
					continue
				}
				want := labels[words[i+1]]
				Expect(sdr.Distance(got, want)).To(Equal(0.0),
					"step %d (%q -> %q) mispredicted", i, w, words[i+1])
			}
		})
	})

	Describe("construction", func() {
		It("is reproducible from the same seed", func() {
			rng := rand.New(rand.NewSource(4))
			inputs := sdr.RandomSeries(rng, 6, 300, 12)

			spA := predictor.New(predictor.Config{N: 300, P: 12, Seed: 11})
			spB := predictor.New(predictor.Config{N: 300, P: 12, Seed: 11})

			for _, in := range inputs {
				Expect(spA.Predict(in)).To(Equal(spB.Predict(in)))
			}
		})
	})
})
