package predictor

// Config holds the construction parameters for a SequencePredictor:
// the shared (N, P) of its two triadic memories, the minimum distance
// a freshly observed input must be from the current prediction before
// it is taught, and the seed for the predictor's own random source.
// All of it is exposed explicitly rather than read from a global
// source so tests get deterministic construction.
type Config struct {
	N           int
	P           int
	MinDistance float64
	Seed        int64
}

// DefaultMinDistance is the minimum distance applied when Config
// leaves MinDistance unset: a predictor teaches Mpred on every step
// where the observed input isn't already the exact prediction.
const DefaultMinDistance = 0.0
