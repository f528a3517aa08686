// internal/matching/weights.go
package matching

// Weights are the per-check score contributions. Most satisfied checks award
// Standard; the partial-confidence ones (industry not restricted, CCJs within
// limit, existing-lender count within cap) award Reduced. Configurable so the
// panel team can retune ranking without a redeploy, but the relative ordering
// of checks is fixed in the evaluator.
type Weights struct {
	Standard int
	Reduced  int
}

// DefaultWeights mirrors the weighting the panel has always ranked with.
func DefaultWeights() Weights {
	return Weights{Standard: 10, Reduced: 5}
}
