package embed

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// TraceCorrelation computes the Pearson correlation of every sampled
// trace against a common reference, e.g. per-particle latent distances
// against the ground-truth distances of a simulation. Every trace must
// match the reference length.
func TraceCorrelation(sampled [][]float64, truth []float64) ([]float64, error) {
	out := make([]float64, len(sampled))
	for i, s := range sampled {
		if len(s) != len(truth) {
			return nil, fmt.Errorf("%w: trace %d has %d values, want %d",
				ErrTraceLength, i, len(s), len(truth))
		}
		out[i] = stat.Correlation(s, truth, nil)
	}
	return out, nil
}
