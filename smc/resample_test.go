package smc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latspace/latspace/smc"
)

// TestEssFrac_EqualWeights: identical log likelihoods keep every particle
// equally weighted for any increment, so the fraction stays at 1.
func TestEssFrac_EqualWeights(t *testing.T) {
	loglik := []float64{-3.5, -3.5, -3.5, -3.5}
	for _, delta := range []float64{0, 1e-3, 0.5, 1} {
		assert.InDelta(t, 1.0, smc.EssFrac(loglik, delta), 1e-12, "delta=%v", delta)
	}
}

// TestEssFrac_Degenerate: one particle dominating collapses the ESS to a
// single effective particle.
func TestEssFrac_Degenerate(t *testing.T) {
	loglik := []float64{0, -1000, -1000, -1000}
	assert.InDelta(t, 0.25, smc.EssFrac(loglik, 1), 1e-9)
}

// TestEssFrac_Monotone: the fraction decays as the increment grows.
func TestEssFrac_Monotone(t *testing.T) {
	loglik := []float64{-1, -2, -4, -8, -16}
	prev := smc.EssFrac(loglik, 0)
	assert.InDelta(t, 1.0, prev, 1e-12)
	for _, delta := range []float64{0.1, 0.25, 0.5, 1} {
		cur := smc.EssFrac(loglik, delta)
		assert.Less(t, cur, prev, "delta=%v", delta)
		prev = cur
	}
}

// TestSolveDelta_FullIncrement: homogeneous weights satisfy any target, so
// the solver jumps straight to the cap.
func TestSolveDelta_FullIncrement(t *testing.T) {
	loglik := []float64{-2, -2, -2}
	assert.Equal(t, 0.7, smc.SolveDelta(loglik, 0.7, 0.5))
}

// TestSolveDelta_HitsTarget: with disparate likelihoods the solver returns
// an interior increment whose ESS fraction sits at the target.
func TestSolveDelta_HitsTarget(t *testing.T) {
	loglik := []float64{0, -10, -25, -40, -90, -130}
	const target = 0.5
	delta := smc.SolveDelta(loglik, 1, target)
	require.Greater(t, delta, 0.0)
	require.Less(t, delta, 1.0)
	assert.InDelta(t, target, smc.EssFrac(loglik, delta), 1e-9)
}

// TestSystematic_UniformWeights: equal weights with evenly spaced pointers
// keep every ancestor exactly once.
func TestSystematic_UniformWeights(t *testing.T) {
	w := []float64{0.25, 0.25, 0.25, 0.25}
	assert.Equal(t, []int{0, 1, 2, 3}, smc.Systematic(w, 0.5))
}

// TestSystematic_Proportional: offspring counts follow the weights
// regardless of the uniform offset.
func TestSystematic_Proportional(t *testing.T) {
	w := []float64{0.5, 0.5, 0, 0}
	for _, u := range []float64{0, 0.1, 0.5, 0.999} {
		idx := smc.Systematic(w, u)
		counts := make(map[int]int)
		for _, a := range idx {
			counts[a]++
		}
		assert.Equal(t, 2, counts[0], "u=%v", u)
		assert.Equal(t, 2, counts[1], "u=%v", u)
	}
}

// TestSystematic_Degenerate: all mass on one ancestor copies it P times.
func TestSystematic_Degenerate(t *testing.T) {
	idx := smc.Systematic([]float64{0, 0, 1, 0}, 0.42)
	for _, a := range idx {
		assert.Equal(t, 2, a)
	}
}

// TestSystematic_SumPreserved: a weight vector that is normalized up to
// floating point noise still yields P valid indices.
func TestSystematic_SumPreserved(t *testing.T) {
	w := []float64{0.1, 0.2, 0.3, 0.4}
	idx := smc.Systematic(w, 0.77)
	require.Len(t, idx, 4)
	for _, a := range idx {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 4)
	}
	sorted := true
	for i := 1; i < len(idx); i++ {
		if idx[i] < idx[i-1] {
			sorted = false
		}
	}
	assert.True(t, sorted, "systematic ancestors are nondecreasing")
}
