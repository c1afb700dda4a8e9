package smc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// essFrac returns the normalized effective sample size fraction
// ESS/P = exp(2·LSE(w) − LSE(2w)) / P of the incremental log weights
// delta·loglik. Equals 1 at delta = 0 and decays as delta grows.
func essFrac(loglik []float64, delta float64) float64 {
	var (
		p    = len(loglik)
		logw = make([]float64, p)
	)
	for i, ll := range loglik {
		logw[i] = delta * ll
	}
	lse := floats.LogSumExp(logw)
	for i := range logw {
		logw[i] *= 2
	}
	lse2 := floats.LogSumExp(logw)
	return math.Exp(2*lse-lse2) / float64(p)
}

const bisectIters = 64

// solveDelta finds the largest temperature increment delta in (0, maxDelta]
// whose incremental weights keep essFrac at or above target. Returns
// maxDelta when even the full remaining increment satisfies the target
// (the final step, capping λ at 1).
func solveDelta(loglik []float64, maxDelta, target float64) float64 {
	if essFrac(loglik, maxDelta) >= target {
		return maxDelta
	}
	var lo, hi = 0.0, maxDelta
	for i := 0; i < bisectIters; i++ {
		mid := 0.5 * (lo + hi)
		if essFrac(loglik, mid) < target {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// systematic performs systematic resampling: P evenly spaced pointers
// offset by the single uniform draw u in [0,1), swept through the
// cumulative normalized weights. Returns P ancestor indices.
func systematic(w []float64, u float64) []int {
	var (
		p   = len(w)
		idx = make([]int, p)
		cum float64
		j   int
	)
	cum = w[0]
	for i := 0; i < p; i++ {
		pointer := (u + float64(i)) / float64(p)
		for pointer > cum && j < p-1 {
			j++
			cum += w[j]
		}
		idx[i] = j
	}
	return idx
}
