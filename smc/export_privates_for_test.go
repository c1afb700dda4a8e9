package smc

// Bridges for white-box tests of the adaptation and resampling internals.

// EssFrac exposes essFrac.
func EssFrac(loglik []float64, delta float64) float64 { return essFrac(loglik, delta) }

// SolveDelta exposes solveDelta.
func SolveDelta(loglik []float64, maxDelta, target float64) float64 {
	return solveDelta(loglik, maxDelta, target)
}

// Systematic exposes systematic.
func Systematic(w []float64, u float64) []int { return systematic(w, u) }
