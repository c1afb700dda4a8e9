// Package model: numeric helpers shared by the four variants — link
// functions, the tangent-space → hyperboloid projection, Gaussian prior
// terms, and proposal perturbation.
package model

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/latspace/latspace/bookstein"
	"github.com/latspace/latspace/geom"
)

// Logit maps p ∈ (0,1) to the real line.
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// Invlogit is the logistic function, inverse of Logit.
func Invlogit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// linkExpQuad is the hyperbolic link p = exp(−d²), clamped into (eps, 1−eps).
func linkExpQuad(d []float64, eps float64) []float64 {
	p := make([]float64, len(d))
	var i int
	for i = range d {
		p[i] = clamp(math.Exp(-d[i]*d[i]), eps, 1-eps)
	}

	return p
}

// linkMaxNorm is the Euclidean link p = 1 − d/(max(d)+eps), clamped into
// (eps, 1−eps). The max-normalization makes the link scale-free: only the
// relative geometry of the configuration matters.
func linkMaxNorm(d []float64, eps float64) []float64 {
	var dmax float64
	var i int
	for i = range d {
		if d[i] > dmax {
			dmax = d[i]
		}
	}

	p := make([]float64, len(d))
	for i = range d {
		p[i] = clamp(1-d[i]/(dmax+eps), eps, 1-eps)
	}

	return p
}

// hypProject moves tangent-space coordinates pre (N,D) onto the hyperboloid:
// pad a zero time coordinate, parallel-transport from the origin's tangent
// space to that of the lifted mean, then apply the exponential map.
func hypProject(pre *mat.Dense, mu []float64) *mat.Dense {
	n, d := pre.Dims()

	muTilde := mat.NewDense(n, d, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			muTilde.Set(i, j, mu[j])
		}
	}
	muHyp := geom.HypPoint(muTilde)

	v := mat.NewDense(n, d+1, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v.Set(i, j+1, pre.At(i, j))
		}
	}

	u := geom.ParallelTransport(v, geom.Origin(n, d), muHyp)

	return geom.ExponentialMap(muHyp, u, geom.DefaultExpEps)
}

// normLogPDF is the log-density of N(mu, sigma) at x.
func normLogPDF(x, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.LogProb(x)
}

// freeLogPrior sums independent Normal log-densities over the free rows,
// replacing the first (pivot) row's ordinary term with a reflected
// half-normal: density doubled, −∞ whenever the pivot's second coordinate is
// negative. This is the hard orientation constraint that fixes the residual
// reflection left by the anchors.
func freeLogPrior(free *mat.Dense, mu []float64, sigma float64) float64 {
	if free.At(0, 1) < 0 {
		return math.Inf(-1)
	}

	rows, cols := free.Dims()
	lp := math.Ln2
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			lp += normLogPDF(free.At(i, j), mu[j], sigma)
		}
	}

	return lp
}

// anchorXLogPrior is the truncated-normal log-density of the hyperbolic
// second anchor's coordinate: centered at −dist with scale sigma, support
// restricted to x ≥ −dist (half of the mass, hence the doubling).
func anchorXLogPrior(x, dist, sigma float64) float64 {
	if x < -dist {
		return math.Inf(-1)
	}

	return math.Ln2 + normLogPDF(x, -dist, sigma)
}

// sampleFree draws the (rows, cols) free-coordinate matrix from N(mu, sigma)
// entry-wise, redrawing the pivot's second coordinate until it satisfies the
// orientation constraint (exact rejection sampling of the half-normal).
func sampleFree(r *rand.Rand, rows, cols int, mu []float64, sigma float64) *mat.Dense {
	free := mat.NewDense(rows, cols, nil)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			free.Set(i, j, mu[j]+sigma*r.NormFloat64())
		}
	}

	for free.At(0, 1) < 0 {
		free.Set(0, 1, mu[1]+sigma*r.NormFloat64())
	}

	return free
}

// sampleAnchorX draws the hyperbolic second-anchor coordinate from the
// truncated normal on [−dist, ∞) by folding a centered normal, which is
// exact for this loc=−dist truncation.
func sampleAnchorX(r *rand.Rand, dist, sigma float64) float64 {
	return -dist + math.Abs(sigma*r.NormFloat64())
}

// perturbFree adds isotropic Gaussian noise of the given scale to every free
// coordinate of the clone dst. Shared by all Perturb implementations.
func perturbFree(dst *mat.Dense, r *rand.Rand, scale float64) {
	rows, cols := dst.Dims()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dst.Set(i, j, dst.At(i, j)+scale*r.NormFloat64())
		}
	}
}

// bernoulliLogLik sums the Bernoulli log-mass of every observation row over
// the per-edge probabilities p.
func bernoulliLogLik(obs *mat.Dense, p []float64) float64 {
	rows, _ := obs.Dims()

	var (
		ll   float64
		s, m int
	)
	for s = 0; s < rows; s++ {
		row := obs.RawRowView(s)
		for m = range p {
			if row[m] != 0 {
				ll += math.Log(p[m])
			} else {
				ll += math.Log1p(-p[m])
			}
		}
	}

	return ll
}

// betaLogLik sums the Beta log-density of every observation row, with
// per-edge mean p and shared noise ratio invlogit(noiseT): the edge noise
// scale is σ_m = ratio·√(p_m(1−p_m)), so the concentration
// kappa = p(1−p)/σ² − 1 = 1/ratio² − 1 is common to all edges and both Beta
// shape parameters stay positive. Observations are clamped into
// (obsEps, 1−obsEps) first — the Beta density is unbounded at exactly 0 and 1.
func betaLogLik(obs *mat.Dense, p []float64, noiseT, obsEps float64) float64 {
	rows, _ := obs.Dims()
	ratio := clamp(Invlogit(noiseT), obsEps, 1-obsEps)
	kappa := 1/(ratio*ratio) - 1

	var (
		ll   float64
		s, m int
		x    float64
	)
	for s = 0; s < rows; s++ {
		row := obs.RawRowView(s)
		for m = range p {
			x = clamp(row[m], obsEps, 1-obsEps)
			ll += distuv.Beta{Alpha: p[m] * kappa, Beta: (1 - p[m]) * kappa}.LogProb(x)
		}
	}

	return ll
}

// attachEuclidean rebuilds the full (N,D) Euclidean configuration.
func attachEuclidean(cfg Config, s State) *mat.Dense {
	anchors, err := bookstein.Anchors(cfg.D, cfg.AnchorDist)
	if err != nil {
		// Config was validated by New; reaching this is a programmer error.
		panic(err)
	}

	return bookstein.Attach(anchors, s.Free)
}

// attachTangent rebuilds the full (N,D) tangent configuration of a
// hyperbolic state, including the inferred second-anchor coordinate.
func attachTangent(cfg Config, s State) *mat.Dense {
	anchors, err := bookstein.AnchorsWithX(s.AnchorX, cfg.D, cfg.AnchorDist)
	if err != nil {
		panic(err)
	}

	return bookstein.Attach(anchors, s.Free)
}
