// Package model: the two Beta-edge (continuous weight) variants.
//
// Continuous models reuse their binary counterpart's geometry and link; the
// link output becomes the Beta mean instead of a Bernoulli probability, and
// the particle carries one extra scalar NoiseT. The edge noise scale is
// σ_m = invlogit(NoiseT)·bound_m with bound_m = √(p_m(1−p_m)) — the largest
// standard deviation any Beta with mean p_m admits — so every NoiseT value
// maps to a valid Beta, and NoiseT itself stays unconstrained with a
// standard normal prior.
package model

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/latspace/latspace/geom"
	"github.com/latspace/latspace/rng"
)

// continuousEuclidean models edge weights in (0,1) through Euclidean latent
// distances and the max-normalized link.
type continuousEuclidean struct {
	cfg Config
	mu  []float64
}

func (m *continuousEuclidean) Kind() Kind     { return ContinuousEuclidean }
func (m *continuousEuclidean) Config() Config { return m.cfg }

func (m *continuousEuclidean) Dim() int {
	return m.cfg.FreeNodes()*m.cfg.D + 1
}

func (m *continuousEuclidean) SamplePrior(key rng.Key) State {
	r := key.Rand()

	return State{
		Free:   sampleFree(r, m.cfg.FreeNodes(), m.cfg.D, m.mu, m.cfg.Sigma),
		NoiseT: r.NormFloat64(),
	}
}

func (m *continuousEuclidean) LogPrior(s State) float64 {
	return freeLogPrior(s.Free, m.mu, m.cfg.Sigma) + normLogPDF(s.NoiseT, 0, 1)
}

func (m *continuousEuclidean) LogLikelihood(s State, obs *mat.Dense) float64 {
	d := geom.UpperTriangle(geom.PairwiseEuclidean(attachEuclidean(m.cfg, s)))

	return betaLogLik(obs, linkMaxNorm(d, m.cfg.Eps), s.NoiseT, m.cfg.ObsEps)
}

func (m *continuousEuclidean) Positions(s State) *mat.Dense {
	return attachEuclidean(m.cfg, s)
}

func (m *continuousEuclidean) DetParams(s State) Params {
	z := attachEuclidean(m.cfg, s)
	d := geom.UpperTriangle(geom.PairwiseEuclidean(z))
	p := linkMaxNorm(d, m.cfg.Eps)

	return Params{Z: z, Dist: d, P: p, Bound: noiseBound(p)}
}

func (m *continuousEuclidean) SampleObservation(key rng.Key, s State, n int) *mat.Dense {
	return sampleBeta(key, m.DetParams(s).P, s.NoiseT, m.cfg.ObsEps, n)
}

func (m *continuousEuclidean) Perturb(s State, r *rand.Rand, scale float64) State {
	next := s.Clone()
	perturbFree(next.Free, r, scale)
	next.NoiseT += scale * r.NormFloat64()

	return next
}

// continuousHyperbolic models edge weights in (0,1) through Lorentz-model
// distances and the exp(−d²) link.
type continuousHyperbolic struct {
	cfg Config
	mu  []float64
}

func (m *continuousHyperbolic) Kind() Kind     { return ContinuousHyperbolic }
func (m *continuousHyperbolic) Config() Config { return m.cfg }

func (m *continuousHyperbolic) Dim() int {
	return m.cfg.FreeNodes()*m.cfg.D + 2
}

func (m *continuousHyperbolic) SamplePrior(key rng.Key) State {
	r := key.Rand()

	return State{
		Free:    sampleFree(r, m.cfg.FreeNodes(), m.cfg.D, make([]float64, m.cfg.D), m.cfg.Sigma),
		AnchorX: sampleAnchorX(r, m.cfg.AnchorDist, m.cfg.Sigma),
		NoiseT:  r.NormFloat64(),
	}
}

func (m *continuousHyperbolic) LogPrior(s State) float64 {
	zero := make([]float64, m.cfg.D)

	return freeLogPrior(s.Free, zero, m.cfg.Sigma) +
		anchorXLogPrior(s.AnchorX, m.cfg.AnchorDist, m.cfg.Sigma) +
		normLogPDF(s.NoiseT, 0, 1)
}

func (m *continuousHyperbolic) LogLikelihood(s State, obs *mat.Dense) float64 {
	z := hypProject(attachTangent(m.cfg, s), m.mu)
	d := geom.UpperTriangle(geom.PairwiseLorentz(z))

	return betaLogLik(obs, linkExpQuad(d, m.cfg.Eps), s.NoiseT, m.cfg.ObsEps)
}

func (m *continuousHyperbolic) Positions(s State) *mat.Dense {
	return hypProject(attachTangent(m.cfg, s), m.mu)
}

func (m *continuousHyperbolic) DetParams(s State) Params {
	pre := attachTangent(m.cfg, s)
	z := hypProject(pre, m.mu)
	d := geom.UpperTriangle(geom.PairwiseLorentz(z))
	p := linkExpQuad(d, m.cfg.Eps)

	return Params{PreZ: pre, Z: z, Dist: d, P: p, Bound: noiseBound(p)}
}

func (m *continuousHyperbolic) SampleObservation(key rng.Key, s State, n int) *mat.Dense {
	return sampleBeta(key, m.DetParams(s).P, s.NoiseT, m.cfg.ObsEps, n)
}

func (m *continuousHyperbolic) Perturb(s State, r *rand.Rand, scale float64) State {
	next := s.Clone()
	perturbFree(next.Free, r, scale)
	next.AnchorX += scale * r.NormFloat64()
	next.NoiseT += scale * r.NormFloat64()

	return next
}

// noiseBound returns the per-edge upper bound √(p(1−p)) on the Beta noise
// scale — the diagnostic counterpart of the σ/bound reparameterization.
func noiseBound(p []float64) []float64 {
	b := make([]float64, len(p))
	var i int
	for i = range p {
		b[i] = math.Sqrt(p[i] * (1 - p[i]))
	}

	return b
}

// sampleBeta draws n observation rows of independent Beta edges with mean
// p_m and the state's shared noise ratio.
func sampleBeta(key rng.Key, p []float64, noiseT, obsEps float64, n int) *mat.Dense {
	src := key.ExpSource()
	ratio := clamp(Invlogit(noiseT), obsEps, 1-obsEps)
	kappa := 1/(ratio*ratio) - 1

	obs := mat.NewDense(n, len(p), nil)
	var s, m int
	for s = 0; s < n; s++ {
		for m = range p {
			beta := distuv.Beta{Alpha: p[m] * kappa, Beta: (1 - p[m]) * kappa, Src: src}
			// Tiny shape parameters can underflow draws to exactly 0 or 1;
			// clamp into the open interval the likelihood works on.
			obs.Set(s, m, clamp(beta.Rand(), obsEps, 1-obsEps))
		}
	}

	return obs
}
