// Package model: the two Bernoulli-edge variants.
package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/geom"
	"github.com/latspace/latspace/rng"
)

// binaryEuclidean models binary edges through Euclidean latent distances and
// the max-normalized link p = 1 − d/(max d + ε).
type binaryEuclidean struct {
	cfg Config
	mu  []float64
}

func (m *binaryEuclidean) Kind() Kind     { return BinaryEuclidean }
func (m *binaryEuclidean) Config() Config { return m.cfg }

func (m *binaryEuclidean) Dim() int {
	return m.cfg.FreeNodes() * m.cfg.D
}

func (m *binaryEuclidean) SamplePrior(key rng.Key) State {
	r := key.Rand()

	return State{Free: sampleFree(r, m.cfg.FreeNodes(), m.cfg.D, m.mu, m.cfg.Sigma)}
}

func (m *binaryEuclidean) LogPrior(s State) float64 {
	return freeLogPrior(s.Free, m.mu, m.cfg.Sigma)
}

func (m *binaryEuclidean) LogLikelihood(s State, obs *mat.Dense) float64 {
	d := geom.UpperTriangle(geom.PairwiseEuclidean(attachEuclidean(m.cfg, s)))

	return bernoulliLogLik(obs, linkMaxNorm(d, m.cfg.Eps))
}

func (m *binaryEuclidean) Positions(s State) *mat.Dense {
	return attachEuclidean(m.cfg, s)
}

func (m *binaryEuclidean) DetParams(s State) Params {
	z := attachEuclidean(m.cfg, s)
	d := geom.UpperTriangle(geom.PairwiseEuclidean(z))

	return Params{Z: z, Dist: d, P: linkMaxNorm(d, m.cfg.Eps)}
}

func (m *binaryEuclidean) SampleObservation(key rng.Key, s State, n int) *mat.Dense {
	return sampleBernoulli(key, m.DetParams(s).P, n)
}

func (m *binaryEuclidean) Perturb(s State, r *rand.Rand, scale float64) State {
	next := s.Clone()
	perturbFree(next.Free, r, scale)

	return next
}

// binaryHyperbolic models binary edges through Lorentz-model distances and
// the link p = exp(−d²). States hold tangent-space coordinates; the second
// Bookstein anchor's radial coordinate is itself inferred.
type binaryHyperbolic struct {
	cfg Config
	mu  []float64
}

func (m *binaryHyperbolic) Kind() Kind     { return BinaryHyperbolic }
func (m *binaryHyperbolic) Config() Config { return m.cfg }

func (m *binaryHyperbolic) Dim() int {
	return m.cfg.FreeNodes()*m.cfg.D + 1
}

func (m *binaryHyperbolic) SamplePrior(key rng.Key) State {
	r := key.Rand()

	// Tangent draws are centered at the origin; Mu enters through the
	// projection, not the Gaussian location.
	return State{
		Free:    sampleFree(r, m.cfg.FreeNodes(), m.cfg.D, make([]float64, m.cfg.D), m.cfg.Sigma),
		AnchorX: sampleAnchorX(r, m.cfg.AnchorDist, m.cfg.Sigma),
	}
}

func (m *binaryHyperbolic) LogPrior(s State) float64 {
	zero := make([]float64, m.cfg.D)

	return freeLogPrior(s.Free, zero, m.cfg.Sigma) +
		anchorXLogPrior(s.AnchorX, m.cfg.AnchorDist, m.cfg.Sigma)
}

func (m *binaryHyperbolic) LogLikelihood(s State, obs *mat.Dense) float64 {
	z := hypProject(attachTangent(m.cfg, s), m.mu)
	d := geom.UpperTriangle(geom.PairwiseLorentz(z))

	return bernoulliLogLik(obs, linkExpQuad(d, m.cfg.Eps))
}

func (m *binaryHyperbolic) Positions(s State) *mat.Dense {
	return hypProject(attachTangent(m.cfg, s), m.mu)
}

func (m *binaryHyperbolic) DetParams(s State) Params {
	pre := attachTangent(m.cfg, s)
	z := hypProject(pre, m.mu)
	d := geom.UpperTriangle(geom.PairwiseLorentz(z))

	return Params{PreZ: pre, Z: z, Dist: d, P: linkExpQuad(d, m.cfg.Eps)}
}

func (m *binaryHyperbolic) SampleObservation(key rng.Key, s State, n int) *mat.Dense {
	return sampleBernoulli(key, m.DetParams(s).P, n)
}

func (m *binaryHyperbolic) Perturb(s State, r *rand.Rand, scale float64) State {
	next := s.Clone()
	perturbFree(next.Free, r, scale)
	next.AnchorX += scale * r.NormFloat64()

	return next
}

// sampleBernoulli draws n observation rows of independent Bernoulli(p_m)
// edges, encoded as 0/1 floats.
func sampleBernoulli(key rng.Key, p []float64, n int) *mat.Dense {
	r := key.Rand()
	obs := mat.NewDense(n, len(p), nil)

	var s, m int
	for s = 0; s < n; s++ {
		for m = range p {
			if r.Float64() < p[m] {
				obs.Set(s, m, 1)
			}
		}
	}

	return obs
}
