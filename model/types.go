// Package model: kinds, anchored state, derived parameters, sentinel errors.
package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Kind selects one of the four model variants. The set is closed: switches
// over Kind in this package are exhaustive and New rejects anything else.
type Kind int

const (
	// BinaryEuclidean: Bernoulli edges, Euclidean latent geometry.
	BinaryEuclidean Kind = iota

	// BinaryHyperbolic: Bernoulli edges, Lorentz-model latent geometry.
	BinaryHyperbolic

	// ContinuousEuclidean: Beta-distributed edge weights, Euclidean geometry.
	ContinuousEuclidean

	// ContinuousHyperbolic: Beta-distributed edge weights, Lorentz geometry.
	ContinuousHyperbolic
)

var (
	// ErrUnknownKind is returned for a model key outside the closed set.
	ErrUnknownKind = errors.New("model: unknown model kind")

	// ErrBadNodeCount is returned when N leaves no free node (N ≤ D).
	ErrBadNodeCount = errors.New("model: node count must exceed latent dimension")

	// ErrBadDimension is returned for latent dimensions < 2 (the orientation
	// constraint needs a second coordinate).
	ErrBadDimension = errors.New("model: latent dimension must be >= 2")

	// ErrMuDimension is returned when len(Mu) matches neither 0 nor D.
	ErrMuDimension = errors.New("model: mu dimension does not match latent dimension")

	// ErrBadSigma is returned for non-positive prior standard deviations.
	ErrBadSigma = errors.New("model: sigma must be > 0")

	// ErrBadEps is returned when the link clamp lies outside (0, 0.5).
	ErrBadEps = errors.New("model: eps must lie in (0, 0.5)")

	// ErrEpsUnderflow is returned for hyperbolic kinds with Eps < 1e-5:
	// below that, exp(−d²) rounds to zero and the Bernoulli mass degenerates.
	ErrEpsUnderflow = errors.New("model: eps too small for hyperbolic link")

	// ErrBadObsEps is returned when the observation clamp lies outside (0, 0.5).
	ErrBadObsEps = errors.New("model: obs eps must lie in (0, 0.5)")

	// ErrBadAnchorDist is returned for non-positive anchor offsets.
	ErrBadAnchorDist = errors.New("model: anchor distance must be > 0")
)

// kindNames uses the original file-prefix vocabulary of the data pipeline.
var kindNames = map[Kind]string{
	BinaryEuclidean:      "bin_euc",
	BinaryHyperbolic:     "bin_hyp",
	ContinuousEuclidean:  "con_euc",
	ContinuousHyperbolic: "con_hyp",
}

// String returns the canonical short key, e.g. "bin_hyp".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Binary reports whether edges are Bernoulli (vs Beta-distributed weights).
func (k Kind) Binary() bool {
	return k == BinaryEuclidean || k == BinaryHyperbolic
}

// Hyperbolic reports whether the latent geometry is the Lorentz model.
func (k Kind) Hyperbolic() bool {
	return k == BinaryHyperbolic || k == ContinuousHyperbolic
}

// ParseKind maps a short key ("bin_euc", "bin_hyp", "con_euc", "con_hyp")
// back to its Kind. Returns ErrUnknownKind otherwise.
func ParseKind(s string) (Kind, error) {
	var k Kind
	var name string
	for k, name = range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, ErrUnknownKind
}

// State is one Bookstein-anchored particle: the free latent coordinates plus
// the variant-specific scalars. Fields not used by a model's kind are
// carried as zero and ignored by every computation of that model.
//
// Free holds the (N−D, D) coordinates of the non-anchor nodes — tangent-
// space coordinates for hyperbolic kinds, plain positions for Euclidean
// kinds. The D anchor rows are implicit and reconstructed by Positions.
type State struct {
	// Free are the sampled latent coordinates, one row per free node.
	Free *mat.Dense

	// AnchorX is the second anchor's inferred first coordinate.
	// Hyperbolic kinds only.
	AnchorX float64

	// NoiseT is the logit-transformed edge noise scale.
	// Continuous kinds only.
	NoiseT float64
}

// Clone returns a deep copy; mutating the copy never aliases the original.
func (s State) Clone() State {
	c := s
	if s.Free != nil {
		c.Free = mat.DenseCopyOf(s.Free)
	}

	return c
}

// Params bundles the deterministic quantities derived from one state, for
// reuse by diagnostics and observation sampling. Not part of the sampling
// hot path.
type Params struct {
	// PreZ are the pre-projection tangent coordinates (N,D).
	// Hyperbolic kinds only; nil otherwise.
	PreZ *mat.Dense

	// Z are the full anchored positions: (N,D) Euclidean, (N,D+1) Lorentz.
	Z *mat.Dense

	// Dist is the upper triangle of the pairwise distance matrix, length
	// N(N−1)/2.
	Dist []float64

	// P is the per-edge probability (binary) or Beta mean (continuous).
	P []float64

	// Bound is the per-edge upper bound √(p(1−p)) on the Beta noise scale.
	// Continuous kinds only; nil otherwise.
	Bound []float64
}
