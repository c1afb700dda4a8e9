package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/rng"
)

// Model is the contract shared by the four variants. Implementations are
// immutable after New and safe for concurrent use; the caller owns the
// randomness (keys and generators are passed in, never stored).
//
// Observation matrices are (samples, M) with M = N(N−1)/2 upper-triangle
// edges. Passing an observation matrix whose column count differs from M is
// a programmer error and panics; validate at the boundary.
type Model interface {
	// Kind returns the variant identity.
	Kind() Kind

	// Config returns the validated hyperparameters.
	Config() Config

	// Dim returns the number of free scalar parameters per particle — the
	// dimension of the space the MCMC mutation kernel random-walks in.
	Dim() int

	// SamplePrior draws one anchored state from the prior. The key must not
	// be reused for any other draw.
	SamplePrior(key rng.Key) State

	// SampleObservation generates n synthetic observation rows from the
	// state's edge distribution. Used for simulation studies and recovery
	// tests.
	SampleObservation(key rng.Key, s State, n int) *mat.Dense

	// LogPrior evaluates the anchored prior log-density, −∞ on hard
	// constraint violations.
	LogPrior(s State) float64

	// LogLikelihood evaluates the observation log-density given the state,
	// re-attaching the implicit anchors internally.
	LogLikelihood(s State, obs *mat.Dense) float64

	// Positions reconstructs the full latent configuration:
	// (N,D) for Euclidean kinds, (N,D+1) Lorentz coordinates for
	// hyperbolic kinds.
	Positions(s State) *mat.Dense

	// DetParams computes the deterministic quantities (positions,
	// distances, edge probabilities, noise bound) for diagnostics.
	DetParams(s State) Params

	// Perturb returns a copy of s with isotropic Gaussian noise of the
	// given scale added to every free parameter — the random-walk proposal.
	Perturb(s State, r *rand.Rand, scale float64) State
}

// New constructs the model selected by kind, failing fast on configuration
// errors. Config and programmer errors surface at setup time, never as
// runtime sampling events.
func New(kind Kind, cfg Config) (Model, error) {
	if err := cfg.validate(kind); err != nil {
		return nil, err
	}

	switch kind {
	case BinaryEuclidean:
		return &binaryEuclidean{cfg: cfg, mu: cfg.muVec()}, nil
	case BinaryHyperbolic:
		return &binaryHyperbolic{cfg: cfg, mu: cfg.muVec()}, nil
	case ContinuousEuclidean:
		return &continuousEuclidean{cfg: cfg, mu: cfg.muVec()}, nil
	case ContinuousHyperbolic:
		return &continuousHyperbolic{cfg: cfg, mu: cfg.muVec()}, nil
	default:
		return nil, ErrUnknownKind
	}
}
