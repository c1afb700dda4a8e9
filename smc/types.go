package smc

import (
	"errors"

	"github.com/latspace/latspace/model"
)

// Defaults reproduce the sampler settings used for the reference embeddings.
const (
	// DefaultParticles is the default particle count P.
	DefaultParticles = 2000
	// DefaultMCMCSteps is the default number of RMH sweeps per mutation phase.
	DefaultMCMCSteps = 500
	// DefaultMaxIterations bounds the number of tempering steps in Run.
	DefaultMaxIterations = 1000
	// DefaultStepScale is the standard deviation of the RMH proposal.
	DefaultStepScale = 1e-2
	// DefaultTargetESS is the normalized ESS fraction the λ-adaptation targets.
	DefaultTargetESS = 0.5
)

// Sentinel errors returned by New, Step and Run. Always compare with
// errors.Is.
var (
	// ErrNilModel - New received a nil model.
	ErrNilModel = errors.New("smc: model must not be nil")
	// ErrNilObservations - New received a nil observation matrix.
	ErrNilObservations = errors.New("smc: observations must not be nil")
	// ErrObsShape - observation columns do not match the model's edge count,
	// or there are no observation rows.
	ErrObsShape = errors.New("smc: observation matrix shape does not match model")
	// ErrBadParticles - Options.NParticles < 1.
	ErrBadParticles = errors.New("smc: NParticles must be >= 1")
	// ErrBadMCMCSteps - Options.MCMCSteps < 1.
	ErrBadMCMCSteps = errors.New("smc: MCMCSteps must be >= 1")
	// ErrBadMaxIterations - Options.MaxIterations < 1.
	ErrBadMaxIterations = errors.New("smc: MaxIterations must be >= 1")
	// ErrBadStepScale - Options.StepScale <= 0.
	ErrBadStepScale = errors.New("smc: StepScale must be > 0")
	// ErrBadTargetESS - Options.TargetESS outside (0, 1).
	ErrBadTargetESS = errors.New("smc: TargetESS must lie in (0, 1)")
	// ErrBadWorkers - Options.Workers < 1.
	ErrBadWorkers = errors.New("smc: Workers must be >= 1")
	// ErrNilState - Step or Run received a nil state.
	ErrNilState = errors.New("smc: state must not be nil")
	// ErrTerminal - Step called on a state that already reached λ = 1.
	ErrTerminal = errors.New("smc: state is terminal (lambda = 1)")
	// ErrNotConverged - Run exhausted MaxIterations before λ reached 1.
	// The partial state remains valid for inspection.
	ErrNotConverged = errors.New("smc: tempering did not reach lambda = 1 within MaxIterations")
)

// Options collects the tunable knobs of the sampler.
// Zero value is invalid; start from DefaultOptions and override.
type Options struct {
	// NParticles is the particle count P.
	NParticles int
	// MCMCSteps is the number of RMH sweeps applied to every particle
	// after each resampling.
	MCMCSteps int
	// MaxIterations bounds the number of tempering steps Run performs.
	MaxIterations int
	// StepScale is the standard deviation of the isotropic Gaussian
	// RMH proposal in unconstrained parameter space.
	StepScale float64
	// TargetESS is the normalized effective-sample-size fraction the
	// λ-adaptation bisects for, in (0, 1).
	TargetESS float64
	// Workers is the number of goroutines mutating particles in parallel.
	// Results are identical for any value >= 1.
	Workers int
}

// DefaultOptions returns the reference sampler settings with a single worker.
func DefaultOptions() Options {
	return Options{
		NParticles:    DefaultParticles,
		MCMCSteps:     DefaultMCMCSteps,
		MaxIterations: DefaultMaxIterations,
		StepScale:     DefaultStepScale,
		TargetESS:     DefaultTargetESS,
		Workers:       1,
	}
}

// Validate fails fast with the first violated sentinel.
func (o Options) Validate() error {
	switch {
	case o.NParticles < 1:
		return ErrBadParticles
	case o.MCMCSteps < 1:
		return ErrBadMCMCSteps
	case o.MaxIterations < 1:
		return ErrBadMaxIterations
	case o.StepScale <= 0:
		return ErrBadStepScale
	case o.TargetESS <= 0 || o.TargetESS >= 1:
		return ErrBadTargetESS
	case o.Workers < 1:
		return ErrBadWorkers
	}
	return nil
}

// State is the evolving particle population of one sampling run.
// Weights are implicit: the population is equally weighted after every
// Step because resampling happens unconditionally.
type State struct {
	// Particles holds the P current particle states.
	Particles []model.State
	// LogLik caches the full-data log likelihood of each particle.
	LogLik []float64
	// Lambda is the current inverse temperature in [0, 1].
	Lambda float64
	// LogMarginal is the running log marginal likelihood estimate.
	LogMarginal float64
	// Iterations counts completed tempering steps.
	Iterations int
	// AdaptedESS is the normalized ESS fraction of the incremental
	// weights at the λ accepted by the last Step, 0 before any step.
	AdaptedESS float64
}

// Terminal reports whether tempering has reached the posterior (λ = 1).
func (st *State) Terminal() bool { return st != nil && st.Lambda >= 1 }
