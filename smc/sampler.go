package smc

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
)

// Sampler binds a model and its observation matrix to a set of Options.
// One Sampler serves any number of independent runs; it is safe for
// concurrent use because Init, Step and Run mutate only the State they
// are given.
type Sampler struct {
	m    model.Model
	obs  *mat.Dense
	opts Options
}

// New validates the model/observation pairing and the options.
// The observation matrix must have one row per observed network and one
// column per upper-triangle edge of the model's node set.
func New(m model.Model, obs *mat.Dense, opts Options) (*Sampler, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if obs == nil {
		return nil, ErrNilObservations
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rows, cols := obs.Dims()
	if rows < 1 || cols != m.Config().Edges() {
		return nil, ErrObsShape
	}
	return &Sampler{m: m, obs: obs, opts: opts}, nil
}

// Model returns the bound model.
func (s *Sampler) Model() model.Model { return s.m }

// Options returns the bound options.
func (s *Sampler) Options() Options { return s.opts }

// Init draws the initial population from the prior (λ = 0) and caches
// each particle's full-data log likelihood.
func (s *Sampler) Init(key rng.Key) *State {
	var (
		p    = s.opts.NParticles
		keys = key.SplitN(p)
		st   = &State{
			Particles: make([]model.State, p),
			LogLik:    make([]float64, p),
		}
	)
	for i := 0; i < p; i++ {
		st.Particles[i] = s.m.SamplePrior(keys[i])
		st.LogLik[i] = s.m.LogLikelihood(st.Particles[i], s.obs)
	}
	return st
}

// Step advances the state by one tempering iteration: adapt λ, reweight,
// resample, mutate. Returns ErrTerminal when λ already reached 1.
func (s *Sampler) Step(key rng.Key, st *State) error {
	if st == nil {
		return ErrNilState
	}
	if st.Terminal() {
		return ErrTerminal
	}
	var (
		p                   = s.opts.NParticles
		resampleKey, mutKey = key.Split()
	)

	// λ-adaptation: largest increment keeping ESS at the target fraction.
	delta := solveDelta(st.LogLik, 1-st.Lambda, s.opts.TargetESS)
	lambda := st.Lambda + delta
	if delta == 1-st.Lambda {
		lambda = 1 // exact, not accumulated
	}
	st.AdaptedESS = essFrac(st.LogLik, delta)

	// Reweight: fold the normalizing constant ratio into the evidence.
	var (
		logw = make([]float64, p)
		w    = make([]float64, p)
	)
	for i, ll := range st.LogLik {
		logw[i] = delta * ll
	}
	lse := floats.LogSumExp(logw)
	st.LogMarginal += lse - math.Log(float64(p))
	for i := range logw {
		w[i] = math.Exp(logw[i] - lse)
	}

	// Systematic resampling with a single uniform draw.
	var (
		idx       = systematic(w, resampleKey.Rand().Float64())
		particles = make([]model.State, p)
		loglik    = make([]float64, p)
	)
	for i, a := range idx {
		particles[i] = st.Particles[a].Clone()
		loglik[i] = st.LogLik[a]
	}
	st.Particles, st.LogLik = particles, loglik

	// Mutation: per-particle keys make the result independent of Workers.
	mutKeys := mutKey.SplitN(p)
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Workers)
	for i := 0; i < p; i++ {
		i := i
		g.Go(func() error {
			s.mutate(mutKeys[i], st, i, lambda)
			return nil
		})
	}
	_ = g.Wait() // mutate never fails

	st.Lambda = lambda
	st.Iterations++
	return nil
}

// mutate applies MCMCSteps random-walk Metropolis–Hastings sweeps to
// particle i, targeting prior·likelihood^λ at inverse temperature lambda.
func (s *Sampler) mutate(key rng.Key, st *State, i int, lambda float64) {
	var (
		r     = key.Rand()
		cur   = st.Particles[i]
		curLL = st.LogLik[i]
		curLP = s.m.LogPrior(cur)
	)
	for step := 0; step < s.opts.MCMCSteps; step++ {
		prop := s.m.Perturb(cur, r, s.opts.StepScale)
		propLP := s.m.LogPrior(prop)
		if math.IsInf(propLP, -1) {
			continue // outside the support, reject without a likelihood eval
		}
		propLL := s.m.LogLikelihood(prop, s.obs)
		logAlpha := (propLP - curLP) + lambda*(propLL-curLL)
		if logAlpha >= 0 || math.Log(r.Float64()) < logAlpha {
			cur, curLP, curLL = prop, propLP, propLL
		}
	}
	st.Particles[i] = cur
	st.LogLik[i] = curLL
}

// Run iterates Step until λ reaches 1, bounded by Options.MaxIterations.
// On budget exhaustion it returns ErrNotConverged with the partial state
// intact.
func (s *Sampler) Run(key rng.Key, st *State) error {
	if st == nil {
		return ErrNilState
	}
	for !st.Terminal() {
		if st.Iterations >= s.opts.MaxIterations {
			return ErrNotConverged
		}
		var stepKey rng.Key
		key, stepKey = key.Split()
		if err := s.Step(stepKey, st); err != nil {
			return err
		}
	}
	return nil
}
