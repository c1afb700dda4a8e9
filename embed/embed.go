package embed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/geom"
	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
	"github.com/latspace/latspace/smc"
)

// Result is one finished embedding run. The particle population is
// equally weighted: the sampler resamples on every tempering step, so no
// separate weight vector is carried.
type Result struct {
	// ID uniquely names the run for logs and stats files.
	ID uuid.UUID
	// Subject and Task index the observation slice; both 0 for a run
	// started directly through Embed.
	Subject, Task int
	// Kind is the generative model kind the run was fitted under.
	Kind model.Kind
	// Particles is the posterior particle population.
	Particles []model.State
	// Lambda is the final inverse temperature (1 when Converged).
	Lambda float64
	// Iterations is the number of tempering steps performed.
	Iterations int
	// LogMarginal is the log marginal likelihood estimate.
	LogMarginal float64
	// Converged reports whether tempering reached λ = 1.
	Converged bool
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	m model.Model
}

// Positions returns the full latent positions of particle i, anchors
// re-attached. Hyperbolic kinds return hyperboloid coordinates
// (N x (D+1)), Euclidean kinds N x D.
func (r *Result) Positions(i int) *mat.Dense {
	return r.m.Positions(r.Particles[i])
}

// PoincarePositions projects particle i onto the Poincare ball for
// plotting. Euclidean kinds return ErrNotHyperbolic.
func (r *Result) PoincarePositions(i int) (*mat.Dense, error) {
	if !r.Kind.Hyperbolic() {
		return nil, ErrNotHyperbolic
	}
	return geom.LorentzToPoincare(r.Positions(i)), nil
}

// Distances returns the upper-triangle latent distances of particle i.
func (r *Result) Distances(i int) []float64 {
	return r.m.DetParams(r.Particles[i]).Dist
}

// MeanDistances returns the posterior-mean upper-triangle distances,
// averaged over the particle population.
func (r *Result) MeanDistances() []float64 {
	out := make([]float64, geom.TriuLen(r.m.Config().N))
	for i := range r.Particles {
		for j, d := range r.Distances(i) {
			out[j] += d
		}
	}
	for j := range out {
		out[j] /= float64(len(r.Particles))
	}
	return out
}

// Embed runs one keyed prior-to-posterior sampling sweep for a single
// observation matrix (rows = independent observations, columns = upper
// triangle edges).
//
// On ErrNotConverged the returned Result is still populated, flagged
// Converged=false, and describes the last tempered target reached; any
// other error returns a nil Result.
func Embed(key rng.Key, m model.Model, obs *mat.Dense, opts smc.Options) (*Result, error) {
	s, err := smc.New(m, obs, opts)
	if err != nil {
		return nil, err
	}
	var (
		start           = time.Now()
		initKey, runKey = key.Split()
		st              = s.Init(initKey)
	)
	runErr := s.Run(runKey, st)
	if runErr != nil && !errors.Is(runErr, smc.ErrNotConverged) {
		return nil, runErr
	}
	return &Result{
		ID:          uuid.New(),
		Kind:        m.Kind(),
		Particles:   st.Particles,
		Lambda:      st.Lambda,
		Iterations:  st.Iterations,
		LogMarginal: st.LogMarginal,
		Converged:   runErr == nil,
		Elapsed:     time.Since(start),
		m:           m,
	}, runErr
}

// EmbedAll fits every (subject, task) slice of the tensor under the same
// model, fanning runs out over at most opts.Workers goroutines. Each run
// receives a sequentially split subkey, so results do not depend on
// scheduling; within a run the sampler mutates serially.
//
// Non-converged runs are logged at warn level and kept. The returned
// slice is ordered subject-major and is never partially nil on a nil
// error.
func EmbedAll(key rng.Key, m model.Model, obs *Observations, opts smc.Options, log *slog.Logger) ([]*Result, error) {
	if m == nil {
		return nil, smc.ErrNilModel
	}
	if obs == nil {
		return nil, smc.ErrNilObservations
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	subjects, tasks, _, edges := obs.Dims()
	if edges != m.Config().Edges() {
		return nil, smc.ErrObsShape
	}

	// Parallelism lives at the run level here; keep each run serial.
	runOpts := opts
	runOpts.Workers = 1

	var (
		keys    = key.SplitN(subjects * tasks)
		results = make([]*Result, subjects*tasks)
		g       = new(errgroup.Group)
	)
	g.SetLimit(opts.Workers)
	for s := 0; s < subjects; s++ {
		for t := 0; t < tasks; t++ {
			s, t := s, t
			i := s*tasks + t
			g.Go(func() error {
				slice, err := obs.Slice(s, t)
				if err != nil {
					return err
				}
				res, err := Embed(keys[i], m, slice, runOpts)
				if err != nil && !errors.Is(err, smc.ErrNotConverged) {
					return err
				}
				res.Subject, res.Task = s, t
				if res.Converged {
					log.Info("embedding finished",
						"run", res.ID, "subject", s, "task", t,
						"iterations", res.Iterations, "lml", res.LogMarginal,
						"elapsed", res.Elapsed)
				} else {
					log.Warn("embedding did not converge",
						"run", res.ID, "subject", s, "task", t,
						"lambda", res.Lambda, "iterations", res.Iterations)
				}
				results[i] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
