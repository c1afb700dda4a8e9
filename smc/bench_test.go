package smc_test

import (
	"testing"

	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
	"github.com/latspace/latspace/smc"
)

// benchmarkRun times a complete tempering run for the given geometry and
// particle count. It regenerates nothing inside the loop; each iteration
// is one full prior-to-posterior sweep.
func benchmarkRun(b *testing.B, kind model.Kind, particles, workers int) {
	m, err := model.New(kind, model.DefaultConfig(10, 2))
	if err != nil {
		b.Fatalf("model: %v", err)
	}
	gen, obsKey := rng.New(1).Split()
	obs := m.SampleObservation(obsKey, m.SamplePrior(gen), 2)

	opts := smc.DefaultOptions()
	opts.NParticles = particles
	opts.MCMCSteps = 10
	opts.Workers = workers
	s, err := smc.New(m, obs, opts)
	if err != nil {
		b.Fatalf("sampler: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		initKey, runKey := rng.New(int64(i)+1).Split()
		st := s.Init(initKey)
		if err := s.Run(runKey, st); err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}

func BenchmarkRun_BinaryEuclidean(b *testing.B) {
	benchmarkRun(b, model.BinaryEuclidean, 128, 1)
}

func BenchmarkRun_BinaryHyperbolic(b *testing.B) {
	benchmarkRun(b, model.BinaryHyperbolic, 128, 1)
}

func BenchmarkRun_BinaryEuclideanParallel(b *testing.B) {
	benchmarkRun(b, model.BinaryEuclidean, 128, 4)
}
