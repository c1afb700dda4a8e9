package embed_test

import (
	"fmt"

	"github.com/latspace/latspace/embed"
	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
	"github.com/latspace/latspace/smc"
)

// ExampleEmbed fits a small simulated binary network and reports the
// shape of the recovered posterior.
func ExampleEmbed() {
	m, err := model.New(model.BinaryEuclidean, model.DefaultConfig(6, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	gen, obsKey := rng.New(3).Split()
	obs := m.SampleObservation(obsKey, m.SamplePrior(gen), 3)

	opts := smc.DefaultOptions()
	opts.NParticles = 64
	opts.MCMCSteps = 5
	res, err := embed.Embed(rng.New(5), m, obs, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("converged=%v particles=%d edges=%d\n",
		res.Converged, len(res.Particles), len(res.MeanDistances()))
	// Output: converged=true particles=64 edges=15
}
