package embed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latspace/latspace/embed"
	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/smc"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Minimal(t *testing.T) {
	c, err := embed.LoadConfig(writeConfig(t, "model: bin_euc\nnodes: 8\nseed: 42\n"))
	require.NoError(t, err)

	kind, err := c.Kind()
	require.NoError(t, err)
	assert.Equal(t, model.BinaryEuclidean, kind)

	mc := c.ModelConfig()
	assert.Equal(t, 8, mc.N)
	assert.Equal(t, 2, mc.D)
	assert.Equal(t, model.DefaultSigma, mc.Sigma)
	assert.Equal(t, model.DefaultEps, mc.Eps)
	assert.Equal(t, model.DefaultAnchorDist, mc.AnchorDist)

	opts := c.SamplerOptions()
	assert.Equal(t, smc.DefaultOptions(), opts)

	assert.Equal(t, c.Key(), c.Key(), "seed derivation is deterministic")
}

func TestLoadConfig_Overrides(t *testing.T) {
	c, err := embed.LoadConfig(writeConfig(t, `
model: con_hyp
nodes: 20
dimensions: 3
sigma: 2.5
eps: 0.001
obs_eps: 1.0e-9
anchor_dist: 0.4
particles: 500
mcmc_steps: 50
max_iterations: 200
step_scale: 0.05
target_ess: 0.7
workers: 4
seed: 7
`))
	require.NoError(t, err)

	mc := c.ModelConfig()
	assert.Equal(t, 20, mc.N)
	assert.Equal(t, 3, mc.D)
	assert.Equal(t, 2.5, mc.Sigma)
	assert.Equal(t, 0.001, mc.Eps)
	assert.Equal(t, 1e-9, mc.ObsEps)
	assert.Equal(t, 0.4, mc.AnchorDist)

	opts := c.SamplerOptions()
	assert.Equal(t, 500, opts.NParticles)
	assert.Equal(t, 50, opts.MCMCSteps)
	assert.Equal(t, 200, opts.MaxIterations)
	assert.Equal(t, 0.05, opts.StepScale)
	assert.Equal(t, 0.7, opts.TargetESS)
	assert.Equal(t, 4, opts.Workers)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := embed.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, embed.ErrConfigRead)

	_, err = embed.LoadConfig(writeConfig(t, "model: [broken\n"))
	assert.ErrorIs(t, err, embed.ErrConfigRead)

	_, err = embed.LoadConfig(writeConfig(t, "model: lorentzian\nnodes: 8\n"))
	assert.ErrorIs(t, err, model.ErrUnknownKind)

	_, err = embed.LoadConfig(writeConfig(t, "model: bin_euc\nnodes: 2\n"))
	assert.ErrorIs(t, err, model.ErrBadNodeCount)

	_, err = embed.LoadConfig(writeConfig(t, "model: bin_euc\nnodes: 8\ntarget_ess: 2\n"))
	assert.ErrorIs(t, err, smc.ErrBadTargetESS)

	_, err = embed.LoadConfig(writeConfig(t, "model: bin_hyp\nnodes: 8\neps: 1.0e-7\n"))
	assert.ErrorIs(t, err, model.ErrEpsUnderflow)
}
