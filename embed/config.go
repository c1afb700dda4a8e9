package embed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
	"github.com/latspace/latspace/smc"
)

// Config is one embedding run configuration, usually loaded from YAML.
// Zero-valued numeric fields fall back to the package defaults, so a
// minimal document only names the model, the node count and the seed.
type Config struct {
	// Model is the generative model kind: bin_euc, bin_hyp, con_euc, con_hyp.
	Model string `yaml:"model"`
	// Nodes is the number of network nodes N.
	Nodes int `yaml:"nodes"`
	// Dimensions is the latent dimension D (default 2).
	Dimensions int `yaml:"dimensions,omitempty"`
	// Sigma is the prior standard deviation (default 1).
	Sigma float64 `yaml:"sigma,omitempty"`
	// Eps clamps link probabilities away from 0 and 1.
	Eps float64 `yaml:"eps,omitempty"`
	// ObsEps clamps continuous observations into the open unit interval.
	ObsEps float64 `yaml:"obs_eps,omitempty"`
	// AnchorDist is the Bookstein anchor offset.
	AnchorDist float64 `yaml:"anchor_dist,omitempty"`

	// Particles is the SMC particle count.
	Particles int `yaml:"particles,omitempty"`
	// MCMCSteps is the number of RMH sweeps per tempering step.
	MCMCSteps int `yaml:"mcmc_steps,omitempty"`
	// MaxIterations bounds the tempering loop.
	MaxIterations int `yaml:"max_iterations,omitempty"`
	// StepScale is the RMH proposal standard deviation.
	StepScale float64 `yaml:"step_scale,omitempty"`
	// TargetESS is the ESS fraction targeted by λ-adaptation.
	TargetESS float64 `yaml:"target_ess,omitempty"`
	// Workers bounds run-level parallelism in EmbedAll.
	Workers int `yaml:"workers,omitempty"`

	// Seed keys the whole run; 0 selects the package default seed.
	Seed int64 `yaml:"seed,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration by materializing its model and
// sampler views, surfacing the first violated sentinel.
func (c *Config) Validate() error {
	kind, err := c.Kind()
	if err != nil {
		return err
	}
	if _, err := model.New(kind, c.ModelConfig()); err != nil {
		return err
	}
	return c.SamplerOptions().Validate()
}

// Kind parses the model name.
func (c *Config) Kind() (model.Kind, error) {
	return model.ParseKind(c.Model)
}

// ModelConfig materializes the model view, filling defaults for
// zero-valued fields.
func (c *Config) ModelConfig() model.Config {
	d := c.Dimensions
	if d == 0 {
		d = 2
	}
	mc := model.DefaultConfig(c.Nodes, d)
	if c.Sigma != 0 {
		mc.Sigma = c.Sigma
	}
	if c.Eps != 0 {
		mc.Eps = c.Eps
	}
	if c.ObsEps != 0 {
		mc.ObsEps = c.ObsEps
	}
	if c.AnchorDist != 0 {
		mc.AnchorDist = c.AnchorDist
	}
	return mc
}

// SamplerOptions materializes the sampler view, filling defaults for
// zero-valued fields.
func (c *Config) SamplerOptions() smc.Options {
	opts := smc.DefaultOptions()
	if c.Particles != 0 {
		opts.NParticles = c.Particles
	}
	if c.MCMCSteps != 0 {
		opts.MCMCSteps = c.MCMCSteps
	}
	if c.MaxIterations != 0 {
		opts.MaxIterations = c.MaxIterations
	}
	if c.StepScale != 0 {
		opts.StepScale = c.StepScale
	}
	if c.TargetESS != 0 {
		opts.TargetESS = c.TargetESS
	}
	if c.Workers != 0 {
		opts.Workers = c.Workers
	}
	return opts
}

// Key derives the root key of the run from the seed.
func (c *Config) Key() rng.Key {
	return rng.New(c.Seed)
}
