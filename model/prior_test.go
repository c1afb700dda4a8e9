package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/model"
	"github.com/latspace/latspace/rng"
)

// mustModel builds a model or fails the test.
func mustModel(t *testing.T, k model.Kind, cfg model.Config) model.Model {
	t.Helper()
	m, err := model.New(k, cfg)
	require.NoError(t, err)

	return m
}

// TestSamplePrior_Shapes checks state shapes and the variant-specific
// auxiliary scalars for all four kinds.
func TestSamplePrior_Shapes(t *testing.T) {
	cfg := model.DefaultConfig(10, 2)
	key := rng.New(1)

	var k model.Kind
	for _, k = range allKinds {
		m := mustModel(t, k, cfg)
		s := m.SamplePrior(key)

		r, c := s.Free.Dims()
		assert.Equal(t, 8, r, "kind %s: free rows must be N-D", k)
		assert.Equal(t, 2, c, "kind %s", k)

		if k.Hyperbolic() {
			assert.GreaterOrEqual(t, s.AnchorX, -cfg.AnchorDist,
				"kind %s: anchor coordinate must respect its truncation", k)
		} else {
			assert.Zero(t, s.AnchorX, "kind %s carries no anchor scalar", k)
		}
		if k.Binary() {
			assert.Zero(t, s.NoiseT, "kind %s carries no noise scalar", k)
		}

		assert.GreaterOrEqual(t, s.Free.At(0, 1), 0.0,
			"kind %s: prior draws must satisfy the orientation constraint", k)
	}
}

// TestSamplePrior_Deterministic verifies identical keys give identical
// states and distinct keys give distinct states.
func TestSamplePrior_Deterministic(t *testing.T) {
	m := mustModel(t, model.ContinuousHyperbolic, model.DefaultConfig(10, 2))

	a := m.SamplePrior(rng.New(5))
	b := m.SamplePrior(rng.New(5))
	assert.True(t, mat.Equal(a.Free, b.Free), "same key must reproduce the draw")
	assert.Equal(t, a.AnchorX, b.AnchorX)
	assert.Equal(t, a.NoiseT, b.NoiseT)

	c := m.SamplePrior(rng.New(6))
	assert.False(t, mat.Equal(a.Free, c.Free), "distinct keys must decorrelate draws")
}

// TestLogPrior_OrientationHardConstraint verifies −∞ exactly when the first
// free node's second coordinate is negative, all other inputs held fixed.
func TestLogPrior_OrientationHardConstraint(t *testing.T) {
	cfg := model.DefaultConfig(10, 2)
	key := rng.New(2)

	var k model.Kind
	for _, k = range allKinds {
		m := mustModel(t, k, cfg)
		s := m.SamplePrior(key)

		lp := m.LogPrior(s)
		require.False(t, math.IsInf(lp, -1), "kind %s: valid state must have finite prior", k)
		require.False(t, math.IsNaN(lp), "kind %s", k)

		flipped := s.Clone()
		flipped.Free.Set(0, 1, -math.Abs(s.Free.At(0, 1))-0.1)
		assert.True(t, math.IsInf(m.LogPrior(flipped), -1),
			"kind %s: orientation violation must be -Inf", k)
	}
}

// TestLogPrior_AnchorTruncation verifies hyperbolic kinds reject anchor
// coordinates below −AnchorDist and double the in-support density.
func TestLogPrior_AnchorTruncation(t *testing.T) {
	cfg := model.DefaultConfig(10, 2)
	m := mustModel(t, model.BinaryHyperbolic, cfg)
	s := m.SamplePrior(rng.New(3))

	bad := s.Clone()
	bad.AnchorX = -cfg.AnchorDist - 1e-9
	assert.True(t, math.IsInf(m.LogPrior(bad), -1), "anchor below the truncation must be -Inf")

	edge := s.Clone()
	edge.AnchorX = -cfg.AnchorDist
	assert.False(t, math.IsInf(m.LogPrior(edge), -1), "the truncation boundary is in support")
}

// TestLogPrior_ReflectionDoubling checks the log 2 reflected-half-normal
// correction: moving only non-pivot mass changes the prior by the plain
// Normal increment, while the total includes exactly one log 2 term.
func TestLogPrior_ReflectionDoubling(t *testing.T) {
	cfg := model.DefaultConfig(4, 2) // two free nodes keeps the sum small
	m := mustModel(t, model.BinaryEuclidean, cfg)

	zero := model.State{Free: mat.NewDense(2, 2, nil)}
	// All four coordinates at the Normal(0,1) mode, one doubling term:
	// log 2 + 4·logN(0|0,1) = log 2 − 2·log(2π).
	want := math.Ln2 + 4*(-0.5*math.Log(2*math.Pi))
	assert.InDelta(t, want, m.LogPrior(zero), 1e-12)
}

// TestState_CloneIndependence verifies Clone yields a deep copy.
func TestState_CloneIndependence(t *testing.T) {
	s := model.State{Free: mat.NewDense(2, 2, []float64{1, 2, 3, 4}), AnchorX: 0.1, NoiseT: -0.5}
	c := s.Clone()
	c.Free.Set(0, 0, 99)
	c.AnchorX = 7

	assert.Equal(t, 1.0, s.Free.At(0, 0), "clone must not alias Free")
	assert.Equal(t, 0.1, s.AnchorX)
}

// TestPerturb_DoesNotMutateOriginal verifies the proposal is a fresh state
// touching every active component.
func TestPerturb_DoesNotMutateOriginal(t *testing.T) {
	cfg := model.DefaultConfig(10, 2)

	var k model.Kind
	for _, k = range allKinds {
		m := mustModel(t, k, cfg)
		s := m.SamplePrior(rng.New(4))
		keep := s.Clone()

		next := m.Perturb(s, rng.New(9).Rand(), 0.1)

		assert.True(t, mat.Equal(keep.Free, s.Free), "kind %s: original must be untouched", k)
		assert.False(t, mat.Equal(s.Free, next.Free), "kind %s: proposal must move", k)
		if k.Hyperbolic() {
			assert.NotEqual(t, s.AnchorX, next.AnchorX, "kind %s", k)
		}
		if !k.Binary() {
			assert.NotEqual(t, s.NoiseT, next.NoiseT, "kind %s", k)
		}
	}
}
