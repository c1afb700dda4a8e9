package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latspace/latspace/geom"
)

// onSheet asserts that every row of z satisfies the hyperboloid constraint
// ⟨z,z⟩_L = −1 with positive time coordinate.
func onSheet(t *testing.T, z *mat.Dense, tol float64) {
	t.Helper()
	n, _ := z.Dims()
	var i int
	for i = 0; i < n; i++ {
		row := z.RawRowView(i)
		assert.InDelta(t, -1, geom.Lorentzian(row, row), tol, "row %d off the hyperboloid", i)
		assert.Positive(t, row[0], "row %d must be on the upper sheet", i)
	}
}

// TestHypPoint_SatisfiesConstraint verifies the lift solves ⟨z,z⟩_L = −1 and
// keeps the spatial coordinates intact.
func TestHypPoint_SatisfiesConstraint(t *testing.T) {
	x := randomPositions(10, 8, 2)
	z := geom.HypPoint(x)

	r, c := z.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 3, c)
	onSheet(t, z, 1e-12)

	var i, j int
	for i = 0; i < 8; i++ {
		for j = 0; j < 2; j++ {
			assert.Equal(t, x.At(i, j), z.At(i, j+1), "spatial part must be copied verbatim")
		}
	}
}

// TestLorentzian_SignConvention pins the −u₀v₀ + Σuᵢvᵢ convention.
func TestLorentzian_SignConvention(t *testing.T) {
	u := []float64{2, 1, -1}
	v := []float64{3, 4, 5}
	assert.Equal(t, -2.0*3+1*4-1*5, geom.Lorentzian(u, v))
	assert.Equal(t, geom.Lorentzian(u, v), geom.Lorentzian(v, u), "form is symmetric")
}

// TestPairwiseLorentz_MetricProperties verifies symmetry, non-negativity,
// exactly-zero diagonal, and NaN-freedom under near-identical points.
func TestPairwiseLorentz_MetricProperties(t *testing.T) {
	const n = 12
	z := geom.HypPoint(randomPositions(11, n, 2))
	d := geom.PairwiseLorentz(z)

	var i, j int
	for i = 0; i < n; i++ {
		assert.Zero(t, d.At(i, i), "diagonal must be exactly zero")
		for j = 0; j < n; j++ {
			assert.False(t, math.IsNaN(d.At(i, j)))
			assert.GreaterOrEqual(t, d.At(i, j), 0.0)
			assert.Equal(t, d.At(i, j), d.At(j, i))
		}
	}
}

// TestPairwiseLorentz_KnownDistance checks one analytic value: points lifted
// from (0,0) and (x,0) are at distance arcsinh(x).
func TestPairwiseLorentz_KnownDistance(t *testing.T) {
	x := 0.75
	pts := geom.HypPoint(mat.NewDense(2, 2, []float64{0, 0, x, 0}))
	d := geom.PairwiseLorentz(pts)

	// −⟨u,v⟩ = √(1+x²) here, so d = arccosh(√(1+x²)) = arcsinh(x).
	want := math.Asinh(x)
	assert.InDelta(t, want, d.At(0, 1), 1e-12)
}

// TestParallelTransport_IsIsometry verifies that the transport preserves the
// Lorentzian norm of tangent vectors.
func TestParallelTransport_IsIsometry(t *testing.T) {
	const n, d = 6, 2
	tangent := randomPositions(12, n, d)

	// Tangent vectors at the origin have a zero time coordinate.
	v := mat.NewDense(n, d+1, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v.Set(i, j+1, tangent.At(i, j))
		}
	}

	from := geom.Origin(n, d)
	to := geom.HypPoint(mat.NewDense(n, d, []float64{
		0.3, -0.2, 1.0, 0.5, -0.7, 0.1, 0.0, 0.9, -1.2, -0.4, 0.6, 0.6,
	}))
	u := geom.ParallelTransport(v, from, to)

	for i = 0; i < n; i++ {
		vi, ui := v.RawRowView(i), u.RawRowView(i)
		assert.InDelta(t, geom.Lorentzian(vi, vi), geom.Lorentzian(ui, ui), 1e-10,
			"transport must preserve the Lorentzian norm (row %d)", i)
		// Transported vectors must be tangent at the destination: ⟨u,to⟩ = 0.
		assert.InDelta(t, 0, geom.Lorentzian(ui, to.RawRowView(i)), 1e-10,
			"transported vector must be tangent at destination (row %d)", i)
	}
}

// TestExponentialMap_LandsOnSheet verifies exp_base(u) stays on the upper
// hyperboloid sheet, including for (near-)zero tangent vectors.
func TestExponentialMap_LandsOnSheet(t *testing.T) {
	const n, d = 5, 2
	base := geom.Origin(n, d)

	u := mat.NewDense(n, d+1, nil)
	u.Set(0, 1, 0.8)
	u.Set(1, 2, -1.3)
	u.Set(2, 1, 1e-9) // below the eps clamp
	u.Set(3, 1, 0.4)
	u.Set(3, 2, 0.4)
	// row 4 stays exactly zero

	z := geom.ExponentialMap(base, u, geom.DefaultExpEps)
	onSheet(t, z, 1e-5)

	r, c := z.Dims()
	assert.Equal(t, n, r)
	assert.Equal(t, d+1, c)
}

// TestLorentzToPoincare_InsideDisk verifies the conversion maps onto the
// open unit disk and matches z_{1:}/(z₀+1).
func TestLorentzToPoincare_InsideDisk(t *testing.T) {
	const n = 10
	z := geom.HypPoint(randomPositions(13, n, 2))
	p := geom.LorentzToPoincare(z)

	var i int
	for i = 0; i < n; i++ {
		px, py := p.At(i, 0), p.At(i, 1)
		assert.Less(t, math.Hypot(px, py), 1.0, "Poincaré point must lie inside the unit disk")
		assert.InDelta(t, z.At(i, 1)/(z.At(i, 0)+1), px, 1e-15)
		assert.InDelta(t, z.At(i, 2)/(z.At(i, 0)+1), py, 1e-15)
	}
}
