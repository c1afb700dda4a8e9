// Package geom - Lorentz-model (hyperboloid) operations.
//
// Conventions in this file:
//   - Hyperboloid points are rows of an (N,D+1) matrix with time-like first
//     coordinate z₀ = √(1+‖z_{1:}‖²).
//   - All row-wise operations pair row i of one argument with row i of the
//     others; row counts must agree (shape mismatches panic via gonum).
package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultExpEps is the lower clamp on tangent-vector norms inside
// ExponentialMap. Values much below 1e-6 get rounded back to zero in the
// float64 pipeline, which reintroduces the division by zero the clamp
// exists to prevent.
const DefaultExpEps = 1e-6

// HypPoint lifts D-dimensional Euclidean points onto the upper sheet of the
// two-sheet hyperboloid by solving ⟨z,z⟩_L = −1 for the time coordinate:
// z₀ = √(1+‖x‖²). Input is (N,D), output is (N,D+1).
//
// Complexity: O(N·D).
func HypPoint(x mat.Matrix) *mat.Dense {
	n, d := x.Dims()
	z := mat.NewDense(n, d+1, nil)

	var (
		i, j int
		ss   float64
	)
	for i = 0; i < n; i++ {
		ss = 0
		for j = 0; j < d; j++ {
			ss += x.At(i, j) * x.At(i, j)
			z.Set(i, j+1, x.At(i, j))
		}
		z.Set(i, 0, math.Sqrt(ss+1))
	}

	return z
}

// Lorentzian returns the Minkowski bilinear form
// ⟨u,v⟩_L = −u₀v₀ + Σ_{i≥1} uᵢvᵢ. Panics if len(u) != len(v).
//
// Complexity: O(D).
func Lorentzian(u, v []float64) float64 {
	if len(u) != len(v) {
		panic("geom: Lorentzian: length mismatch")
	}

	s := -u[0] * v[0]
	var i int
	for i = 1; i < len(u); i++ {
		s += u[i] * v[i]
	}

	return s
}

// PairwiseLorentz returns the N×N matrix of hyperbolic distances
// d(u,v) = arccosh(−⟨u,v⟩_L) between the rows of z, which must lie on the
// hyperboloid. The arccosh argument is clamped to ≥ 1 (floating-point dips
// below 1 would otherwise produce NaN) and the diagonal is forced to exactly
// zero.
//
// Complexity: O(N²·D) time, O(N²) space.
func PairwiseLorentz(z mat.Matrix) *mat.SymDense {
	n, _ := z.Dims()
	zd := mat.DenseCopyOf(z)

	d := mat.NewSymDense(n, nil)
	var (
		i, j int
		arg  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			arg = -Lorentzian(zd.RawRowView(i), zd.RawRowView(j))
			if arg < 1 {
				arg = 1
			}
			d.SetSym(i, j, math.Acosh(arg))
		}
	}

	return d
}

// ParallelTransport moves tangent vectors v (rows, at the tangent space of
// from) to the tangent space of to, row-wise:
//
//	PT(v) = v + ⟨to − α·from, v⟩_L / (α+1) · (from + to),  α = −⟨from,to⟩_L.
//
// All three matrices are (N,D+1) in Lorentz coordinates.
//
// Complexity: O(N·D).
func ParallelTransport(v, from, to *mat.Dense) *mat.Dense {
	n, c := v.Dims()
	out := mat.NewDense(n, c, nil)

	var (
		i, j        int
		alpha, coef float64
	)
	row := make([]float64, c)
	for i = 0; i < n; i++ {
		vi, fi, ti := v.RawRowView(i), from.RawRowView(i), to.RawRowView(i)
		alpha = -Lorentzian(fi, ti)

		// row = to − α·from, reused as the direction mixed into v.
		for j = 0; j < c; j++ {
			row[j] = ti[j] - alpha*fi[j]
		}
		coef = Lorentzian(row, vi) / (alpha + 1)

		for j = 0; j < c; j++ {
			out.Set(i, j, vi[j]+coef*(fi[j]+ti[j]))
		}
	}

	return out
}

// ExponentialMap projects tangent vectors u (rows, at the tangent space of
// base) onto the hyperboloid:
//
//	exp_base(u) = cosh(‖u‖_L)·base + sinh(‖u‖_L)·u/‖u‖_L.
//
// The squared Lorentzian norm is clamped to ≥ eps before the square root;
// eps ≤ 0 falls back to DefaultExpEps. The clamp keeps the division defined
// for (near-)zero tangent vectors without rounding the norm back to zero.
//
// Complexity: O(N·D).
func ExponentialMap(base, u *mat.Dense, eps float64) *mat.Dense {
	if eps <= 0 {
		eps = DefaultExpEps
	}

	n, c := u.Dims()
	out := mat.NewDense(n, c, nil)

	var (
		i, j int
		lor  float64
		nrm  float64
	)
	for i = 0; i < n; i++ {
		ui, bi := u.RawRowView(i), base.RawRowView(i)

		lor = Lorentzian(ui, ui)
		if lor < eps {
			lor = eps
		}
		nrm = math.Sqrt(lor)

		ch, sh := math.Cosh(nrm), math.Sinh(nrm)
		for j = 0; j < c; j++ {
			out.Set(i, j, ch*bi[j]+sh*ui[j]/nrm)
		}
	}

	return out
}

// LorentzToPoincare converts hyperboloid points (N,D+1) to Poincaré-disk
// coordinates (N,D) via z_P = z_{1:}/(z₀+1) (eq. 11, Nickel & Kiela 2018).
// Presentation-level conversion; not used in the sampling hot path.
//
// Complexity: O(N·D).
func LorentzToPoincare(z mat.Matrix) *mat.Dense {
	n, c := z.Dims()
	out := mat.NewDense(n, c-1, nil)

	var i, j int
	for i = 0; i < n; i++ {
		denom := z.At(i, 0) + 1
		for j = 1; j < c; j++ {
			out.Set(i, j-1, z.At(i, j)/denom)
		}
	}

	return out
}

// Origin returns the (N,D+1) matrix whose rows are all the hyperboloid
// origin (1, 0, …, 0) — the base point of tangent-space sampling.
func Origin(n, d int) *mat.Dense {
	z := mat.NewDense(n, d+1, nil)
	var i int
	for i = 0; i < n; i++ {
		z.Set(i, 0, 1)
	}

	return z
}
