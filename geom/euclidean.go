// Package geom - Euclidean pairwise distances and upper-triangle utilities.
package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrTriuLength is returned when a vector length does not correspond to the
// upper triangle of any square matrix (m ≠ n(n−1)/2 for integer n).
var ErrTriuLength = errors.New("geom: not an upper-triangle length")

// PairwiseEuclidean returns the N×N matrix of Euclidean distances between
// the rows of z, computed through the Gram-matrix identity
// ‖a−b‖² = ‖a‖² + ‖b‖² − 2⟨a,b⟩. Squared distances are clamped to ≥ 0
// before the square root to absorb floating-point negatives; the diagonal is
// exactly zero.
//
// Complexity: O(N²·D) time, O(N²) space.
func PairwiseEuclidean(z mat.Matrix) *mat.SymDense {
	n, _ := z.Dims()

	var gram mat.Dense
	gram.Mul(z, z.T())

	d := mat.NewSymDense(n, nil)
	var (
		i, j   int
		inside float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			inside = gram.At(i, i) + gram.At(j, j) - 2*gram.At(i, j)
			if inside < 0 {
				inside = 0
			}
			d.SetSym(i, j, math.Sqrt(inside))
		}
	}

	return d
}

// TriuLen returns the number of strictly-upper-triangle entries of an n×n
// matrix, M = n(n−1)/2.
func TriuLen(n int) int {
	return n * (n - 1) / 2
}

// UpperTriangle flattens the strictly-upper triangle of d into a length
// n(n−1)/2 vector in row-major order: (0,1), (0,2), …, (n−2,n−1).
//
// Complexity: O(N²).
func UpperTriangle(d *mat.SymDense) []float64 {
	n := d.SymmetricDim()
	v := make([]float64, 0, TriuLen(n))

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = append(v, d.At(i, j))
		}
	}

	return v
}

// TriuToSym rebuilds a symmetric matrix with zero diagonal from its strictly
// upper triangle, inverting UpperTriangle. Returns ErrTriuLength when len(v)
// is not a valid triangle size.
//
// Complexity: O(N²).
func TriuToSym(v []float64) (*mat.SymDense, error) {
	m := len(v)
	n := int((1 + math.Sqrt(float64(1+8*m))) / 2)
	if TriuLen(n) != m {
		return nil, ErrTriuLength
	}

	s := mat.NewSymDense(n, nil)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			s.SetSym(i, j, v[k])
			k++
		}
	}

	return s, nil
}
