package bookstein

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultAnchorDist is the canonical offset of the anchors from the origin.
const DefaultAnchorDist = 0.3

var (
	// ErrBadDimension is returned for latent dimensions < 1.
	ErrBadDimension = errors.New("bookstein: latent dimension must be >= 1")

	// ErrBadAnchorDist is returned for non-positive anchor offsets.
	ErrBadAnchorDist = errors.New("bookstein: anchor distance must be > 0")

	// ErrTooFewRows is returned by Detach when the configuration has fewer
	// rows than anchors.
	ErrTooFewRows = errors.New("bookstein: fewer rows than anchor points")
)

// Anchors returns the D deterministic anchor points for Euclidean models as
// a (D,D) matrix: row 0 is −dist·e₁, row 1 is +dist·e₁, rows j ≥ 2 are
// +dist·e_j.
//
// Complexity: O(D²).
func Anchors(d int, dist float64) (*mat.Dense, error) {
	if d < 1 {
		return nil, ErrBadDimension
	}
	if dist <= 0 {
		return nil, ErrBadAnchorDist
	}

	a := mat.NewDense(d, d, nil)
	a.Set(0, 0, -dist)
	var j int
	for j = 1; j < d; j++ {
		// Second anchor stays on the first axis; later anchors move to e_j.
		if j == 1 {
			a.Set(1, 0, dist)
		} else {
			a.Set(j, j-1, dist)
		}
	}

	return a, nil
}

// AnchorsWithX returns the anchor points for hyperbolic models: identical to
// Anchors except that the second anchor's first coordinate is the inferred
// scalar x (its remaining coordinates stay zero, keeping it on the anchor
// axis).
//
// Complexity: O(D²).
func AnchorsWithX(x float64, d int, dist float64) (*mat.Dense, error) {
	a, err := Anchors(d, dist)
	if err != nil {
		return nil, err
	}
	if d > 1 {
		a.Set(1, 0, x)
	}

	return a, nil
}

// Attach reconstructs the full (D+F, D) configuration by stacking the anchor
// rows on top of the free rows. Pure and deterministic: identical inputs
// always yield identical positions.
//
// Complexity: O(N·D).
func Attach(anchors, free *mat.Dense) *mat.Dense {
	ar, c := anchors.Dims()
	fr, fc := free.Dims()
	if c != fc {
		panic("bookstein: Attach: column mismatch")
	}

	full := mat.NewDense(ar+fr, c, nil)
	full.Slice(0, ar, 0, c).(*mat.Dense).Copy(anchors)
	full.Slice(ar, ar+fr, 0, c).(*mat.Dense).Copy(free)

	return full
}

// Detach splits a full (N,D) configuration into its first d anchor rows and
// the remaining N−d free rows, inverting Attach. Both returned matrices are
// copies; mutating them does not alias full.
//
// Complexity: O(N·D).
func Detach(full *mat.Dense, d int) (anchors, free *mat.Dense, err error) {
	n, c := full.Dims()
	if d < 1 {
		return nil, nil, ErrBadDimension
	}
	if n < d {
		return nil, nil, ErrTooFewRows
	}

	anchors = mat.DenseCopyOf(full.Slice(0, d, 0, c))
	free = mat.DenseCopyOf(full.Slice(d, n, 0, c))

	return anchors, free, nil
}
