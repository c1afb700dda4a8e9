// Package geom implements the geometric transforms behind latent-space
// models: all-pairs Euclidean distances, the Lorentz (hyperboloid) model of
// hyperbolic space, and the coordinate maps between its representations.
//
// Representations:
//   - Tangent coordinates: an (N,D) matrix of Euclidean points, interpreted
//     as living in the tangent space at the hyperboloid origin.
//   - Lorentz coordinates: an (N,D+1) matrix of points on the upper sheet of
//     the two-sheet hyperboloid ⟨z,z⟩_L = −1, z₀ > 0, where ⟨·,·⟩_L is the
//     Minkowski bilinear form −u₀v₀ + Σ_{i≥1} uᵢvᵢ.
//   - Poincaré coordinates: the bounded disk model, reached from Lorentz
//     coordinates via z_P = z_{1:}/(z₀+1); used for presentation only.
//
// A tangent sample is moved to the manifold by parallel transport from the
// origin to a mean point followed by the exponential map; PairwiseLorentz
// then measures distances directly on the hyperboloid.
//
// Numeric policy: floating-point edge effects near the manifold boundary are
// absorbed by silent clamps (squared distances to ≥ 0, acosh arguments to
// ≥ 1, tangent norms away from 0). Clamps are corrections, not errors — no
// function in this package returns an error or logs. Shape mismatches are
// programmer errors and panic via gonum.
package geom
