// Package bookstein removes the rigid-motion symmetry of a latent
// configuration by pinning its first D points to canonical anchor positions
// (Bookstein coordinates). Without anchoring, any translation, rotation or
// reflection of the positions yields the same pairwise distances and hence
// the same likelihood, and the posterior over positions is unidentifiable.
//
// Construction for latent dimension D with anchor offset dist:
//   - anchor 1 sits at −dist·e₁;
//   - anchor 2 sits on the first axis: at +dist·e₁ (Euclidean models), or at
//     (x, 0, …) with the scalar x itself inferred (hyperbolic models, which
//     carry an extra radial degree of freedom);
//   - anchors j ≥ 3 sit at +dist·e_{j−1}.
//
// Anchors pin translation and rotation; the remaining reflection about the
// anchor axis is fixed by the model layer, which constrains the first free
// point's second coordinate to be non-negative (reflected half-normal
// prior).
//
// States store only the N−D free points. Attach reconstructs the full
// configuration deterministically — identical inputs always yield identical
// positions — and must be applied to every prior and likelihood evaluation
// alike; Detach inverts it as a post-sampling finalization step.
package bookstein
