// Package model defines the probabilistic models whose posteriors latspace
// infers: a latent position per network node, pairwise distances through a
// chosen geometry, and a link from distance to an edge distribution.
//
// Four model variants cover {binary, continuous} edges × {Euclidean,
// hyperbolic} latent geometry. All four satisfy the Model interface — a
// closed set; there is no registration mechanism — and share the geom and
// bookstein layers:
//
//   - BinaryEuclidean:      y_m ~ Bernoulli(p_m), p = 1 − d/(max d + ε).
//   - BinaryHyperbolic:     y_m ~ Bernoulli(p_m), p = exp(−d²), d measured on
//     the Lorentz model after tangent-space projection.
//   - ContinuousEuclidean:  y_m ~ Beta with mean p_m and noise scale
//     σ_m = invlogit(NoiseT)·bound_m, bound = √(p(1−p)).
//   - ContinuousHyperbolic: as ContinuousEuclidean over Lorentz distances.
//
// States are Bookstein-anchored: only the N−D free positions are sampled,
// plus the second anchor's coordinate for hyperbolic variants and the noise
// transform for continuous variants. Priors include the reflected
// half-normal orientation term (−∞ log-density on sign violation — a hard
// constraint resolved by the sampler's accept/reject mechanics, not an
// error).
//
// Numeric policy: link outputs are clamped to the open interval (ε, 1−ε) and
// continuous observations to (obsEps, 1−obsEps); clamps are silent. Setup
// mistakes (unknown kind, mismatched µ dimension, non-positive σ) fail fast
// with sentinel errors from New before any sampling begins.
package model
