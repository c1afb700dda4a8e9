// Package embed is the top-level driver: it turns observed networks into
// posterior latent embeddings.
//
// The pieces:
//
//   - Observations — a four-way (subject, task, encoding, edge) tensor of
//     upper-triangle edge values, with a CSV loader and an Abs transform
//     for correlation-style inputs.
//   - Config — a YAML-backed run configuration that maps onto a model
//     kind, a model.Config and smc.Options, replacing scattered ad-hoc
//     parameters with one validated document.
//   - Embed — one keyed sampling run for one observation matrix,
//     returning a Result with the particle population, the log marginal
//     likelihood estimate and convergence metadata.
//   - EmbedAll — all (subject, task) pairs of an Observations tensor,
//     fanned out over a bounded worker pool. Every run receives a
//     sequentially split subkey, so the full sweep is reproducible and
//     the pairs are mutually independent.
//   - StatsWriter — CSV summaries of finished runs for downstream
//     model comparison.
//
// Results that fail to temper to λ = 1 are kept, flagged Converged=false
// and logged, rather than discarded: a truncated population is still a
// valid (if broader) posterior approximation of its last tempered target.
package embed
