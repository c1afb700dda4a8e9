// Package latspace embeds network nodes into low-dimensional latent
// spaces by Bayesian inference: given repeated observations of a binary
// or weighted network, it recovers node positions whose pairwise
// distances explain the observed edges, together with a log marginal
// likelihood for comparing geometries.
//
// 🚀 What is latspace?
//
//	A keyed, reproducible latent space model toolkit that brings together:
//		• Geometry: Euclidean and hyperbolic (Lorentz model) latent spaces
//		• Likelihoods: Bernoulli edges (binary) and Beta edges (continuous)
//		• Identification: Bookstein anchoring of the first D nodes
//		• Inference: adaptive tempered Sequential Monte Carlo with
//		  random-walk Metropolis mutation
//		• Evidence: a log marginal likelihood estimate per fitted model
//
// ✨ Why choose latspace?
//
//   - Deterministic – every draw flows from a splittable key; runs are
//     bit-identical for a fixed seed, at any worker count
//   - Fail-fast – configuration errors surface as sentinel errors before
//     any sampling starts
//   - Pure Go – gonum numerics, no cgo
//   - Four models, one interface – swap geometry and likelihood without
//     touching the sampler
//
// Under the hood, everything is organized under six subpackages:
//
//	rng/       — splittable deterministic random keys
//	geom/      — pairwise distances, hyperboloid maps, triangle packing
//	bookstein/ — anchor construction and anchor/free decomposition
//	model/     — the four generative models behind one Model interface
//	smc/       — the adaptive tempered SMC engine
//	embed/     — observation tensors, YAML configs, run drivers, stats
//
// Quick start:
//
//	m, err := model.New(model.BinaryEuclidean, model.DefaultConfig(10, 2))
//	if err != nil { ... }
//	res, err := embed.Embed(rng.New(42), m, obs, smc.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.LogMarginal)
//
// Dive into each subpackage's doc.go for the full contracts.
//
//	go get github.com/latspace/latspace
package latspace
