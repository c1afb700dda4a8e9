// Package smc implements an adaptive tempered Sequential Monte Carlo
// sampler: a weighted particle approximation to a posterior reached by
// interpolating from the prior (λ=0) to the full posterior (λ=1) through
// tempered targets prior·likelihood^λ.
//
// One Step performs:
//
//  1. λ-adaptation — find the largest λ′ ≤ 1 whose incremental importance
//     weights exp((λ′−λ)·loglik) keep the normalized effective sample size
//     at the configured target fraction (bisection; capped at 1).
//  2. Reweighting — accumulate log(Σw/P) into the running log marginal
//     likelihood estimate (the model-evidence estimator).
//  3. Systematic resampling — one uniform draw, P evenly spaced offsets.
//  4. Mutation — MCMCSteps sweeps of random-walk Metropolis–Hastings per
//     particle, targeting the λ′-tempered posterior with an isotropic
//     Gaussian proposal.
//
// Run loops Step until λ reaches exactly 1, bounded by MaxIterations; a
// pathological posterior that cannot be tempered to 1 in the budget
// surfaces as ErrNotConverged with the partial state intact, never as a
// hang.
//
// Determinism: all randomness flows from the rng.Key passed to Init, Step
// and Run; per-particle mutation keys are split from the step key, so runs
// are bit-identical for a fixed seed regardless of the Workers setting.
package smc
