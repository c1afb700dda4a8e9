// Package rng provides a splittable, deterministic random-key stream.
//
// Every source of randomness in latspace (prior sampling, MCMC proposals,
// resampling, observation generation) draws from a Key handed to it by the
// caller. Keys are split explicitly: a parent key yields independent child
// keys, and a key that has been split, or turned into a generator, must not
// be used for a second draw. Threading keys this way makes every run
// reproducible — same seed ⇒ bit-identical results across platforms.
//
// Goals:
//   - Determinism: no time-based sources hidden anywhere.
//   - Encapsulation: a single RNG factory; substreams derived, never shared.
//   - Safety: no panics or logging; pure value semantics.
//
// Concurrency:
//   - Key is an immutable value and safe to copy across goroutines.
//   - *rand.Rand values produced by Key.Rand are NOT goroutine-safe; derive
//     one key (and one generator) per worker instead of sharing.
package rng
