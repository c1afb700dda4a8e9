// Package rng - splittable key stream shared by all samplers.
//
// This file centralizes deterministic random generation for the whole
// library. A Key is a 128-bit value; Split derives decorrelated children via
// a SplitMix64-style avalanche mix, and Source/Rand/ExpSource expose a PCG
// generator seeded from the key's state. The same Key always produces the
// same stream.
package rng

import (
	"math/rand/v2"

	exprand "golang.org/x/exp/rand"
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// golden is the canonical SplitMix64 increment (2^64/φ, odd).
const golden uint64 = 0x9e3779b97f4a7c15

// Key identifies one independent random stream. The zero Key is NOT valid;
// always obtain keys via New, Split or SplitN.
type Key struct {
	hi, lo uint64
}

// New returns the root Key for a run.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) Key {
	var s uint64
	s = uint64(seed)
	if s == 0 {
		s = defaultSeed
	}

	return Key{hi: mix64(s), lo: mix64(s ^ golden)}
}

// Split consumes k and returns two independent child keys.
// The parent must not be used for any further draw after splitting;
// reusing it aliases random streams and silently breaks reproducibility
// guarantees (a correctness bug, not a style issue).
//
// Complexity: O(1).
func (k Key) Split() (Key, Key) {
	return k.child(0), k.child(1)
}

// SplitN consumes k and returns n independent child keys.
// For n ≤ 0 it returns nil.
//
// Complexity: O(n).
func (k Key) SplitN(n int) []Key {
	if n <= 0 {
		return nil
	}

	keys := make([]Key, n)
	var i int
	for i = 0; i < n; i++ {
		keys[i] = k.child(uint64(i))
	}

	return keys
}

// Source returns a PCG source seeded by k. Each call returns a fresh source
// positioned at the start of the key's stream.
//
// Complexity: O(1).
func (k Key) Source() rand.Source {
	return rand.NewPCG(k.hi, k.lo)
}

// Rand returns a *rand.Rand over the key's stream. Not goroutine-safe;
// derive one key per worker.
//
// Complexity: O(1).
func (k Key) Rand() *rand.Rand {
	return rand.New(k.Source())
}

// ExpSource returns the key's stream behind the golang.org/x/exp/rand
// Source interface that gonum's distuv generators consume. Each call
// returns a fresh source positioned at the start of the key's stream,
// same as Source; both views draw from the identical PCG sequence.
//
// Complexity: O(1).
func (k Key) ExpSource() exprand.Source {
	return expSource{src: k.Source()}
}

// expSource adapts the PCG stream to the x/exp/rand Source interface.
type expSource struct {
	src rand.Source
}

// Uint64 forwards the underlying stream.
func (s expSource) Uint64() uint64 { return s.src.Uint64() }

// Seed is a no-op: key streams are derived by splitting, never reseeded.
func (s expSource) Seed(uint64) {}

// child derives the stream-th child of k. Children of distinct streams, and
// children of distinct parents, are decorrelated by the avalanche mix.
func (k Key) child(stream uint64) Key {
	var h, l uint64
	h = mix64(k.hi ^ (golden * (2*stream + 1)))
	l = mix64(k.lo ^ h ^ (golden * (2*stream + 2)))

	return Key{hi: h, lo: l}
}

// mix64 is the SplitMix64 finalizer; see Vigna 2014 for the constants and
// rationale. Small input changes produce large, well-distributed output
// changes, which is what decorrelates sibling streams.
func mix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
