// Package kway - RNG utilities shared by the network builders.
//
// This file centralizes deterministic random generation for switch drawing.
//
// Goals:
//   - Determinism: same seed ⇒ identical switch tables across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Performance: O(1) helpers, O(m) switch draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed/DeriveRNG to create independent streams for parallel trials.
//
// Randomness here is a reproducibility capability, not a security
// primitive: the source is deliberately non-cryptographic.
package kway

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or a nil RNG. The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Independent per-trial streams derived from one base seed let many
//     randomized builds run in parallel with no shared *rand.Rand.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighboring stream identifiers.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small input changes produce well-distributed outputs.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream based on a base RNG
// and a stream identifier. If base==nil, defaultRNGSeed is used as the parent.
// Otherwise, base.Int63() is consumed once to decorrelate consecutive derivations,
// then mixed with the stream via DeriveSeed.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker/per-trial RNGs.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		// Int63() advances base state; this is intentional to avoid identical
		// children when the same stream id is reused by mistake.
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// randPerm draws a uniformly random permutation of 0..m-1 from rng via
// Fisher–Yates. If rng==nil, the default deterministic stream is used.
// Allocation is required by contract (the switch owns its slice).
//
// Complexity: O(m) time, O(m) space.
func randPerm(m int, rng *rand.Rand) Switch {
	p := make(Switch, m)
	for i := range p {
		p[i] = i
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}
	for i := m - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
