// Package permnet is an in-memory toolkit for building and applying
// recursive radix-k permutation networks — the oblivious-shuffle
// substrate used by privacy-preserving joins and shuffles.
//
// 🚀 What is permnet?
//
//	A small, deterministic library that composes random local switches
//	(each a permutation of at most k elements) into one pseudo-random
//	permutation of n elements, without a single data-dependent
//	comparison:
//		• Network construction: recursive switch-table builder for any n and k
//		• Application: permute arbitrary payload slices through a built table
//		• Routing: answer "where does input i land?" by pure index arithmetic
//		• Verification: validity rate, coverage and entropy over many trials
//
// ✨ Why choose permnet?
//
//   - Valid for *any* n and k ≥ 2 – bijectivity is the hard invariant, not a hope
//   - Deterministic – every random draw flows from an injected, seedable source
//   - Oblivious by construction – topology is public, only switch settings vary
//   - Parallel-trial friendly – tables are immutable, builds share no state
//
// Under the hood, everything is organized under two subpackages:
//
//	kway/     — network spec, switch table, builder, applier and router
//	analysis/ — empirical verification harness (validity, coverage, entropy)
//
// Quick ASCII sketch of one radix-3 node over 9 inputs:
//
//	in ──[swi]──┐        ┌──[swo]── out
//	in ──[swi]──┼─ grp ──┼──[swo]── out
//	in ──[swi]──┘        └──[swo]── out
//
//	input switches scatter every chunk across the 3 groups, each group
//	recurses, and output switches braid the groups back together.
//
// Dive into the package docs of kway/ and analysis/ for contracts,
// complexity notes and the bijectivity argument.
//
//	go get github.com/katalvlaran/permnet/kway
package permnet
