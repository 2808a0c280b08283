// Package kway builds and applies recursive radix-k permutation
// networks: fixed public topologies of small random switches whose
// composition realizes a pseudo-random permutation of n elements.
//
// What:
//
//   - NetworkSpec fixes the shape (n elements, radix k ≥ 2); invalid
//     shapes are rejected at construction.
//   - Build draws every local switch from an injected *rand.Rand and
//     returns an immutable SwitchTable — the single source of truth for
//     one realized permutation.
//   - Apply permutes any slice of length n through a table; the same
//     table always realizes the same permutation vector, regardless of
//     payload.
//   - Permutation applies a table to the identity, Route answers the
//     final output slot of a single input index without materializing
//     anything; the two always agree.
//   - Partition exposes the balanced group-sizing policy used at every
//     recursion level.
//
// Why:
//
//   - Oblivious shuffling: the wiring is public, only switch settings
//     are secret, so no data-dependent comparison is ever performed.
//   - Privacy-preserving joins: row indices are relocated through the
//     network before joined output is emitted.
//
// Complexity:
//
//   - Build:       O(n·log_k n) time, O(n) switch-table memory.
//   - Apply:       O(n·log_k n) time, O(n) working memory.
//   - Route:       O(k·log_k n) time, O(log_k n) stack.
//   - Partition:   O(k).
//
// Correctness:
//
//	Bijectivity holds for arbitrary n and k by induction on the
//	recursion: the base case is an explicit permutation; distributing
//	contiguous chunks sends each chunk bijectively onto distinct
//	(group, slot) pairs, groups recurse independently, and collecting
//	slot by slot permutes exactly the groups still holding an element.
//	A composition of bijections follows. Uniformity over all n!
//	outcomes is deliberately NOT guaranteed — only bijectivity is a
//	hard invariant; use the analysis package to measure uniformity.
//
// Strategies:
//
//   - StrategyContiguous (default): the contiguous-chunk
//     distribute/recurse/collect network described above. Valid for
//     every n ≥ 0 and k ≥ 2.
//   - StrategyGroupStride: a legacy position-preserving group-shuffle
//     network kept only for historical benchmark comparison. Known to
//     break bijectivity whenever a recursion level splits unevenly
//     (e.g. n=3, k=2). Never the default; see stride.go.
//
// Errors:
//
//   - ErrInvalidRadix: k < 2.
//   - ErrInvalidSize: n < 0.
//   - ErrUnknownStrategy: Strategy value not implemented here.
//   - ErrSizeMismatch: Apply payload length differs from n.
//   - ErrNilTable: nil table passed to Apply or Route.
//   - ErrIndexRange: Route index outside [0, n).
//   - ErrNotBijective: group-stride settings failed to scatter injectively.
//
// A missing switch during Apply or Route is not an error value: it can
// only mean the table was not produced by Build for the same spec, and
// the package fails fast with a panic rather than silently degrading.
package kway
