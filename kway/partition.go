// Package kway - balanced group sizing shared by every recursion level.
package kway

// Partition splits size elements into k contiguous groups as evenly as
// possible: the first size%k groups receive ⌈size/k⌉ elements, the rest
// ⌊size/k⌋ (possibly 0 when size < k). The returned sizes always sum to
// size, and the first group is never smaller than any later one.
//
// Deterministic; no randomness is involved.
//
// Contract: k ≥ 1 — enforced upstream by NetworkSpec validation; a
// violation here is a programmer error and panics.
//
// Complexity: O(k) time, O(k) space.
func Partition(size, k int) []int {
	if k < 1 {
		panic("kway: Partition requires k >= 1")
	}
	base, rem := size/k, size%k
	groups := make([]int, k)
	for i := range groups {
		if i < rem {
			groups[i] = base + 1
		} else {
			groups[i] = base
		}
	}
	return groups
}
