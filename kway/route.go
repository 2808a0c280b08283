// Package kway - routing a single index through a switch table.
//
// Route walks the same recursion as Apply using only index arithmetic:
// no array is materialized. At each non-base node it locates the input
// chunk, consults that chunk's switch to find the destination group and
// within-group slot, recurses into the group, and on the way back folds
// the final within-group slot through the relevant output switch into
// the node's global layout.
package kway

// Route returns the output slot that receives input index i.
//
// Contract: Permutation(t)[Route(t, i)] == i for every i in [0, n) —
// routing and array application always agree (for StrategyGroupStride
// this holds by construction of both, even when the realized vector is
// not a bijection).
//
// Errors: ErrNilTable, ErrIndexRange.
//
// Panics on a missing switch, as Apply does.
//
// Complexity: O(k·log_k n) time, no allocation beyond Partition scratch.
func Route(t *SwitchTable, i int) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if i < 0 || i >= t.spec.N {
		return 0, ErrIndexRange
	}
	if t.strategy == StrategyGroupStride {
		return t.routeStrideNode(i, 0, t.spec.N, 0), nil
	}
	return t.routeNode(i, 0, t.spec.N, 0), nil
}

// routeNode returns the final absolute slot of the element currently at
// absolute position i, after the node covering [start, start+size) at
// the given depth has been fully applied.
func (t *SwitchTable) routeNode(i, start, size, depth int) int {
	if size <= 1 {
		return i
	}
	k := t.spec.K

	// Base case: output slot j satisfies perm[j] == local input position.
	if size <= k {
		perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleBase})
		return start + invIndex(perm, i-start)
	}

	// Distribute: chunk c at local offset c*k; the chunk switch sends
	// chunk-local position q to group j with perm[j] == q, and the
	// element's within-group slot is exactly c (slots fill in chunk order).
	local := i - start
	c, q := local/k, local%k
	in := t.mustSwitch(SwitchKey{Depth: depth, Start: start + c*k, Role: RoleInput})
	j := invIndex(in, q)

	groups := Partition(size, k)
	gstart := 0
	for x := 0; x < j; x++ {
		gstart += groups[x]
	}

	// Recurse: the group occupies [start+gstart, start+gstart+groups[j]),
	// and the element enters it at within-group slot c.
	abs := t.routeNode(start+gstart+c, start+gstart, groups[j], depth+1)
	s := abs - (start + gstart) // final within-group slot

	// Collect: slot-s elements are emitted after every slot < s, and the
	// element's rank within its slot chunk is the count of earlier groups
	// still active at slot s.
	offset := 0
	for pos := 0; pos < s; pos++ {
		for _, g := range groups {
			if g > pos {
				offset++
			}
		}
	}
	active, rank := 0, 0
	for idx, g := range groups {
		if g > s {
			active++
			if idx < j {
				rank++
			}
		}
	}
	if active == 1 {
		return start + offset // pass-through slot, no switch recorded
	}
	out := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleOutput, Pos: s})
	return start + offset + invIndex(out, rank)
}

// invIndex returns the position of value v within perm, or -1 when v is
// not present (possible only for out-of-domain legacy routing).
func invIndex(perm Switch, v int) int {
	for i, p := range perm {
		if p == v {
			return i
		}
	}
	return -1
}
