// Package kway - experimental legacy group-stride strategy.
//
// EXPERIMENTAL — kept only so historical benchmark comparisons remain
// reproducible. This variant records one group-level switch per node and
// routes every element by permuting whole groups while preserving the
// element's within-group offset. That shortcut is only sound when every
// recursion level splits its region into equal groups: with uneven
// groups an element's offset can exceed its destination group's size and
// the realized vector stops being a bijection (e.g. n=3, k=2). The
// contiguous-chunk strategy in build.go/apply.go is the supported
// design; select this one only explicitly via BuildStrategy.
package kway

import "math/rand"

// buildGroupStride records the legacy network's switches for the node
// covering [start, start+size): a base switch when the region fits one
// switch, otherwise a single group-level switch plus recursion into
// every non-empty group.
func (t *SwitchTable) buildGroupStride(start, size, depth int, rng *rand.Rand) {
	if size <= 1 {
		return
	}
	k := t.spec.K
	if size <= k {
		t.switches[SwitchKey{Depth: depth, Start: start, Role: RoleBase}] = randPerm(size, rng)
		return
	}
	nonEmpty := nonEmptyGroups(size, k)
	t.switches[SwitchKey{Depth: depth, Start: start, Role: RoleGroup}] = randPerm(len(nonEmpty), rng)
	gs := start
	for _, g := range nonEmpty {
		t.buildGroupStride(gs, g, depth+1, rng)
		gs += g
	}
}

// routeStrideNode walks the legacy routing: find the group holding pos,
// map it through the node's group switch, keep the within-group offset,
// and recurse. Out-of-domain positions pass through unchanged — the
// historical behavior whose consequences the tests pin down.
func (t *SwitchTable) routeStrideNode(pos, start, size, depth int) int {
	if size <= 1 {
		return pos
	}
	k := t.spec.K

	if size <= k {
		perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleBase})
		local := pos - start
		if j := invIndex(perm, local); j >= 0 {
			return start + j
		}
		return pos // legacy pass-through for positions outside the switch domain
	}

	nonEmpty := nonEmptyGroups(size, k)
	local := pos - start

	// Locate the source group; positions beyond the region default to
	// group 0, exactly as the historical routing did.
	gi, off := 0, 0
	for idx, g := range nonEmpty {
		if local < off+g {
			gi = idx
			break
		}
		off += g
	}

	perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleGroup})
	ng := perm[gi]

	newOff := 0
	for idx := 0; idx < ng; idx++ {
		newOff += nonEmpty[idx]
	}
	within := local - prefixSum(nonEmpty, gi)

	return t.routeStrideNode(start+newOff+within, start+newOff, nonEmpty[ng], depth+1)
}

// applyGroupStride scatters data through the legacy routing, failing
// with ErrNotBijective as soon as two inputs collide on one slot or a
// routed slot falls outside [0, n).
func applyGroupStride[T any](t *SwitchTable, data []T) ([]T, error) {
	n := t.spec.N
	out := make([]T, n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		p := t.routeStrideNode(i, 0, n, 0)
		if p < 0 || p >= n || seen[p] {
			return nil, ErrNotBijective
		}
		seen[p] = true
		out[p] = data[i]
	}
	return out, nil
}

// nonEmptyGroups returns Partition(size, k) with zero-sized groups removed.
func nonEmptyGroups(size, k int) []int {
	all := Partition(size, k)
	out := make([]int, 0, k)
	for _, g := range all {
		if g > 0 {
			out = append(out, g)
		}
	}
	return out
}

// prefixSum returns the sum of groups[:i].
func prefixSum(groups []int, i int) int {
	s := 0
	for idx := 0; idx < i; idx++ {
		s += groups[idx]
	}
	return s
}
