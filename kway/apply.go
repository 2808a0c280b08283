// Package kway - applying a switch table to concrete payload.
//
// Apply mirrors the Build recursion exactly: distribute each contiguous
// input chunk across the k groups, recurse into every non-empty group,
// then collect slot by slot through the output switches. Payload values
// are opaque; only switch settings determine the output ordering.
package kway

// Apply permutes data through the table and returns the permuted copy.
// data is not modified. The same table applied to any two slices of
// equal length relocates positions identically.
//
// Errors: ErrNilTable, ErrSizeMismatch (len(data) != n),
// ErrNotBijective (experimental group-stride tables only).
//
// Panics when a required switch is absent, which can only mean the
// table was not produced by Build for the matching spec — an
// internal-consistency fault, not a user error.
//
// Complexity: O(n·log_k n) time, O(n) working memory.
func Apply[T any](t *SwitchTable, data []T) ([]T, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if len(data) != t.spec.N {
		return nil, ErrSizeMismatch
	}
	if t.strategy == StrategyGroupStride {
		return applyGroupStride(t, data)
	}
	out := make([]T, len(data))
	copy(out, data)
	applyNode(t, out, 0, len(out), 0)
	return out, nil
}

// applyNode permutes a[start:start+size] in place at the given depth.
func applyNode[T any](t *SwitchTable, a []T, start, size, depth int) {
	if size <= 1 {
		return
	}
	k := t.spec.K
	region := a[start : start+size]

	// Base case: one switch permutes the whole region.
	if size <= k {
		perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleBase})
		buf := make([]T, size)
		for j, p := range perm {
			buf[j] = region[p]
		}
		copy(region, buf)
		return
	}

	// Distribute: each chunk's switch sends chunk[perm[j]] to group j.
	// Slots fill strictly in chunk order, so over all full chunks every
	// group gets one element per chunk and the partial tail contributes
	// to exactly the first size%k groups — matching Partition.
	groups := Partition(size, k)
	bufs := make([][]T, k)
	for j, g := range groups {
		bufs[j] = make([]T, 0, g)
	}
	for off := 0; off < size; off += k {
		m := min(k, size-off)
		perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start + off, Role: RoleInput})
		chunk := region[off : off+m]
		for j := 0; j < m; j++ {
			bufs[j] = append(bufs[j], chunk[perm[j]])
		}
	}

	// Recurse into each non-empty group in place.
	gs := start
	for j, g := range groups {
		if g == 0 {
			continue
		}
		copy(a[gs:gs+g], bufs[j])
		applyNode(t, a, gs, g, depth+1)
		copy(bufs[j], a[gs:gs+g])
		gs += g
	}

	// Collect: for each slot position, gather the element every active
	// group holds there (in group order) and braid the gathered chunk
	// through the slot's output switch. A single-element chunk passes
	// through unswitched, matching the no-switch case at build time.
	out := make([]T, 0, size)
	chunk := make([]T, 0, k)
	for pos := 0; ; pos++ {
		chunk = chunk[:0]
		for j := range bufs {
			if pos < len(bufs[j]) {
				chunk = append(chunk, bufs[j][pos])
			}
		}
		if len(chunk) == 0 {
			break
		}
		if len(chunk) == 1 {
			out = append(out, chunk[0])
			continue
		}
		perm := t.mustSwitch(SwitchKey{Depth: depth, Start: start, Role: RoleOutput, Pos: pos})
		for _, p := range perm {
			out = append(out, chunk[p])
		}
	}
	copy(region, out)
}

// Permutation returns the permutation vector the table realizes: the
// identity array after Apply, i.e. Permutation(t)[slot] is the input
// index delivered to that output slot. Derived on demand — the table
// itself remains the single source of truth. Returns nil for a nil table.
//
// For StrategyGroupStride tables the vector is assembled by routing and
// may be invalid (holes are carried as -1); CheckValidity reports that.
//
// Complexity: O(n·log_k n).
func Permutation(t *SwitchTable) []int {
	if t == nil {
		return nil
	}
	n := t.spec.N
	if t.strategy == StrategyGroupStride {
		out := make([]int, n)
		for i := range out {
			out[i] = -1
		}
		for i := 0; i < n; i++ {
			if p := t.routeStrideNode(i, 0, n, 0); p >= 0 && p < n {
				out[p] = i
			}
		}
		return out
	}
	out, _ := Apply(t, identity(n)) // cannot fail: identity has length n
	return out
}

// CheckValidity reports whether perm is a bijection on 0..len(perm)-1.
//
// Complexity: O(n) time, O(n) space.
func CheckValidity(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// identity returns [0, 1, …, n-1].
func identity(n int) []int {
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}
	return id
}
