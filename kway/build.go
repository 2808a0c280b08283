// Package kway - recursive switch-table construction.
//
// Build performs a dry run of the network recursion, drawing one random
// permutation per local switch and recording it under its SwitchKey.
// No payload is touched; the resulting table fully determines one
// realized permutation and is immutable thereafter.
package kway

import "math/rand"

// Build constructs a switch table for spec using the supported
// contiguous-chunk strategy. rng may be nil, in which case the default
// deterministic stream is used (seed==0 policy of NewRNG).
//
// Two calls with the same spec and identically seeded RNGs produce
// identical tables; there is no determinism guarantee otherwise.
//
// Errors: ErrInvalidRadix, ErrInvalidSize.
//
// Complexity: O(n·log_k n) time, O(n) table memory.
func Build(spec NetworkSpec, rng *rand.Rand) (*SwitchTable, error) {
	return BuildStrategy(spec, StrategyContiguous, rng)
}

// BuildStrategy constructs a switch table for spec under an explicit
// Strategy. StrategyContiguous is the only supported construction;
// StrategyGroupStride is experimental and documented in stride.go.
//
// Errors: ErrInvalidRadix, ErrInvalidSize, ErrUnknownStrategy.
func BuildStrategy(spec NetworkSpec, strategy Strategy, rng *rand.Rand) (*SwitchTable, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}
	t := &SwitchTable{
		spec:     spec,
		strategy: strategy,
		switches: make(map[SwitchKey]Switch),
	}
	switch strategy {
	case StrategyContiguous:
		t.buildNode(0, spec.N, 0, r)
	case StrategyGroupStride:
		t.buildGroupStride(0, spec.N, 0, r)
	default:
		return nil, ErrUnknownStrategy
	}
	return t, nil
}

// buildNode records every switch of the node covering [start, start+size)
// at the given recursion depth, then recurses into its groups.
func (t *SwitchTable) buildNode(start, size, depth int, rng *rand.Rand) {
	if size <= 1 {
		return // trivial group: nothing to permute
	}
	k := t.spec.K

	// Base case: the whole region fits one switch.
	if size <= k {
		t.switches[SwitchKey{Depth: depth, Start: start, Role: RoleBase}] = randPerm(size, rng)
		return
	}

	// Input switches: one per contiguous chunk of length min(k, remaining).
	// The switch decides, per chunk-local position j, which group receives
	// the element (position j after permutation is destined for group j).
	for off := 0; off < size; off += k {
		m := min(k, size-off)
		t.switches[SwitchKey{Depth: depth, Start: start + off, Role: RoleInput}] = randPerm(m, rng)
	}

	groups := Partition(size, k)

	// Output switches: one per within-group slot position where more than
	// one group still holds an element. A single active group is an
	// unambiguous pass-through and records nothing.
	// Partition guarantees groups[0] is maximal.
	for pos := 0; pos < groups[0]; pos++ {
		active := 0
		for _, g := range groups {
			if g > pos {
				active++
			}
		}
		if active > 1 {
			t.switches[SwitchKey{Depth: depth, Start: start, Role: RoleOutput, Pos: pos}] = randPerm(active, rng)
		}
	}

	// Recurse into each non-empty group.
	gs := start
	for _, g := range groups {
		if g > 0 {
			t.buildNode(gs, g, depth+1, rng)
			gs += g
		}
	}
}
