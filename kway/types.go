// Package kway defines core types, options, and sentinel errors
// for the kway subpackage of github.com/katalvlaran/permnet.
package kway

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction, application, and routing.
var (
	// ErrInvalidRadix indicates a radix k < 2.
	ErrInvalidRadix = errors.New("kway: invalid radix")
	// ErrInvalidSize indicates a negative element count n.
	ErrInvalidSize = errors.New("kway: invalid size")
	// ErrUnknownStrategy indicates a Strategy value this package does not implement.
	ErrUnknownStrategy = errors.New("kway: unknown strategy")
	// ErrSizeMismatch indicates the slice passed to Apply does not have length n.
	ErrSizeMismatch = errors.New("kway: size mismatch")
	// ErrNilTable indicates a nil *SwitchTable where a built table is required.
	ErrNilTable = errors.New("kway: nil switch table")
	// ErrIndexRange indicates a Route query outside [0, n).
	ErrIndexRange = errors.New("kway: index out of range")
	// ErrNotBijective indicates group-stride switch settings that do not
	// realize a bijection (the documented failure mode of that strategy).
	ErrNotBijective = errors.New("kway: switch settings do not realize a bijection")
)

// Strategy selects which network construction the table encodes.
type Strategy uint8

const (
	// StrategyContiguous is the supported default: contiguous-chunk
	// distribute/recurse/collect, valid for every n ≥ 0 and k ≥ 2.
	StrategyContiguous Strategy = iota
	// StrategyGroupStride is the legacy experimental variant preserved for
	// historical benchmark comparison only. It permutes whole groups while
	// keeping each element's within-group offset, and fails bijectivity
	// whenever a recursion level splits unevenly. Never use it as a default.
	StrategyGroupStride
)

// Role distinguishes the kinds of local switches a network records.
type Role uint8

const (
	// RoleBase is the single switch of a node with size ≤ k.
	RoleBase Role = iota
	// RoleInput is a chunk switch deciding the destination group of each
	// element of one contiguous input chunk.
	RoleInput
	// RoleOutput is a slot switch braiding the groups that still hold an
	// element at one within-group position.
	RoleOutput
	// RoleGroup is the group-level switch of the experimental
	// StrategyGroupStride network.
	RoleGroup
)

// SwitchKey identifies one local switch within a SwitchTable.
// Depth is the recursion depth of the owning node. Start is the node's
// region start, except for RoleInput where it is the chunk start.
// Pos is meaningful only for RoleOutput (the within-group slot position).
type SwitchKey struct {
	Depth int
	Start int
	Role  Role
	Pos   int
}

// Switch is one local permutation: a bijection on 0..len(Switch)-1.
type Switch []int

// NetworkSpec fixes the immutable shape of a network: n elements
// permuted through radix-k switches.
type NetworkSpec struct {
	N int // number of elements, n ≥ 0
	K int // radix, k ≥ 2
}

// NewNetworkSpec validates and returns a NetworkSpec.
//
// Errors: ErrInvalidRadix (k < 2), ErrInvalidSize (n < 0).
func NewNetworkSpec(n, k int) (NetworkSpec, error) {
	s := NetworkSpec{N: n, K: k}
	if err := s.Validate(); err != nil {
		return NetworkSpec{}, err
	}
	return s, nil
}

// Validate re-checks the spec invariants; Build calls it so that
// hand-constructed literals obey the same rules as NewNetworkSpec.
func (s NetworkSpec) Validate() error {
	if s.K < 2 {
		return ErrInvalidRadix
	}
	if s.N < 0 {
		return ErrInvalidSize
	}
	return nil
}

// SwitchTable is the complete set of switch settings realized by one
// Build call. It is immutable after Build: the same table may be applied
// to arbitrarily many slices, always realizing the same permutation
// vector, and independent tables share no state.
type SwitchTable struct {
	spec     NetworkSpec
	strategy Strategy
	switches map[SwitchKey]Switch
}

// Spec returns the network shape the table was built for.
func (t *SwitchTable) Spec() NetworkSpec { return t.spec }

// Strategy returns the construction the table encodes.
func (t *SwitchTable) Strategy() Strategy { return t.strategy }

// NumSwitches returns the number of recorded local switches.
func (t *SwitchTable) NumSwitches() int { return len(t.switches) }

// mustSwitch returns the switch for key, panicking when it is absent.
// Absence can only mean the table was not produced by Build for the
// matching spec; substituting an identity switch here (as older code
// did) silently breaks the bijectivity guarantee downstream, so the
// package fails fast instead.
func (t *SwitchTable) mustSwitch(key SwitchKey) Switch {
	sw, ok := t.switches[key]
	if !ok {
		panic(fmt.Sprintf("kway: missing switch (depth=%d start=%d role=%d pos=%d); table does not match its network",
			key.Depth, key.Start, key.Role, key.Pos))
	}
	return sw
}
