package kway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permnet/kway"
)

// TestRoute_AgreesWithApply is the hard router/applier contract: routing
// input i must land exactly where applying the table puts it, i.e.
// Permutation(t)[Route(t, i)] == i for every i, shape and seed.
func TestRoute_AgreesWithApply(t *testing.T) {
	sizes := []int{1, 2, 3, 5, 7, 10, 11, 12, 16, 17, 26, 34, 57}
	radices := []int{2, 3, 5, 7}

	for _, n := range sizes {
		for _, k := range radices {
			spec, err := kway.NewNetworkSpec(n, k)
			require.NoError(t, err)
			for seed := int64(1); seed <= 10; seed++ {
				tab, err := kway.Build(spec, kway.NewRNG(seed))
				require.NoError(t, err)
				perm := kway.Permutation(tab)
				require.True(t, kway.CheckValidity(perm))

				for i := 0; i < n; i++ {
					slot, err := kway.Route(tab, i)
					require.NoError(t, err)
					require.GreaterOrEqual(t, slot, 0)
					require.Less(t, slot, n)
					assert.Equal(t, i, perm[slot],
						"n=%d k=%d seed=%d: input %d routed to slot %d holding %d", n, k, seed, i, slot, perm[slot])
				}
			}
		}
	}
}

// TestRoute_IsABijectionItself routes every index of one table and checks
// the slots are pairwise distinct (an independent read on bijectivity).
func TestRoute_IsABijectionItself(t *testing.T) {
	spec, err := kway.NewNetworkSpec(29, 3)
	require.NoError(t, err)
	tab, err := kway.Build(spec, kway.NewRNG(17))
	require.NoError(t, err)

	slots := make([]int, spec.N)
	for i := range slots {
		slots[i], err = kway.Route(tab, i)
		require.NoError(t, err)
	}
	assert.True(t, kway.CheckValidity(slots))
}

// TestRoute_IndexRange rejects out-of-domain queries with the sentinel.
func TestRoute_IndexRange(t *testing.T) {
	spec, err := kway.NewNetworkSpec(4, 2)
	require.NoError(t, err)
	tab, err := kway.Build(spec, kway.NewRNG(1))
	require.NoError(t, err)

	_, err = kway.Route(tab, -1)
	assert.ErrorIs(t, err, kway.ErrIndexRange)
	_, err = kway.Route(tab, 4)
	assert.ErrorIs(t, err, kway.ErrIndexRange)

	_, err = kway.Route(nil, 0)
	assert.ErrorIs(t, err, kway.ErrNilTable)

	// n=0: every index is out of range.
	empty, err := kway.NewNetworkSpec(0, 2)
	require.NoError(t, err)
	etab, err := kway.Build(empty, kway.NewRNG(1))
	require.NoError(t, err)
	_, err = kway.Route(etab, 0)
	assert.ErrorIs(t, err, kway.ErrIndexRange)
}

// TestRoute_SingleElement pins the n=1 degenerate network.
func TestRoute_SingleElement(t *testing.T) {
	spec, err := kway.NewNetworkSpec(1, 2)
	require.NoError(t, err)
	tab, err := kway.Build(spec, kway.NewRNG(9))
	require.NoError(t, err)

	slot, err := kway.Route(tab, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, slot)
}
