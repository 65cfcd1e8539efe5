package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolforge/reuse/pkg/pool"
)

func TestSlices_ResetGuarantee(t *testing.T) {
	reg := pool.NewRegistry()

	ints, err := pool.Slices[int](reg, "ints")
	require.NoError(t, err)

	s := ints.Get()
	*s = append(*s, 5, 6)
	ints.Put(s)

	x := ints.Get()
	assert.Empty(t, *x, "recycled slice must come back empty")
	assert.GreaterOrEqual(t, cap(*x), 2, "recycled slice keeps its capacity")
	assert.Equal(t, 0, ints.Len())

	// Miss after the free-list drains: a fresh empty slice, no error.
	y := ints.Get()
	assert.NotSame(t, x, y)
	assert.Empty(t, *y)
	assert.Equal(t, 0, cap(*y), "created slices start with zero capacity")
}

func TestSlices_Idempotent(t *testing.T) {
	reg := pool.NewRegistry()

	first, err := pool.Slices[int](reg, "ints")
	require.NoError(t, err)
	second, err := pool.Slices[int](reg, "ints")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestSlices_ClearsElements(t *testing.T) {
	reg := pool.NewRegistry()

	ptrs, err := pool.Slices[*string](reg, "ptrs")
	require.NoError(t, err)

	v := "held"
	s := ptrs.Get()
	*s = append(*s, &v)
	ptrs.Put(s)

	// The put hook zeroes elements before truncating, so the free-list
	// does not pin what the slice used to reference.
	assert.Nil(t, (*s)[:1][0])
}

func TestMaps(t *testing.T) {
	reg := pool.NewRegistry()

	m, err := pool.Maps[string, int](reg, "scores")
	require.NoError(t, err)

	scores := m.Get()
	scores["a"] = 1
	scores["b"] = 2
	m.Put(scores)

	recycled := m.Get()
	assert.Empty(t, recycled)
	// Maps are reference types, so identity survives the round trip.
	recycled["c"] = 3
	assert.Equal(t, 3, scores["c"])
}

func TestNodes_NoResetHook(t *testing.T) {
	reg := pool.NewRegistry()

	nodes, err := pool.Nodes(reg, "nodes")
	require.NoError(t, err)

	n := nodes.Get()
	n.Label = "root"
	n.Children = append(n.Children, &pool.Node{Label: "child"})
	nodes.Put(n)

	// Node pools have no reset hook; recycled nodes come back as-is.
	recycled := nodes.Get()
	assert.Same(t, n, recycled)
	assert.Equal(t, "root", recycled.Label)
	assert.Len(t, recycled.Children, 1)
}
