package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitySlots(t *testing.T) {
	e := New("node")

	// Absent capability and present no-op are distinguishable.
	require.False(t, e.Has(OnTick))
	require.False(t, e.Call(OnTick, Input{}))

	e.Set(OnTick, func(*Entity, Input) {})
	require.True(t, e.Has(OnTick))
	require.True(t, e.Call(OnTick, Input{}))

	calls := 0
	e.Set(Deleted, func(e *Entity, _ Input) {
		calls++
		e.MarkForRemoval()
	})
	require.True(t, e.Call(Deleted, Input{}))
	require.Equal(t, 1, calls)
	require.True(t, e.Removed())

	e.Set(OnTick, nil)
	assert.False(t, e.Has(OnTick))
}

func TestComponentKindString(t *testing.T) {
	assert.Equal(t, "LeftClicked", LeftClicked.String())
	assert.Equal(t, "OnTick", OnTick.String())
	assert.Equal(t, "Unknown(42)", ComponentKind(42).String())
}

func TestRegistryStampsKind(t *testing.T) {
	r := NewRegistry()
	r.Register("node", func() (*Entity, error) { return New(""), nil })
	r.Register("block", func() (*Entity, error) { return New(""), nil })

	f, ok := r.Factory("node")
	require.True(t, ok)
	e, err := f()
	require.NoError(t, err)
	require.Equal(t, "node", e.Kind)

	_, ok = r.Factory("missing")
	require.False(t, ok)

	require.Equal(t, []string{"block", "node"}, r.Kinds())
}
