package input

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry(zaptest.NewLogger(t))
	var got []string
	reg.Register(MouseDown, func(ev Event) { got = append(got, "click") })
	reg.Register(MouseDown, func(ev Event) { got = append(got, "spawn") })
	reg.Register(KeyDown, func(ev Event) { got = append(got, "key") })

	require.NoError(t, reg.Dispatch(Event{Kind: MouseDown}))
	require.Equal(t, []string{"click", "spawn"}, got)
	require.True(t, reg.Handles(KeyDown))
	require.False(t, reg.Handles(Wheel))

	err := reg.Dispatch(Event{Kind: Wheel})
	require.ErrorIs(t, err, ErrUnhandled)
	require.ErrorContains(t, err, "Wheel")
}

func TestRegistryRecoversPanic(t *testing.T) {
	reg := NewRegistry(zaptest.NewLogger(t))
	ran := false
	reg.Register(KeyDown, func(Event) { panic("bad handler") })
	reg.Register(KeyDown, func(Event) { ran = true })

	err := reg.Dispatch(Event{Kind: KeyDown})
	require.ErrorContains(t, err, "bad handler")
	require.True(t, ran)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "MouseMove", MouseMove.String())
	require.Equal(t, "Unknown(99)", Kind(99).String())
}
