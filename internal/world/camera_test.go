package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l1jgo/quadscene/internal/geom"
)

func TestCameraZoomStep(t *testing.T) {
	c := NewCamera(view, 0.05, 160, 80)
	require.Equal(t, view, c.Rect())

	require.True(t, c.ZoomIn())
	require.Equal(t, geom.R(16, 9, 1248, 702), c.Rect())

	require.True(t, c.ZoomOut())
	require.Equal(t, geom.R(0, 0, 1279, 720), c.Rect())
	require.True(t, c.ZoomOut())
	require.Equal(t, view, c.Rect())
	require.False(t, c.ZoomOut())
}

func TestCameraZoomInStopsAtMinimum(t *testing.T) {
	c := NewCamera(view, 0.05, 160, 80)
	steps := 0
	for c.ZoomIn() {
		steps++
		require.Less(t, steps, 1000)
	}
	r := c.Rect()
	require.GreaterOrEqual(t, r.W, 160)
	require.GreaterOrEqual(t, r.H, 80)
	require.LessOrEqual(t, r.X, view.W-160)
	require.LessOrEqual(t, r.Y, view.H-80)
	require.True(t, view.Encloses(r))

	before := c.Rect()
	require.False(t, c.ZoomIn())
	require.Equal(t, before, c.Rect())

	c.Reset()
	require.Equal(t, view, c.Rect())
}
