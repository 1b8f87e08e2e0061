package world

import (
	"math"

	"github.com/l1jgo/quadscene/internal/geom"
)

// Camera is the part of the logical view that is drawn. It zooms in fixed
// steps and never leaves the view.
type Camera struct {
	rect  geom.Rect
	view  geom.Rect
	ratio float64
	minW  int
	minH  int
}

// NewCamera starts showing the whole view.
func NewCamera(view geom.Rect, ratio float64, minW, minH int) *Camera {
	return &Camera{rect: view, view: view, ratio: ratio, minW: minW, minH: minH}
}

func (c *Camera) Rect() geom.Rect { return c.rect }

// Reset shows the whole view again.
func (c *Camera) Reset() { c.rect = c.view }

func (c *Camera) step(size int, div float64) int {
	return int(math.Round(float64(size) * (c.ratio / div)))
}

// ZoomIn shrinks the camera by one step. It reports false and leaves the
// camera alone when the result would drop below the minimum size.
func (c *Camera) ZoomIn() bool {
	next := geom.Rect{
		X: c.rect.X + c.step(c.rect.W, 4),
		Y: c.rect.Y + c.step(c.rect.H, 4),
		W: c.rect.W - c.step(c.rect.W, 2),
		H: c.rect.H - c.step(c.rect.H, 2),
	}
	if next.W < c.minW || next.H < c.minH {
		return false
	}
	next.X = min(next.X, c.view.W-c.minW)
	next.Y = min(next.Y, c.view.H-c.minH)
	c.rect = next
	return true
}

// ZoomOut grows the camera by one step, clamped to the view.
func (c *Camera) ZoomOut() bool {
	next := geom.Rect{
		X: max(c.rect.X-c.step(c.rect.W, 4), c.view.X),
		Y: max(c.rect.Y-c.step(c.rect.H, 4), c.view.Y),
		W: min(c.rect.W+c.step(c.rect.W, 2), c.view.W),
		H: min(c.rect.H+c.step(c.rect.H, 2), c.view.H),
	}
	if next == c.rect {
		return false
	}
	c.rect = next
	return true
}
