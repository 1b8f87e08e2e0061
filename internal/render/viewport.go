package render

import "github.com/l1jgo/quadscene/internal/geom"

// Viewport maps the camera rectangle of the world onto a grid of terminal
// cells. Each axis is scaled independently.
type Viewport struct {
	Camera geom.Rect
	Cols   int
	Rows   int
}

// Valid reports whether the mapping has area on both sides.
func (v Viewport) Valid() bool {
	return !v.Camera.Empty() && v.Cols > 0 && v.Rows > 0
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(cell geom.Point) geom.Point {
	if !v.Valid() {
		return geom.Point{}
	}
	return geom.Point{
		X: v.Camera.X + floorDiv((2*cell.X+1)*v.Camera.W, 2*v.Cols),
		Y: v.Camera.Y + floorDiv((2*cell.Y+1)*v.Camera.H, 2*v.Rows),
	}
}

// ToCell returns the cell a world point falls in. The result may lie off
// screen.
func (v Viewport) ToCell(p geom.Point) geom.Point {
	if !v.Valid() {
		return geom.Point{}
	}
	return geom.Point{
		X: floorDiv((p.X-v.Camera.X)*v.Cols, v.Camera.W),
		Y: floorDiv((p.Y-v.Camera.Y)*v.Rows, v.Camera.H),
	}
}

// Cells returns the cells a world rectangle touches, clipped to the
// screen. A rectangle smaller than a cell still covers one.
func (v Viewport) Cells(r geom.Rect) geom.Rect {
	if !v.Valid() || r.Empty() {
		return geom.Rect{}
	}
	x0 := floorDiv((r.X-v.Camera.X)*v.Cols, v.Camera.W)
	y0 := floorDiv((r.Y-v.Camera.Y)*v.Rows, v.Camera.H)
	x1 := ceilDiv((r.X+r.W-v.Camera.X)*v.Cols, v.Camera.W)
	y1 := ceilDiv((r.Y+r.H-v.Camera.Y)*v.Rows, v.Camera.H)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.Cols), min(y1, v.Rows)
	if x1 <= x0 || y1 <= y0 {
		return geom.Rect{}
	}
	return geom.R(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
