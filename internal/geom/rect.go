package geom

import "fmt"

// Point is an integer position in world units.
type Point struct {
	X int
	Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle: origin (X, Y) and size (W, H).
type Rect struct {
	X int
	Y int
	W int
	H int
}

func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center uses integer division, so odd sizes round toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ContainsPoint is half-open: the right and bottom edges are outside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Encloses reports whether inner lies entirely within r. Edges may touch.
func (r Rect) Encloses(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.X+inner.W <= r.X+r.W &&
		inner.Y+inner.H <= r.Y+r.H
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenteredAt returns a rectangle of the same size whose center is p.
func (r Rect) CenteredAt(p Point) Rect {
	return Rect{X: p.X - r.W/2, Y: p.Y - r.H/2, W: r.W, H: r.H}
}

// Quarter returns the child region for quadrant q. Width and height are
// halved with integer division; the remainder unit is dropped.
func (r Rect) Quarter(q Quadrant) Rect {
	w, h := r.W/2, r.H/2
	switch q {
	case TopRight:
		return Rect{X: r.X + w, Y: r.Y, W: w, H: h}
	case BottomLeft:
		return Rect{X: r.X, Y: r.Y + h, W: w, H: h}
	case BottomRight:
		return Rect{X: r.X + w, Y: r.Y + h, W: w, H: h}
	default:
		return Rect{X: r.X, Y: r.Y, W: w, H: h}
	}
}

// Divisible reports whether all four quarters would still have area.
func (r Rect) Divisible() bool {
	return r.W/2 > 0 && r.H/2 > 0
}
