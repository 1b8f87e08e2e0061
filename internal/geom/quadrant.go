package geom

// Quadrant is one of the four quarters of a region relative to its center.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight

	// Quadrants is the number of quadrants, for sizing child arrays.
	Quadrants = 4
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Resolve classifies point against center. Points on a dividing line go
// right (x >= center.X) and down (y >= center.Y). Insertion and lookup both
// depend on this being the only classification rule.
func Resolve(center, point Point) Quadrant {
	q := TopLeft
	if point.X >= center.X {
		q |= TopRight
	}
	if point.Y >= center.Y {
		q |= BottomLeft
	}
	return q
}
