package spatial

import (
	"errors"
	"fmt"

	"github.com/l1jgo/quadscene/internal/geom"
)

// ErrInvariant is wrapped by every error Validate returns.
var ErrInvariant = errors.New("quadtree invariant violated")

// Stats summarises the shape of the tree for the debug overlay.
type Stats struct {
	Nodes     int
	Leaves    int
	Branches  int
	Occupants int
	Depth     int
}

func (t *Tree) Stats() Stats {
	var s Stats
	if t.root == nil {
		return s
	}
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		s.Nodes++
		if depth > s.Depth {
			s.Depth = depth
		}
		if n.children == nil {
			s.Leaves++
			if n.occupant != nil {
				s.Occupants++
			}
			return
		}
		s.Branches++
		for _, c := range n.children {
			visit(c, depth+1)
		}
	}
	visit(t.root, 0)
	return s
}

// Validate checks the structural invariants: branches have four children
// with the quartered regions and no occupant, every branch holds at least
// two occupants below it, parent links point back, regions have area and
// the size counter matches. A violation is a programming error.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	count, err := validate(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d occupants", ErrInvariant, t.size, count)
	}
	return nil
}

func validate(n *Node) (int, error) {
	if n.bounds.Empty() {
		return 0, fmt.Errorf("%w: node %s has no area", ErrInvariant, n.bounds)
	}
	if n.children == nil {
		if n.occupant != nil {
			return 1, nil
		}
		return 0, nil
	}
	if n.occupant != nil {
		return 0, fmt.Errorf("%w: branch %s holds entity %d", ErrInvariant, n.bounds, n.occupant.ID)
	}

	total := 0
	for q := geom.TopLeft; q < geom.Quadrants; q++ {
		c := n.children[q]
		if c == nil {
			return 0, fmt.Errorf("%w: branch %s missing %s child", ErrInvariant, n.bounds, q)
		}
		if c.parent != n {
			return 0, fmt.Errorf("%w: %s child of %s has wrong parent", ErrInvariant, q, n.bounds)
		}
		if c.bounds != n.bounds.Quarter(q) {
			return 0, fmt.Errorf("%w: %s child of %s has region %s", ErrInvariant, q, n.bounds, c.bounds)
		}
		count, err := validate(c)
		if err != nil {
			return 0, err
		}
		total += count
	}
	if total < 2 {
		return 0, fmt.Errorf("%w: branch %s holds %d occupants", ErrInvariant, n.bounds, total)
	}
	return total, nil
}
