package spatial

import (
	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/geom"
)

// NodeState is the position of a node in the leaf/branch state machine.
type NodeState int

const (
	LeafEmpty NodeState = iota
	LeafOccupied
	Branch
)

func (s NodeState) String() string {
	switch s {
	case LeafEmpty:
		return "LeafEmpty"
	case LeafOccupied:
		return "LeafOccupied"
	case Branch:
		return "Branch"
	default:
		return "Unknown"
	}
}

// Node is one region of the tree. A node has either no children (leaf) or
// all four (branch); only leaves hold an occupant. The node owns its
// children, while parent is a back-pointer used when merging and the
// occupant is borrowed from the entity store.
type Node struct {
	bounds   geom.Rect
	parent   *Node
	children *[geom.Quadrants]*Node
	occupant *ecs.Entity
}

func newNode(parent *Node, bounds geom.Rect) *Node {
	return &Node{bounds: bounds, parent: parent}
}

func (n *Node) Bounds() geom.Rect     { return n.bounds }
func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) Occupant() *ecs.Entity { return n.occupant }
func (n *Node) IsLeaf() bool          { return n.children == nil }
func (n *Node) Occupied() bool        { return n.children == nil && n.occupant != nil }

// Child returns the child in quadrant q, or nil for a leaf.
func (n *Node) Child(q geom.Quadrant) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[q]
}

func (n *Node) State() NodeState {
	switch {
	case n.children != nil:
		return Branch
	case n.occupant != nil:
		return LeafOccupied
	default:
		return LeafEmpty
	}
}

// subdivide turns an occupied leaf into a branch and pushes the occupant
// down into the quadrant its center resolves to.
func (n *Node) subdivide() {
	var children [geom.Quadrants]*Node
	for q := geom.TopLeft; q < geom.Quadrants; q++ {
		children[q] = newNode(n, n.bounds.Quarter(q))
	}
	n.children = &children

	if n.occupant != nil {
		q := geom.Resolve(n.bounds.Center(), n.occupant.Center())
		children[q].occupant = n.occupant
		n.occupant = nil
	}
}

// merge collapses a branch whose children are all leaves and hold at most
// one occupant between them. The survivor, if any, moves up into n.
func (n *Node) merge() bool {
	if n.children == nil {
		return false
	}

	var survivor *ecs.Entity
	for _, c := range n.children {
		if c.children != nil {
			return false
		}
		if c.occupant == nil {
			continue
		}
		if survivor != nil {
			return false
		}
		survivor = c.occupant
	}

	for _, c := range n.children {
		c.release()
	}
	n.children = nil
	n.occupant = survivor
	return true
}

// release drops the subtree rooted at n.
func (n *Node) release() {
	if n.children != nil {
		for _, c := range n.children {
			c.release()
		}
	}
	n.children = nil
	n.parent = nil
	n.occupant = nil
}

func (n *Node) insert(e *ecs.Entity) bool {
	c := e.Center()
	if !n.bounds.ContainsPoint(c) {
		return false
	}

	if n.children == nil {
		if n.occupant == nil {
			n.occupant = e
			return true
		}
		if !n.bounds.Divisible() {
			return false
		}
		n.subdivide()
	}

	if n.children[geom.Resolve(n.bounds.Center(), c)].insert(e) {
		return true
	}
	// Undo a subdivision that led nowhere.
	n.merge()
	return false
}

// FindNode searches depth-first from n for the first node whose region is
// fully enclosed by view and returns that node's parent, the enclosing
// ancestor renderers start from. A root that is itself enclosed is
// returned as is, having no parent.
func (n *Node) FindNode(view geom.Rect) *Node {
	if n == nil {
		return nil
	}
	if view.Encloses(n.bounds) {
		if n.parent == nil {
			return n
		}
		return n.parent
	}
	if n.children == nil {
		return nil
	}
	for _, c := range n.children {
		if found := c.FindNode(view); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits the subtree rooted at n, children before their parent, so
// overlays are drawn leaves first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	if n.children != nil {
		for _, c := range n.children {
			c.Walk(fn)
		}
	}
	fn(n)
}

func (n *Node) query(view geom.Rect, out []*ecs.Entity) []*ecs.Entity {
	if n.children == nil {
		if n.occupant != nil && view.ContainsPoint(n.occupant.Center()) {
			out = append(out, n.occupant)
		}
		return out
	}

	// Prune by the same half-planes Resolve routes points through.
	c := n.bounds.Center()
	left := view.X < c.X
	right := view.X+view.W > c.X
	top := view.Y < c.Y
	bottom := view.Y+view.H > c.Y

	if top && left {
		out = n.children[geom.TopLeft].query(view, out)
	}
	if top && right {
		out = n.children[geom.TopRight].query(view, out)
	}
	if bottom && left {
		out = n.children[geom.BottomLeft].query(view, out)
	}
	if bottom && right {
		out = n.children[geom.BottomRight].query(view, out)
	}
	return out
}
