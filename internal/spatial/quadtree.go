package spatial

import (
	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/geom"
)

// Tree is a region quadtree over entity centers. Each leaf holds at most
// one entity; a second entity landing in an occupied leaf splits it into
// four quarters. The tree never owns entities: it flags them on Remove and
// leaves freeing to the entity store.
// Not safe for concurrent use; the game loop goroutine owns it.
type Tree struct {
	root *Node
	size int
}

// New creates a tree whose root is a single empty leaf covering bounds.
func New(bounds geom.Rect) *Tree {
	return &Tree{root: newNode(nil, bounds)}
}

func (t *Tree) Root() *Node { return t.root }

// Len returns the number of indexed entities.
func (t *Tree) Len() int { return t.size }

func (t *Tree) Bounds() geom.Rect {
	if t.root == nil {
		return geom.Rect{}
	}
	return t.root.bounds
}

// Insert indexes e by the center of its position. It returns false when the
// center is outside the tree, falls in a unit lost to integer halving, or
// cannot be separated from an existing entity before regions run out.
func (t *Tree) Insert(e *ecs.Entity) bool {
	if t.root == nil || e == nil {
		return false
	}
	if !t.root.insert(e) {
		return false
	}
	t.size++
	return true
}

// FindEntityAt follows quadrant resolution from the root and returns the
// leaf on that path if it is occupied.
func (t *Tree) FindEntityAt(p geom.Point) *Node {
	n := t.root
	if n == nil || !n.bounds.ContainsPoint(p) {
		return nil
	}
	for n.children != nil {
		n = n.children[geom.Resolve(n.bounds.Center(), p)]
	}
	if n.occupant == nil {
		return nil
	}
	return n
}

// FindNode runs Node.FindNode from the root.
func (t *Tree) FindNode(view geom.Rect) *Node {
	return t.root.FindNode(view)
}

// Remove flags the entity found at p for removal and takes it out of the
// tree, merging ancestors that are left with a single occupant. It returns
// false when nothing occupies p.
func (t *Tree) Remove(p geom.Point) bool {
	found := t.FindEntityAt(p)
	if found == nil {
		return false
	}
	found.occupant.MarkForRemoval()
	t.vacate(found)
	return true
}

// Detach takes e out of the tree without flagging it. It returns false when
// e is not the entity indexed at its current center.
func (t *Tree) Detach(e *ecs.Entity) bool {
	return t.detachAt(e, e.Center())
}

// Move reindexes e after its position changed; from is its center at the
// time it was inserted. It returns false if e ends up outside the tree.
func (t *Tree) Move(e *ecs.Entity, from geom.Point) bool {
	t.detachAt(e, from)
	return t.Insert(e)
}

func (t *Tree) detachAt(e *ecs.Entity, at geom.Point) bool {
	found := t.FindEntityAt(at)
	if found == nil || found.occupant != e {
		return false
	}
	t.vacate(found)
	return true
}

// vacate clears an occupied leaf and merges upward while each ancestor is
// left with at most one occupant below it.
func (t *Tree) vacate(leaf *Node) {
	leaf.occupant = nil
	t.size--
	for p := leaf.parent; p != nil && p.merge(); p = p.parent {
	}
}

// Walk visits every node, children before parents.
func (t *Tree) Walk(fn func(*Node)) {
	t.root.Walk(fn)
}

// Query returns the entities whose centers lie inside view, in quadrant
// order.
func (t *Tree) Query(view geom.Rect) []*ecs.Entity {
	if t.root == nil || view.Empty() {
		return nil
	}
	return t.root.query(view, nil)
}

// Free drops every node. The tree rejects inserts afterwards.
func (t *Tree) Free() {
	if t.root != nil {
		t.root.release()
	}
	t.root = nil
	t.size = 0
}
