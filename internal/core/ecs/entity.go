package ecs

import "github.com/l1jgo/quadscene/internal/geom"

// EntityID is assigned by the Store on append. IDs are not reused.
type EntityID uint64

// Entity is a positioned object with optional behavior slots. It is owned
// by exactly one Store; the spatial index only borrows references.
type Entity struct {
	ID       EntityID
	Kind     string
	Position geom.Rect
	Color    Color

	components [ComponentTotal]Component
	remove     bool
}

// New returns an entity with no position and no components.
func New(kind string) *Entity {
	return &Entity{Kind: kind, Color: White}
}

// Center is the single point the spatial index uses for this entity.
func (e *Entity) Center() geom.Point { return e.Position.Center() }

// Set installs c in slot k. Passing nil removes the capability.
func (e *Entity) Set(k ComponentKind, c Component) {
	e.components[k] = c
}

// Has reports whether slot k holds a component.
func (e *Entity) Has(k ComponentKind) bool {
	return e.components[k] != nil
}

// Call invokes slot k and reports whether it was present.
func (e *Entity) Call(k ComponentKind, in Input) bool {
	c := e.components[k]
	if c == nil {
		return false
	}
	c(e, in)
	return true
}

// MarkForRemoval flags the entity; the Store drops it on the next Compact.
func (e *Entity) MarkForRemoval() { e.remove = true }

// Removed reports whether the entity is flagged for removal.
func (e *Entity) Removed() bool { return e.remove }
