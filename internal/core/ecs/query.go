package ecs

import "github.com/l1jgo/quadscene/internal/geom"

// EachWith calls fn for every live entity that has component k and is not
// flagged for removal.
func (s *Store) EachWith(k ComponentKind, fn func(*Entity)) {
	s.Each(func(e *Entity) {
		if e.remove || !e.Has(k) {
			return
		}
		fn(e)
	})
}

// FirstAt returns the first entity, in insertion order, that has component
// k and whose rectangle contains p. It is the linear fallback for callers
// that do not go through the spatial index.
func (s *Store) FirstAt(k ComponentKind, p geom.Point) *Entity {
	for i := 0; i < s.live; i++ {
		e := s.slots[i]
		if e.remove || !e.Has(k) {
			continue
		}
		if e.Position.ContainsPoint(p) {
			return e
		}
	}
	return nil
}
