package ecs

import (
	"errors"
	"fmt"

	"github.com/l1jgo/quadscene/internal/geom"
)

// ErrFactory wraps every failure reported by an entity factory.
var ErrFactory = errors.New("entity factory failed")

// Factory builds a new entity. The Store sets its position and ID.
type Factory func() (*Entity, error)

// Store owns entity memory. Entities live in insertion order in a backing
// array that doubles when full; flagged entities are dropped by Compact,
// which is the only place entities leave the Store.
// Not safe for concurrent use; the game loop goroutine owns it.
type Store struct {
	slots  []*Entity // len(slots) is the capacity
	live   int
	nextID EntityID
}

// NewStore pre-allocates room for capacity entities.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		slots: make([]*Entity, capacity),
	}
}

// Len returns the live count.
func (s *Store) Len() int { return s.live }

// Cap returns the size of the backing array.
func (s *Store) Cap() int { return len(s.slots) }

// At returns the i-th live entity in insertion order.
func (s *Store) At(i int) *Entity {
	if i < 0 || i >= s.live {
		return nil
	}
	return s.slots[i]
}

// Append builds an entity with factory, places it at pos and appends it.
// The returned reference stays valid until a Compact drops the entity.
func (s *Store) Append(factory Factory, pos geom.Rect) (*Entity, error) {
	e, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFactory, err)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: no entity returned", ErrFactory)
	}

	if s.live == len(s.slots) {
		s.grow()
	}

	s.nextID++
	e.ID = s.nextID
	e.Position = pos
	s.slots[s.live] = e
	s.live++
	return e, nil
}

func (s *Store) grow() {
	capacity := len(s.slots) * 2
	if capacity == 0 {
		capacity = 1
	}
	slots := make([]*Entity, capacity)
	copy(slots, s.slots[:s.live])
	s.slots = slots
}

// Compact drops every entity flagged for removal and shifts the survivors
// left, keeping their relative order. It returns how many were dropped.
// Call it once per tick, after every component of that tick has run.
func (s *Store) Compact() int {
	kept := 0
	for i := 0; i < s.live; i++ {
		e := s.slots[i]
		if e.remove {
			continue
		}
		s.slots[kept] = e
		kept++
	}
	dropped := s.live - kept
	for i := kept; i < s.live; i++ {
		s.slots[i] = nil
	}
	s.live = kept
	return dropped
}

// Teardown drops every entity and the backing array.
func (s *Store) Teardown() {
	for i := 0; i < s.live; i++ {
		s.slots[i] = nil
	}
	s.slots = nil
	s.live = 0
}

// Each calls fn for every live entity in insertion order. Entities appended
// by fn are not visited.
func (s *Store) Each(fn func(*Entity)) {
	n := s.live
	for i := 0; i < n; i++ {
		fn(s.slots[i])
	}
}
