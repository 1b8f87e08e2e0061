package world

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/core/event"
	"github.com/l1jgo/quadscene/internal/data"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/spatial"
)

// ErrOutOfBounds is returned by Spawn when the index rejects the entity.
var ErrOutOfBounds = errors.New("entity rejected by spatial index")

// Status of the scene loop.
type Status int

const (
	StatusRunning Status = iota
	StatusClosing
)

// Scene ties the entity store to the spatial index and carries the view
// state input handlers and systems share.
// Not safe for concurrent use; the game loop goroutine owns it.
type Scene struct {
	Store  *ecs.Store
	Tree   *spatial.Tree
	Bus    *event.Bus
	Camera *Camera

	// Pointer is the last known pointer position in world units.
	Pointer geom.Point
	// Held is the entity being dragged, if any.
	Held *ecs.Entity

	view   geom.Rect
	debug  bool
	status Status
	log    *zap.Logger
}

// NewScene builds an empty scene covering view.
func NewScene(view geom.Rect, capacity int, camera *Camera, bus *event.Bus, log *zap.Logger) *Scene {
	return &Scene{
		Store:  ecs.NewStore(capacity),
		Tree:   spatial.New(view),
		Bus:    bus,
		Camera: camera,
		view:   view,
		log:    log,
	}
}

func (s *Scene) View() geom.Rect { return s.view }

func (s *Scene) Debug() bool { return s.debug }

// ToggleDebug flips the debug overlay and returns the new setting.
func (s *Scene) ToggleDebug() bool {
	s.debug = !s.debug
	return s.debug
}

func (s *Scene) Status() Status { return s.status }
func (s *Scene) Close()         { s.status = StatusClosing }
func (s *Scene) Closing() bool  { return s.status == StatusClosing }

// Spawn appends a new entity at pos and indexes it. An entity the index
// refuses stays in the store flagged for removal until the next compaction.
func (s *Scene) Spawn(factory ecs.Factory, pos geom.Rect) (*ecs.Entity, error) {
	e, err := s.Store.Append(factory, pos)
	if err != nil {
		return nil, fmt.Errorf("spawn at %s: %w", pos, err)
	}
	if !s.Tree.Insert(e) {
		e.MarkForRemoval()
		event.Emit(s.Bus, event.SpawnRejected{Kind: e.Kind, At: e.Center()})
		return nil, fmt.Errorf("spawn %s at %s: %w", e.Kind, pos, ErrOutOfBounds)
	}
	event.Emit(s.Bus, event.EntitySpawned{EntityID: e.ID, Kind: e.Kind, At: e.Center()})
	return e, nil
}

// EntityAt returns the entity indexed at p, if any.
func (s *Scene) EntityAt(p geom.Point) *ecs.Entity {
	found := s.Tree.FindEntityAt(p)
	if found == nil {
		return nil
	}
	return found.Occupant()
}

// Despawn removes the entity at p from the index and flags it.
func (s *Scene) Despawn(p geom.Point) bool {
	e := s.EntityAt(p)
	if e == nil || !s.Tree.Remove(p) {
		return false
	}
	s.despawned(e)
	return true
}

// Relocate reindexes e after its position changed from prev. An entity
// that no longer fits is flagged for removal.
func (s *Scene) Relocate(e *ecs.Entity, prev geom.Rect) bool {
	if e.Position == prev {
		return true
	}
	if s.Tree.Move(e, prev.Center()) {
		return true
	}
	s.log.Debug("entity left the index",
		zap.Uint64("entity", uint64(e.ID)),
		zap.Stringer("position", e.Position))
	e.MarkForRemoval()
	s.despawned(e)
	return false
}

// Shift reindexes e like Relocate, except that a position the index refuses
// sends e back to prev instead of removing it.
func (s *Scene) Shift(e *ecs.Entity, prev geom.Rect) bool {
	if e.Position == prev {
		return true
	}
	if s.Tree.Move(e, prev.Center()) {
		return true
	}
	e.Position = prev
	if s.Tree.Insert(e) {
		return false
	}
	s.log.Warn("entity lost its place in the index",
		zap.Uint64("entity", uint64(e.ID)),
		zap.Stringer("position", e.Position))
	e.MarkForRemoval()
	s.despawned(e)
	return false
}

// Evict detaches every flagged entity still in the index. Run it right
// before Store.Compact so the index never refers to a dropped entity.
func (s *Scene) Evict() int {
	n := 0
	s.Store.Each(func(e *ecs.Entity) {
		if !e.Removed() {
			return
		}
		if s.Tree.Detach(e) {
			s.despawned(e)
			n++
		}
	})
	return n
}

func (s *Scene) despawned(e *ecs.Entity) {
	event.Emit(s.Bus, event.EntityDespawned{EntityID: e.ID, Kind: e.Kind, At: e.Center()})
}

// Free drops the index and every entity.
func (s *Scene) Free() {
	s.Tree.Free()
	s.Store.Teardown()
}

// Populate spawns every entry through reg. Entries the index rejects are
// logged and skipped; an unknown kind stops population.
func (s *Scene) Populate(reg *ecs.Registry, entries []data.SpawnEntry) (int, error) {
	n := 0
	for _, entry := range entries {
		factory, ok := reg.Factory(entry.Kind)
		if !ok {
			return n, fmt.Errorf("spawn %q: %w", entry.Kind, data.ErrUnknownKind)
		}
		if _, err := s.Spawn(factory, entry.Rect()); err != nil {
			if errors.Is(err, ErrOutOfBounds) {
				s.log.Warn("spawn entry skipped", zap.String("kind", entry.Kind), zap.Error(err))
				continue
			}
			return n, err
		}
		n++
	}
	return n, nil
}
