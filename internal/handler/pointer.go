package handler

import (
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/input"
)

// HandleMouseDown processes a button press.
// Left: the entity under the pointer gets LeftClicked, and is grabbed for
// dragging if it can be dragged. Right: RightClicked if the entity has
// it, otherwise spawning starts.
func HandleMouseDown(ev input.Event, deps *Deps) {
	s := deps.Scene
	s.Pointer = ev.Point
	e := s.EntityAt(ev.Point)
	in := ecs.Input{Point: ev.Point}

	switch ev.Button {
	case input.ButtonLeft:
		if e == nil {
			return
		}
		if e.Call(ecs.LeftClicked, in) {
			deps.Log.Debug("entity clicked",
				zap.Uint64("entity", uint64(e.ID)),
				zap.Int("x", ev.Point.X), zap.Int("y", ev.Point.Y))
		}
		if !e.Removed() && e.Has(ecs.Dragged) {
			s.Held = e
		}

	case input.ButtonRight:
		if e != nil && e.Call(ecs.RightClicked, in) {
			return
		}
		deps.Spawner.SetActive(true)
	}
}

// HandleMouseUp releases a grab or stops spawning.
func HandleMouseUp(ev input.Event, deps *Deps) {
	deps.Scene.Pointer = ev.Point
	switch ev.Button {
	case input.ButtonLeft:
		deps.Scene.Held = nil
	case input.ButtonRight:
		deps.Spawner.SetActive(false)
	}
}

// HandleMouseMove tracks the pointer and drags the held entity.
func HandleMouseMove(ev input.Event, deps *Deps) {
	s := deps.Scene
	s.Pointer = ev.Point

	e := s.Held
	if e == nil || ev.Button != input.ButtonLeft {
		return
	}
	if e.Removed() {
		s.Held = nil
		return
	}

	prev := e.Position
	e.Call(ecs.Dragged, ecs.Input{Point: ev.Point})
	if !s.Shift(e, prev) {
		deps.Log.Debug("drag blocked",
			zap.Uint64("entity", uint64(e.ID)),
			zap.Int("x", ev.Point.X), zap.Int("y", ev.Point.Y))
		if e.Removed() {
			s.Held = nil
		}
	}
}
