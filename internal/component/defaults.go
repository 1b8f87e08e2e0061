package component

import "github.com/l1jgo/quadscene/internal/core/ecs"

// Base gives e the components every entity carries: Deleted flags it for
// removal, Render fills its rectangle with its color.
func Base(e *ecs.Entity) *ecs.Entity {
	e.Set(ecs.Deleted, deleted)
	e.Set(ecs.Render, fill)
	return e
}

func deleted(e *ecs.Entity, _ ecs.Input) { e.MarkForRemoval() }

func fill(e *ecs.Entity, in ecs.Input) {
	if in.Surface == nil {
		return
	}
	in.Surface.FillRect(e.Position, e.Color)
}
