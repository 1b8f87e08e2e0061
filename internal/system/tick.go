package system

import (
	"time"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/world"
)

// TickSystem runs every OnTick component and reindexes entities that
// moved. Phase 2 (Update).
type TickSystem struct {
	scene *world.Scene
}

func NewTickSystem(scene *world.Scene) *TickSystem {
	return &TickSystem{scene: scene}
}

func (s *TickSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *TickSystem) Update(dt time.Duration) {
	in := ecs.Input{DT: dt}
	s.scene.Store.EachWith(ecs.OnTick, func(e *ecs.Entity) {
		prev := e.Position
		e.Call(ecs.OnTick, in)
		if e.Position != prev {
			s.scene.Relocate(e, prev)
		}
	})
}
