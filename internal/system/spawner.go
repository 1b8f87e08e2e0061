package system

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/world"
)

// SpawnerSystem spawns an entity at the pointer every interval while it is
// active. Activation spawns at once. Phase 1 (Input), after input
// dispatch.
type SpawnerSystem struct {
	scene    *world.Scene
	factory  ecs.Factory
	interval time.Duration
	size     int
	log      *zap.Logger

	active bool
	since  time.Duration
}

func NewSpawnerSystem(scene *world.Scene, factory ecs.Factory, interval time.Duration, size int, log *zap.Logger) *SpawnerSystem {
	return &SpawnerSystem{
		scene:    scene,
		factory:  factory,
		interval: interval,
		size:     size,
		log:      log,
	}
}

func (s *SpawnerSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// SetActive starts or stops spawning.
func (s *SpawnerSystem) SetActive(active bool) {
	if active && !s.active {
		s.since = s.interval
	}
	s.active = active
}

func (s *SpawnerSystem) Active() bool { return s.active }

func (s *SpawnerSystem) Update(dt time.Duration) {
	if !s.active {
		return
	}
	s.since += dt
	if s.since < s.interval {
		return
	}
	s.since = 0

	p := s.scene.Pointer
	e, err := s.scene.Spawn(s.factory, geom.R(p.X, p.Y, s.size, s.size))
	if err != nil {
		if errors.Is(err, world.ErrOutOfBounds) {
			s.log.Debug("spawn rejected", zap.Int("x", p.X), zap.Int("y", p.Y))
			return
		}
		s.log.Error("spawn failed", zap.Error(err))
		return
	}
	s.log.Debug("entity spawned", zap.Uint64("entity", uint64(e.ID)), zap.String("kind", e.Kind))
}
