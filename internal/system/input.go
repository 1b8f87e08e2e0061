package system

import (
	"errors"
	"time"

	"go.uber.org/zap"

	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/input"
	"github.com/l1jgo/quadscene/internal/world"
)

// CellMapper converts a terminal cell to a world point.
type CellMapper func(cell geom.Point) geom.Point

// InputSystem drains the pump's queue and dispatches events through the
// input registry. Phase 1 (Input).
type InputSystem struct {
	events     <-chan input.Event
	registry   *input.Registry
	scene      *world.Scene
	toWorld    CellMapper
	maxPerTick int
	log        *zap.Logger
}

func NewInputSystem(
	events <-chan input.Event,
	registry *input.Registry,
	scene *world.Scene,
	toWorld CellMapper,
	maxPerTick int,
	log *zap.Logger,
) *InputSystem {
	return &InputSystem{
		events:     events,
		registry:   registry,
		scene:      scene,
		toWorld:    toWorld,
		maxPerTick: maxPerTick,
		log:        log,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	for i := 0; i < s.maxPerTick; i++ {
		select {
		case ev, ok := <-s.events:
			if !ok {
				// Pump stopped: the terminal is gone.
				s.scene.Close()
				return
			}
			s.dispatch(ev)
		default:
			return
		}
	}
}

func (s *InputSystem) dispatch(ev input.Event) {
	switch ev.Kind {
	case input.MouseDown, input.MouseUp, input.MouseMove, input.Wheel:
		ev.Point = s.toWorld(ev.Cell)
	}
	if err := s.registry.Dispatch(ev); err != nil {
		if errors.Is(err, input.ErrUnhandled) {
			s.log.Debug("input event ignored", zap.Stringer("kind", ev.Kind))
			return
		}
		s.log.Warn("input dispatch error", zap.Stringer("kind", ev.Kind), zap.Error(err))
	}
}
