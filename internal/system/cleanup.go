package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/world"
)

// CleanupSystem evicts flagged entities from the index, then compacts the
// store. Phase 3 (Cleanup).
type CleanupSystem struct {
	scene *world.Scene
	log   *zap.Logger
}

func NewCleanupSystem(scene *world.Scene, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{scene: scene, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	evicted := s.scene.Evict()
	dropped := s.scene.Store.Compact()
	if dropped > 0 {
		s.log.Debug("entities compacted",
			zap.Int("evicted", evicted),
			zap.Int("dropped", dropped),
			zap.Int("live", s.scene.Store.Len()))
	}
}
