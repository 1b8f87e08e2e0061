package event

import (
	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/geom"
)

// EntitySpawned is emitted after an entity was appended and indexed.
type EntitySpawned struct {
	EntityID ecs.EntityID
	Kind     string
	At       geom.Point
}

// EntityDespawned is emitted when an entity leaves the index on its way to
// compaction.
type EntityDespawned struct {
	EntityID ecs.EntityID
	Kind     string
	At       geom.Point
}

// SpawnRejected is emitted when the index refused a new entity.
type SpawnRejected struct {
	Kind string
	At   geom.Point
}
