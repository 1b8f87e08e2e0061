package component

import "github.com/l1jgo/quadscene/internal/core/ecs"

const KindNode = "node"

// Node is the demo entity: a white square that deletes itself when
// clicked.
func Node() (*ecs.Entity, error) {
	e := Base(ecs.New(KindNode))
	e.Color = ecs.White
	e.Set(ecs.LeftClicked, func(e *ecs.Entity, in ecs.Input) {
		e.Call(ecs.Deleted, in)
	})
	return e, nil
}
