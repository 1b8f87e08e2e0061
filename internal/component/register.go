package component

import (
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
)

// RegisterAll adds every entity kind to reg. vm may be nil, in which case
// no scripted kinds exist.
func RegisterAll(reg *ecs.Registry, vm Behaviors, log *zap.Logger) {
	reg.Register(KindNode, Node)
	reg.Register(KindBlock, Block)

	if vm == nil {
		return
	}
	for _, fn := range vm.Behaviors() {
		reg.Register(ScriptedPrefix+fn, Scripted(fn, vm, log))
	}
	log.Info("entity kinds registered", zap.Strings("kinds", reg.Kinds()))
}
