package component

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/scripting"
)

// ScriptedPrefix starts the kind name of every Lua-driven entity; the rest
// is the behavior name.
const ScriptedPrefix = "scripted:"

// Behaviors runs named tick functions. *scripting.Engine implements it.
type Behaviors interface {
	Behaviors() []string
	OnTick(fn string, e *ecs.Entity, dt time.Duration) (scripting.TickResult, error)
}

var scriptColor = ecs.Color{R: 200, G: 120, B: 255, A: 255}

// Scripted returns a factory for entities whose OnTick slot calls the Lua
// behavior fn. A failing behavior is logged and leaves the entity as is.
func Scripted(fn string, vm Behaviors, log *zap.Logger) ecs.Factory {
	return func() (*ecs.Entity, error) {
		e := Base(ecs.New(ScriptedPrefix + fn))
		e.Color = scriptColor
		e.Set(ecs.LeftClicked, func(e *ecs.Entity, in ecs.Input) {
			e.Call(ecs.Deleted, in)
		})
		e.Set(ecs.OnTick, func(e *ecs.Entity, in ecs.Input) {
			res, err := vm.OnTick(fn, e, in.DT)
			if err != nil {
				log.Warn("behavior failed",
					zap.String("behavior", fn),
					zap.Uint64("entity", uint64(e.ID)),
					zap.Error(err))
				return
			}
			e.Position.X = res.X
			e.Position.Y = res.Y
			if res.Remove {
				e.Call(ecs.Deleted, in)
			}
		})
		return e, nil
	}
}

// BehaviorName returns the behavior of a scripted kind.
func BehaviorName(kind string) (string, bool) {
	return strings.CutPrefix(kind, ScriptedPrefix)
}
