package handler

import (
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/config"
	"github.com/l1jgo/quadscene/internal/input"
	"github.com/l1jgo/quadscene/internal/world"
)

// SpawnToggle switches continuous spawning at the pointer on and off.
type SpawnToggle interface {
	SetActive(active bool)
}

// Deps holds shared dependencies injected into all input handlers.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Scene   *world.Scene
	Spawner SpawnToggle

	// OnResize runs when the terminal changes size. May be nil.
	OnResize func(cols, rows int)
}

// RegisterAll registers all input handlers into the registry.
func RegisterAll(reg *input.Registry, deps *Deps) {
	reg.Register(input.MouseDown, func(ev input.Event) {
		HandleMouseDown(ev, deps)
	})
	reg.Register(input.MouseUp, func(ev input.Event) {
		HandleMouseUp(ev, deps)
	})
	reg.Register(input.MouseMove, func(ev input.Event) {
		HandleMouseMove(ev, deps)
	})
	reg.Register(input.Wheel, func(ev input.Event) {
		HandleWheel(ev, deps)
	})
	reg.Register(input.KeyDown, func(ev input.Event) {
		HandleKeyDown(ev, deps)
	})
	reg.Register(input.Resize, func(ev input.Event) {
		if deps.OnResize != nil {
			deps.OnResize(ev.Cell.X, ev.Cell.Y)
		}
	})
}
