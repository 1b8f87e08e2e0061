package handler

import (
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/input"
)

// HandleKeyDown processes keyboard shortcuts.
func HandleKeyDown(ev input.Event, deps *Deps) {
	s := deps.Scene
	switch ev.Key {
	case input.KeyEscape, input.KeyCtrlC:
		s.Close()

	case input.KeyF4:
		if ev.Mods&input.ModAlt != 0 {
			s.Close()
		}

	case input.KeyF5:
		on := s.ToggleDebug()
		deps.Log.Info("debug overlay", zap.Bool("enabled", on))

	case input.KeyDelete:
		e := s.EntityAt(s.Pointer)
		if e != nil && e.Call(ecs.Deleted, ecs.Input{Point: s.Pointer}) {
			deps.Log.Debug("entity deleted", zap.Uint64("entity", uint64(e.ID)))
		}

	case input.KeyRune:
		if ev.Rune == '0' {
			s.Camera.Reset()
		}
	}
}
