package handler

import (
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/input"
)

// HandleWheel zooms the camera: away from the user zooms in.
func HandleWheel(ev input.Event, deps *Deps) {
	cam := deps.Scene.Camera
	var changed bool
	switch {
	case ev.WheelY > 0:
		changed = cam.ZoomIn()
	case ev.WheelY < 0:
		changed = cam.ZoomOut()
	}
	if changed {
		deps.Log.Debug("camera zoomed", zap.Stringer("camera", cam.Rect()))
	}
}
