package ecs

import (
	"fmt"
	"time"

	"github.com/l1jgo/quadscene/internal/geom"
)

// ComponentKind names one behavior slot of an entity. The set is closed.
type ComponentKind int

const (
	Render       ComponentKind = iota // draw the entity
	LeftClicked                       // primary button pressed on the entity
	RightClicked                      // secondary button pressed on the entity
	Dragged                           // pointer moved with the primary button held
	Deleted                           // entity asked to go away
	OnTick                            // once per tick, Update phase

	ComponentTotal
)

func (k ComponentKind) String() string {
	switch k {
	case Render:
		return "Render"
	case LeftClicked:
		return "LeftClicked"
	case RightClicked:
		return "RightClicked"
	case Dragged:
		return "Dragged"
	case Deleted:
		return "Deleted"
	case OnTick:
		return "OnTick"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Color is an RGBA color used by Render components.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Red   = Color{R: 255, A: 255}
	Blue  = Color{B: 255, A: 127}
)

// Surface is what a Render component draws on.
type Surface interface {
	FillRect(r geom.Rect, c Color)
	StrokeRect(r geom.Rect, c Color)
}

// Input carries whatever the invoking subsystem knows about the call.
// Fields that do not apply to a slot are zero.
type Input struct {
	Point   geom.Point    // pointer position for click/drag/delete
	DT      time.Duration // tick length for OnTick
	Surface Surface       // target for Render
}

// Component is the behavior stored in a slot. A nil Component means the
// entity lacks the capability; a Component that does nothing is still a
// present capability.
type Component func(e *Entity, in Input)
