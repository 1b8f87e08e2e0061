package input

import (
	"fmt"

	"github.com/l1jgo/quadscene/internal/geom"
)

// Kind classifies an input event.
type Kind int

const (
	MouseDown Kind = iota
	MouseUp
	MouseMove
	Wheel
	KeyDown
	KeyUp
	Resize // Cell carries the new terminal size
)

func (k Kind) String() string {
	switch k {
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case Wheel:
		return "Wheel"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case Resize:
		return "Resize"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyF4
	KeyF5
	KeyDelete
	KeyCtrlC
)

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Event is one pointer or keyboard action. Cell is the terminal cell the
// pump saw; Point is the world position the game loop maps it to.
type Event struct {
	Kind   Kind
	Button Button
	Cell   geom.Point
	Point  geom.Point
	Key    Key
	Rune   rune
	WheelY int // +1 away from the user, -1 towards
	Mods   Mod
}
