package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/geom"
)

const pointerButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Pump reads terminal events on its own goroutine and hands translated
// Events to the game loop over a channel. Terminals report button state,
// not transitions, so the pump keeps the last state to derive them.
type Pump struct {
	screen  tcell.Screen
	events  chan Event
	log     *zap.Logger
	buttons tcell.ButtonMask
	last    geom.Point
	dropped uint64
}

func NewPump(screen tcell.Screen, queueSize int, log *zap.Logger) *Pump {
	return &Pump{
		screen: screen,
		events: make(chan Event, queueSize),
		log:    log,
		last:   geom.Pt(-1, -1),
	}
}

// Events returns the channel translated events arrive on. It is closed
// once the screen is finalized.
func (p *Pump) Events() <-chan Event {
	return p.events
}

// Run polls the screen until it is finalized. A full queue drops events.
func (p *Pump) Run() {
	defer close(p.events)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		for _, out := range p.Translate(ev) {
			select {
			case p.events <- out:
			default:
				p.dropped++
				p.log.Warn("input queue full, event dropped",
					zap.Stringer("kind", out.Kind),
					zap.Uint64("dropped", p.dropped))
			}
		}
	}
}

// Translate converts one terminal event. It is only called from the pump
// goroutine.
func (p *Pump) Translate(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return p.mouse(ev)
	case *tcell.EventKey:
		if out, ok := translateKey(ev); ok {
			return []Event{out}
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return []Event{{Kind: Resize, Cell: geom.Pt(w, h)}}
	}
	return nil
}

func (p *Pump) mouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	cell := geom.Pt(x, y)
	mods := translateMods(ev.Modifiers())
	btns := ev.Buttons()
	pressed := btns & pointerButtons

	var out []Event
	if btns&tcell.WheelUp != 0 {
		out = append(out, Event{Kind: Wheel, Cell: cell, WheelY: 1, Mods: mods})
	}
	if btns&tcell.WheelDown != 0 {
		out = append(out, Event{Kind: Wheel, Cell: cell, WheelY: -1, Mods: mods})
	}
	if cell != p.last {
		out = append(out, Event{Kind: MouseMove, Button: lowest(pressed & p.buttons), Cell: cell, Mods: mods})
	}
	for _, b := range []tcell.ButtonMask{tcell.ButtonPrimary, tcell.ButtonSecondary, tcell.ButtonMiddle} {
		was, now := p.buttons&b != 0, pressed&b != 0
		switch {
		case now && !was:
			out = append(out, Event{Kind: MouseDown, Button: lowest(b), Cell: cell, Mods: mods})
		case was && !now:
			out = append(out, Event{Kind: MouseUp, Button: lowest(b), Cell: cell, Mods: mods})
		}
	}

	p.buttons = pressed
	p.last = cell
	return out
}

func lowest(mask tcell.ButtonMask) Button {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return ButtonLeft
	case mask&tcell.ButtonSecondary != 0:
		return ButtonRight
	case mask&tcell.ButtonMiddle != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

func translateKey(ev *tcell.EventKey) (Event, bool) {
	out := Event{Kind: KeyDown, Mods: translateMods(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyF4:
		out.Key = KeyF4
	case tcell.KeyF5:
		out.Key = KeyF5
	case tcell.KeyDelete:
		out.Key = KeyDelete
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	default:
		return Event{}, false
	}
	return out, true
}

func translateMods(m tcell.ModMask) Mod {
	var out Mod
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
