package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/l1jgo/quadscene/internal/geom"
)

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestTranslateMouseTransitions(t *testing.T) {
	p := NewPump(nil, 8, zaptest.NewLogger(t))

	out := p.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonPrimary, tcell.ModNone))
	require.Equal(t, []Kind{MouseMove, MouseDown}, kinds(out))
	require.Equal(t, ButtonNone, out[0].Button)
	require.Equal(t, ButtonLeft, out[1].Button)
	require.Equal(t, geom.Pt(3, 4), out[1].Cell)

	out = p.Translate(tcell.NewEventMouse(5, 4, tcell.ButtonPrimary, tcell.ModNone))
	require.Equal(t, []Kind{MouseMove}, kinds(out))
	require.Equal(t, ButtonLeft, out[0].Button)

	out = p.Translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone))
	require.Equal(t, []Kind{MouseUp}, kinds(out))
	require.Equal(t, ButtonLeft, out[0].Button)

	out = p.Translate(tcell.NewEventMouse(5, 4, tcell.ButtonSecondary, tcell.ModShift))
	require.Equal(t, []Kind{MouseDown}, kinds(out))
	require.Equal(t, ButtonRight, out[0].Button)
	require.Equal(t, ModShift, out[0].Mods)
}

func TestTranslateWheel(t *testing.T) {
	p := NewPump(nil, 8, zaptest.NewLogger(t))
	p.Translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))

	out := p.Translate(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
	require.Equal(t, []Event{{Kind: Wheel, Cell: geom.Pt(1, 1), WheelY: 1}}, out)

	out = p.Translate(tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone))
	require.Equal(t, -1, out[0].WheelY)
}

func TestTranslateKeys(t *testing.T) {
	p := NewPump(nil, 8, zaptest.NewLogger(t))

	out := p.Translate(tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModAlt))
	require.Equal(t, []Event{{Kind: KeyDown, Key: KeyF4, Mods: ModAlt}}, out)

	out = p.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	require.Equal(t, KeyRune, out[0].Key)
	require.Equal(t, 'q', out[0].Rune)

	require.Empty(t, p.Translate(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone)))

	out = p.Translate(tcell.NewEventResize(120, 40))
	require.Equal(t, []Event{{Kind: Resize, Cell: geom.Pt(120, 40)}}, out)
}

func TestPumpRun(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	p := NewPump(screen, 16, zaptest.NewLogger(t))
	go p.Run()

	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)

	var got Event
	deadline := time.After(2 * time.Second)
	for got.Kind != KeyDown {
		select {
		case ev := <-p.Events():
			got = ev
		case <-deadline:
			t.Fatal("no key event from pump")
		}
	}
	require.Equal(t, KeyF5, got.Key)

	screen.Fini()
	for {
		select {
		case _, ok := <-p.Events():
			if !ok {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("pump did not stop after Fini")
		}
	}
}
