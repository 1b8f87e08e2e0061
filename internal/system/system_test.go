package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/l1jgo/quadscene/internal/component"
	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/core/event"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/handler"
	"github.com/l1jgo/quadscene/internal/input"
	"github.com/l1jgo/quadscene/internal/render"
	"github.com/l1jgo/quadscene/internal/world"
)

var view = geom.R(0, 0, 1280, 720)

func newScene(t *testing.T) *world.Scene {
	t.Helper()
	return world.NewScene(view, 4, world.NewCamera(view, 0.05, 160, 80), event.NewBus(), zaptest.NewLogger(t))
}

func spawnAt(t *testing.T, s *world.Scene, f ecs.Factory, x, y int) *ecs.Entity {
	t.Helper()
	e, err := s.Spawn(f, geom.R(0, 0, 10, 10).CenteredAt(geom.Pt(x, y)))
	require.NoError(t, err)
	return e
}

// mover is an entity kind whose OnTick shifts it right by one unit per
// millisecond.
func mover() (*ecs.Entity, error) {
	e := component.Base(ecs.New("mover"))
	e.Set(ecs.OnTick, func(e *ecs.Entity, in ecs.Input) {
		e.Position.X += int(in.DT.Milliseconds())
	})
	return e, nil
}

func TestTickSystemReindexesMovedEntities(t *testing.T) {
	s := newScene(t)
	still := spawnAt(t, s, component.Node, 100, 100)
	m := spawnAt(t, s, mover, 1000, 600)

	NewTickSystem(s).Update(100 * time.Millisecond)
	require.Equal(t, geom.Pt(1100, 600), m.Center())
	require.Same(t, m, s.EntityAt(geom.Pt(1100, 600)))
	require.Same(t, still, s.EntityAt(geom.Pt(100, 100)))
	require.NoError(t, s.Tree.Validate())

	NewTickSystem(s).Update(time.Second)
	require.True(t, m.Removed())
	require.Equal(t, 1, s.Tree.Len())
}

func TestCleanupSystem(t *testing.T) {
	s := newScene(t)
	a := spawnAt(t, s, component.Node, 100, 100)
	b := spawnAt(t, s, component.Node, 1000, 600)
	c := spawnAt(t, s, component.Node, 100, 600)

	b.Call(ecs.Deleted, ecs.Input{})
	NewCleanupSystem(s, zaptest.NewLogger(t)).Update(0)

	require.Equal(t, 2, s.Store.Len())
	require.Same(t, a, s.Store.At(0))
	require.Same(t, c, s.Store.At(1))
	require.Equal(t, 2, s.Tree.Len())
	require.Nil(t, s.EntityAt(geom.Pt(1000, 600)))
	require.NoError(t, s.Tree.Validate())
}

func TestSpawnerSystem(t *testing.T) {
	s := newScene(t)
	sp := NewSpawnerSystem(s, component.Node, 50*time.Millisecond, 10, zaptest.NewLogger(t))

	sp.Update(time.Second)
	require.Zero(t, s.Store.Len())

	s.Pointer = geom.Pt(100, 100)
	sp.SetActive(true)
	require.True(t, sp.Active())
	sp.Update(0)
	require.Equal(t, 1, s.Store.Len())
	require.Equal(t, geom.R(100, 100, 10, 10), s.Store.At(0).Position)

	s.Pointer = geom.Pt(300, 100)
	sp.Update(25 * time.Millisecond)
	require.Equal(t, 1, s.Store.Len())
	sp.Update(25 * time.Millisecond)
	require.Equal(t, 2, s.Store.Len())

	// Same spot again: the index refuses it and cleanup drops it.
	sp.Update(50 * time.Millisecond)
	require.Equal(t, 3, s.Store.Len())
	require.Equal(t, 2, s.Tree.Len())
	NewCleanupSystem(s, zaptest.NewLogger(t)).Update(0)
	require.Equal(t, 2, s.Store.Len())

	sp.SetActive(false)
	sp.Update(time.Second)
	require.Equal(t, 2, s.Store.Len())
}

type toggle struct{}

func (toggle) SetActive(bool) {}

func TestInputSystem(t *testing.T) {
	s := newScene(t)
	log := zaptest.NewLogger(t)
	reg := input.NewRegistry(log)
	handler.RegisterAll(reg, &handler.Deps{Log: log, Scene: s, Spawner: toggle{}})

	events := make(chan input.Event, 8)
	scale := func(c geom.Point) geom.Point { return geom.Pt(c.X*10, c.Y*10) }
	sys := NewInputSystem(events, reg, s, scale, 2, log)

	events <- input.Event{Kind: input.MouseMove, Cell: geom.Pt(3, 4)}
	events <- input.Event{Kind: input.KeyUp}
	events <- input.Event{Kind: input.KeyDown, Key: input.KeyF5}

	sys.Update(0)
	require.Equal(t, geom.Pt(30, 40), s.Pointer)
	require.False(t, s.Debug())

	sys.Update(0)
	require.True(t, s.Debug())

	close(events)
	sys.Update(0)
	require.True(t, s.Closing())
}

type call struct {
	op   string
	rect geom.Rect
	c    ecs.Color
}

type fakeCanvas struct {
	calls []call
	text  []string
	shown int
}

func (f *fakeCanvas) FillRect(r geom.Rect, c ecs.Color) {
	f.calls = append(f.calls, call{"fill", r, c})
}
func (f *fakeCanvas) StrokeRect(r geom.Rect, c ecs.Color) {
	f.calls = append(f.calls, call{"stroke", r, c})
}
func (f *fakeCanvas) Begin(geom.Rect)                      { f.calls, f.text = nil, nil }
func (f *fakeCanvas) Text(_, _ int, s string, _ ecs.Color) { f.text = append(f.text, s) }
func (f *fakeCanvas) Show()                                { f.shown++ }
func (f *fakeCanvas) Viewport() render.Viewport            { return render.Viewport{} }

func (f *fakeCanvas) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func TestRenderWholeView(t *testing.T) {
	s := newScene(t)
	spawnAt(t, s, component.Node, 100, 100)
	spawnAt(t, s, component.Node, 1000, 600)

	canvas := &fakeCanvas{}
	r := NewRenderSystem(s, canvas, zaptest.NewLogger(t))
	r.Update(20 * time.Millisecond)

	require.Equal(t, 1, canvas.shown)
	require.Equal(t, 5, canvas.count("stroke"))
	require.Equal(t, 4, canvas.count("fill"))
	require.Empty(t, canvas.text)

	// Children come before the root, fill before entity before outline.
	require.Equal(t, call{"fill", geom.R(0, 0, 640, 360), ecs.Blue}, canvas.calls[0])
	require.Equal(t, call{"fill", geom.R(95, 95, 10, 10), ecs.White}, canvas.calls[1])
	require.Equal(t, call{"stroke", geom.R(0, 0, 640, 360), ecs.White}, canvas.calls[2])
	require.Equal(t, call{"stroke", view, ecs.White}, canvas.calls[len(canvas.calls)-1])
}

func TestRenderZoomedCamera(t *testing.T) {
	s := newScene(t)
	spawnAt(t, s, component.Node, 400, 250)
	spawnAt(t, s, component.Node, 900, 500)
	for s.Camera.Rect().W > 700 {
		require.True(t, s.Camera.ZoomIn())
	}
	require.Equal(t, geom.R(291, 164, 698, 392), s.Camera.Rect())

	canvas := &fakeCanvas{}
	r := NewRenderSystem(s, canvas, zaptest.NewLogger(t))
	r.Update(0)
	require.Zero(t, canvas.count("stroke"))

	s.ToggleDebug()
	r.Update(0)
	require.Len(t, canvas.text, 3)
	require.Contains(t, canvas.text[0], "entities 2")
	// Both entity centers are inside the zoomed camera.
	require.Equal(t, 4, canvas.count("fill"))
	require.Equal(t, 3, canvas.count("stroke"))
}

func TestRenderHUDFormatsNumbers(t *testing.T) {
	s := newScene(t)
	for i := 0; i < 1200; i++ {
		// Refused entities stay in the store until compaction.
		_, _ = s.Spawn(component.Node, geom.R(i, (i*7)%700, 10, 10))
	}
	s.ToggleDebug()

	canvas := &fakeCanvas{}
	NewRenderSystem(s, canvas, zaptest.NewLogger(t)).Update(0)
	require.Contains(t, canvas.text[0], "entities 1,200")
	// One spawn or rejection event per attempt, not yet dispatched.
	require.Contains(t, canvas.text[0], "events 1,200")
}

func TestFrameCounter(t *testing.T) {
	var f FrameCounter
	require.Zero(t, f.Average())
	for i := 0; i < 50; i++ {
		f.Tick(20 * time.Millisecond)
	}
	require.InDelta(t, 50.0, f.Average(), 0.001)

	var g FrameCounter
	g.Tick(halveAfter - time.Second)
	g.Tick(2 * time.Second)
	require.Equal(t, uint64(1), g.frames)
	require.Equal(t, (halveAfter+time.Second)/2, g.elapsed)
}

func TestEventDispatchSystem(t *testing.T) {
	bus := event.NewBus()
	got := 0
	event.Subscribe(bus, func(event.EntitySpawned) { got++ })
	event.Emit(bus, event.EntitySpawned{})

	NewEventDispatchSystem(bus).Update(0)
	require.Equal(t, 1, got)
}
