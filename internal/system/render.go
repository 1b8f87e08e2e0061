package system

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/render"
	"github.com/l1jgo/quadscene/internal/spatial"
	"github.com/l1jgo/quadscene/internal/world"
)

// Canvas is the frame target of the render system.
type Canvas interface {
	ecs.Surface
	Begin(camera geom.Rect)
	Text(x, y int, s string, c ecs.Color)
	Show()
	Viewport() render.Viewport
}

var hudError = ecs.Color{R: 255, G: 90, B: 90, A: 255}

// RenderSystem draws the tree overlay and entities inside the camera, and
// the debug HUD. Phase 4 (Output).
type RenderSystem struct {
	scene   *world.Scene
	canvas  Canvas
	printer *message.Printer
	fps     FrameCounter
	log     *zap.Logger

	lastInvariant string
}

func NewRenderSystem(scene *world.Scene, canvas Canvas, log *zap.Logger) *RenderSystem {
	return &RenderSystem{
		scene:   scene,
		canvas:  canvas,
		printer: message.NewPrinter(language.English),
		log:     log,
	}
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *RenderSystem) Update(dt time.Duration) {
	s.fps.Tick(dt)
	cam := s.scene.Camera.Rect()
	s.canvas.Begin(cam)
	s.drawTree(cam)
	if s.scene.Debug() {
		s.drawDebug(cam)
	}
	s.canvas.Show()
}

// drawTree walks from the smallest known node around the camera, children
// before parents, so parent outlines end up on top.
func (s *RenderSystem) drawTree(cam geom.Rect) {
	tree := s.scene.Tree
	start := tree.FindNode(cam)
	if start == nil || !start.Bounds().Encloses(cam) {
		start = tree.Root()
	}

	debug := s.scene.Debug()
	in := ecs.Input{Surface: s.canvas}
	start.Walk(func(n *spatial.Node) {
		occupant := n.Occupant()
		visible := cam.Encloses(n.Bounds()) ||
			(debug && n.Occupied() && cam.ContainsPoint(occupant.Center()))
		if !visible {
			return
		}
		if n.Occupied() {
			s.canvas.FillRect(n.Bounds(), ecs.Blue)
			occupant.Call(ecs.Render, in)
		}
		s.canvas.StrokeRect(n.Bounds(), ecs.White)
	})
}

func (s *RenderSystem) drawDebug(cam geom.Rect) {
	s.canvas.StrokeRect(cam, ecs.Red)

	st := s.scene.Tree.Stats()
	p := s.scene.Pointer
	lines := []string{
		s.printer.Sprintf("fps %.1f  entities %d  indexed %d  capacity %d  events %d",
			s.fps.Average(), s.scene.Store.Len(), s.scene.Tree.Len(), s.scene.Store.Cap(), s.scene.Bus.Pending()),
		s.printer.Sprintf("view %s  camera %s  pointer (%d, %d)",
			s.scene.View(), cam, p.X, p.Y),
		s.printer.Sprintf("nodes %d  leaves %d  branches %d  depth %d",
			st.Nodes, st.Leaves, st.Branches, st.Depth),
	}
	for i, line := range lines {
		s.canvas.Text(0, i, line, ecs.White)
	}

	if err := s.scene.Tree.Validate(); err != nil {
		s.canvas.Text(0, len(lines), err.Error(), hudError)
		if msg := err.Error(); msg != s.lastInvariant {
			s.log.Error("spatial index invariant violated", zap.Error(err))
			s.lastInvariant = msg
		}
	}
}
