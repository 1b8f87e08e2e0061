package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/geom"
)

// Terminal draws world rectangles onto a tcell screen through a Viewport.
// It implements ecs.Surface. Translucent fills are blended with whatever
// background the cell already has.
type Terminal struct {
	screen tcell.Screen
	vp     Viewport
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Begin clears the screen and maps camera onto its current size.
func (t *Terminal) Begin(camera geom.Rect) {
	cols, rows := t.screen.Size()
	t.vp = Viewport{Camera: camera, Cols: cols, Rows: rows}
	t.screen.Clear()
}

func (t *Terminal) Viewport() Viewport { return t.vp }

// Show flushes the frame.
func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) FillRect(r geom.Rect, c ecs.Color) {
	cells := t.vp.Cells(r)
	for y := cells.Y; y < cells.Y+cells.H; y++ {
		for x := cells.X; x < cells.X+cells.W; x++ {
			mainc, combc, style, _ := t.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			t.screen.SetContent(x, y, mainc, combc, style.Background(blend(c, bg)))
		}
	}
}

// StrokeRect draws a box around the cells r covers. A rectangle one cell
// wide or tall collapses to a line or a single mark.
func (t *Terminal) StrokeRect(r geom.Rect, c ecs.Color) {
	cells := t.vp.Cells(r)
	if cells.Empty() {
		return
	}
	fg := toColor(c)
	x0, y0 := cells.X, cells.Y
	x1, y1 := cells.X+cells.W-1, cells.Y+cells.H-1

	set := func(x, y int, ch rune) {
		_, _, style, _ := t.screen.GetContent(x, y)
		t.screen.SetContent(x, y, ch, nil, style.Foreground(fg))
	}

	switch {
	case x0 == x1 && y0 == y1:
		set(x0, y0, '□')
		return
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			set(x, y0, '─')
		}
		return
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			set(x0, y, '│')
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

// Text writes s at a screen cell, clipped to the screen width.
func (t *Terminal) Text(x, y int, s string, c ecs.Color) {
	cols, rows := t.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(tcell.ColorBlack)
	for _, r := range s {
		if x >= cols {
			return
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func toColor(c ecs.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend mixes c over bg by c's alpha. A default background counts as black.
func blend(c ecs.Color, bg tcell.Color) tcell.Color {
	if c.A == 255 {
		return toColor(c)
	}
	var br, bgg, bb int32
	if bg != tcell.ColorDefault {
		br, bgg, bb = bg.RGB()
		br, bgg, bb = max(br, 0), max(bgg, 0), max(bb, 0)
	}
	a := int32(c.A)
	mix := func(src uint8, dst int32) int32 {
		return (int32(src)*a + dst*(255-a)) / 255
	}
	return tcell.NewRGBColor(mix(c.R, br), mix(c.G, bgg), mix(c.B, bb))
}
