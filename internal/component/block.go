package component

import "github.com/l1jgo/quadscene/internal/core/ecs"

const KindBlock = "block"

// Palette is the color cycle a block steps through on right click.
var Palette = []ecs.Color{
	ecs.White,
	{R: 230, G: 80, B: 80, A: 255},
	{R: 80, G: 200, B: 120, A: 255},
	{R: 240, G: 200, B: 60, A: 255},
	{R: 90, G: 140, B: 240, A: 255},
}

// Block can be dragged around and recolored. It ignores left clicks, so
// only the delete key removes it.
func Block() (*ecs.Entity, error) {
	e := Base(ecs.New(KindBlock))
	e.Color = Palette[0]
	e.Set(ecs.Dragged, func(e *ecs.Entity, in ecs.Input) {
		e.Position = e.Position.CenteredAt(in.Point)
	})
	e.Set(ecs.RightClicked, func(e *ecs.Entity, _ ecs.Input) {
		e.Color = nextColor(e.Color)
	})
	return e, nil
}

func nextColor(c ecs.Color) ecs.Color {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
