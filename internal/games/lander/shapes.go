package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// Craft outlines in local coordinates, nose toward -y, origin at the reference point.
var (
	hullShape = []core.Point{
		{X: 0, Y: -40}, {X: 4, Y: -35}, {X: 6, Y: -28}, {X: 6, Y: 20},
		{X: -6, Y: 20}, {X: -6, Y: -28}, {X: -4, Y: -35},
	}
	windowShape = []core.Point{{X: -3, Y: -20}, {X: 3, Y: -20}, {X: 3, Y: -12}, {X: -3, Y: -12}}
	legRight    = []core.Point{{X: 6, Y: 15}, {X: 14, Y: 28}, {X: 16, Y: 30}}
	legLeft     = []core.Point{{X: -6, Y: 15}, {X: -14, Y: 28}, {X: -16, Y: 30}}
	legCenter   = []core.Point{{X: 0, Y: 20}, {X: 0, Y: 30}}

	flameShape     = []core.Point{{X: -5, Y: 22}, {X: 0, Y: 50}, {X: 5, Y: 22}}
	sideFlameLeft  = []core.Point{{X: -8, Y: -10}, {X: -18, Y: -8}, {X: -8, Y: -6}}
	sideFlameRight = []core.Point{{X: 8, Y: -10}, {X: 18, Y: -8}, {X: 8, Y: -6}}
)

// Ferry craft the lander undocks from.
var (
	ferryCapsule = []core.Point{
		{X: 0, Y: -12}, {X: 2, Y: -10}, {X: 5, Y: -4}, {X: 5, Y: -2},
		{X: -5, Y: -2}, {X: -5, Y: -4}, {X: -2, Y: -10},
	}
	ferryWindows = []core.Point{{X: -3, Y: -6}, {X: 0, Y: -7}, {X: 3, Y: -6}}
	ferryService = []core.Point{
		{X: 5, Y: -2}, {X: 5, Y: 10}, {X: 3, Y: 12}, {X: -3, Y: 12}, {X: -5, Y: 10}, {X: -5, Y: -2},
	}
	ferryPanels = [][]core.Point{
		{{X: -4, Y: 0}, {X: -22, Y: -14}, {X: -20, Y: -16}, {X: -3, Y: -3}},
		{{X: 4, Y: 0}, {X: 22, Y: -14}, {X: 20, Y: -16}, {X: 3, Y: -3}},
		{{X: -4, Y: 4}, {X: -22, Y: 18}, {X: -20, Y: 20}, {X: -3, Y: 7}},
		{{X: 4, Y: 4}, {X: 22, Y: 18}, {X: 20, Y: 20}, {X: 3, Y: 7}},
	}
)

// drawLander stamps the hull, window and legs at a screen position.
func drawLander(r core.VectorSurface, at core.Point, rotation, scale float64) {
	r.DrawShape(hullShape, at.X, at.Y, rotation, scale, core.Phosphor)
	r.DrawShape(windowShape, at.X, at.Y, rotation, scale, core.PhosphorDim)
	r.DrawShape(legRight, at.X, at.Y, rotation, scale, core.Phosphor)
	r.DrawShape(legLeft, at.X, at.Y, rotation, scale, core.Phosphor)
	r.DrawShape(legCenter, at.X, at.Y, rotation, scale, core.Phosphor)
}

// drawFerry stamps the ferry craft with its window dots and solar panels.
func drawFerry(r core.VectorSurface, at core.Point, rotation, scale float64) {
	r.DrawShape(ferryCapsule, at.X, at.Y, rotation, scale, core.Phosphor)
	r.DrawShape(ferryService, at.X, at.Y, rotation, scale, core.Phosphor)
	for _, w := range ferryWindows {
		p := w.Rotate(rotation).Scale(scale).Add(at)
		r.DrawDot(p.X, p.Y, 1.5*scale, core.Amber)
	}
	for _, panel := range ferryPanels {
		r.DrawShape(panel, at.X, at.Y, rotation, scale, core.PhosphorDim)
	}
}
