package lander

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Pad is the landing zone: a flat strip with two scoring rings around its center.
type Pad struct {
	CenterX     float64
	Width       float64
	Y           float64
	InnerRadius float64
	OuterRadius float64
}

// Left returns the x of the pad's left edge.
func (p Pad) Left() float64 { return p.CenterX - p.Width/2 }

// Right returns the x of the pad's right edge.
func (p Pad) Right() float64 { return p.CenterX + p.Width/2 }

// Contains reports whether x lies on the pad, edges included.
func (p Pad) Contains(x float64) bool {
	return x >= p.Left() && x <= p.Right()
}

// RandomPad places a pad using rng.
func RandomPad(rng *rand.Rand, cfg config.PadConfig) Pad {
	return Pad{
		CenterX:     cfg.MinCenterX + rng.Float64()*cfg.CenterXRange,
		Width:       cfg.Width,
		Y:           cfg.BaseY + (rng.Float64()*2-1)*cfg.YJitter,
		InnerRadius: cfg.InnerRadius,
		OuterRadius: cfg.OuterRadius,
	}
}

// Terrain is the ground profile, ordered by strictly increasing x.
type Terrain []core.Point

// GenerateTerrain builds jagged ground either side of a level plateau at the pad.
// Side samples are spaced cfg.Step apart and sit between MinRise and
// MinRise+RiseRange above a base level jittered around the pad height.
func GenerateTerrain(rng *rand.Rand, width float64, pad Pad, cfg config.TerrainConfig) Terrain {
	left, right := pad.Left(), pad.Right()
	t := make(Terrain, 0, int(width/cfg.Step)+4)

	sample := func(base float64) float64 {
		return base - cfg.MinRise - rng.Float64()*cfg.RiseRange
	}

	leftBase := pad.Y + (rng.Float64()*2-1)*cfg.BaseJitter
	for x := 0.0; x < left; x += cfg.Step {
		t = append(t, core.Pt(x, sample(leftBase)))
	}

	t = append(t, core.Pt(left, pad.Y), core.Pt(right, pad.Y))

	rightBase := pad.Y + (rng.Float64()*2-1)*cfg.BaseJitter
	x := right + cfg.Step
	for ; x <= width; x += cfg.Step {
		t = append(t, core.Pt(x, sample(rightBase)))
	}
	// Close the profile at the field edge
	if last := t[len(t)-1]; last.X < width {
		t = append(t, core.Pt(width, sample(rightBase)))
	}
	return t
}

// HeightAt returns the ground y below x, interpolated across the segment
// that straddles x. Outside the sampled range it returns fallback.
func (t Terrain) HeightAt(x, fallback float64) float64 {
	for i := 0; i+1 < len(t); i++ {
		p1, p2 := t[i], t[i+1]
		if x >= p1.X && x <= p2.X {
			if p2.X == p1.X {
				return p1.Y
			}
			f := (x - p1.X) / (p2.X - p1.X)
			return p1.Y + f*(p2.Y-p1.Y)
		}
	}
	return fallback
}

// Validate checks the profile invariants against its pad.
func (t Terrain) Validate(pad Pad) error {
	if len(t) < 2 {
		return fmt.Errorf("%w: %d samples", ErrEmptyTerrain, len(t))
	}
	for i := 1; i < len(t); i++ {
		if t[i].X <= t[i-1].X {
			return fmt.Errorf("%w: sample %d x=%g after x=%g", ErrTerrainNotMonotonic, i, t[i].X, t[i-1].X)
		}
	}
	for i := 0; i+1 < len(t); i++ {
		if t[i].X == pad.Left() && t[i+1].X == pad.Right() {
			if t[i].Y != pad.Y || t[i+1].Y != pad.Y {
				return fmt.Errorf("%w: edges at y=%g,%g want %g", ErrPlateauMismatch, t[i].Y, t[i+1].Y, pad.Y)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: no samples at x=%g and x=%g", ErrPlateauMismatch, pad.Left(), pad.Right())
}
