package lander

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
)

type star struct {
	pos        core.Point
	baseSize   float64
	speed      float64 // Twinkle rate, radians per second
	phase      float64
	brightness float64 // 0..1, picks the colour bucket
}

// starField is the twinkling backdrop in the upper part of the field.
type starField []star

func newStarField(rng *rand.Rand, n int, w, h float64) starField {
	stars := make(starField, n)
	for i := range stars {
		stars[i] = star{
			pos:        core.Pt(rng.Float64()*w, rng.Float64()*h),
			baseSize:   0.5 + rng.Float64()*1.5,
			speed:      1 + rng.Float64()*4,
			phase:      rng.Float64() * 2 * math.Pi,
			brightness: rng.Float64(),
		}
	}
	return stars
}

func (sf starField) draw(r core.VectorSurface, t float64) {
	for _, s := range sf {
		twinkle := math.Sin(t*s.speed + s.phase)
		size := s.baseSize * (0.5 + 0.5*twinkle)
		r.DrawDot(s.pos.X, s.pos.Y, math.Max(0.5, size), s.color())
	}
}

func (s star) color() core.Color {
	switch {
	case s.brightness > 0.7:
		return core.Phosphor
	case s.brightness > 0.4:
		return core.PhosphorDim
	default:
		return core.ColorDarkGray
	}
}
