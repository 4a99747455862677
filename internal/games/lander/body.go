// Package lander implements the lunar lander stage.
// A craft under gravity must descend onto a randomly placed pad without
// exceeding safe speed or tilt. The stage plays a short undocking cinematic
// before handing control to the operator.
package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Body is the physical state of the craft.
type Body struct {
	X, Y     float64 // Reference point, world units (y grows downward)
	VX, VY   float64 // Units per second
	Rotation float64 // Radians, 0 = upright, positive = clockwise
	Fuel     float64 // Percent, 0..100
	Thrust   float64 // Commanded engine acceleration, 0..ThrustPower
}

// Pos returns the reference point.
func (b *Body) Pos() core.Point {
	return core.Pt(b.X, b.Y)
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return core.Pt(b.VX, b.VY).Len()
}

// Tilt returns the absolute deviation from upright.
func (b *Body) Tilt() float64 {
	return math.Abs(normalizeAngle(b.Rotation))
}

// Place sets position, velocity and attitude from a pose.
func (b *Body) Place(p config.PoseConfig) {
	b.X, b.Y = p.X, p.Y
	b.VX, b.VY = p.VX, p.VY
	b.Rotation = p.Rotation
}

// Integrate advances the body by dt using semi-implicit Euler:
// velocity first, then position from the new velocity.
func (b *Body) Integrate(dt float64, phys config.PhysicsConfig, field config.FieldConfig) {
	thrustX := math.Sin(b.Rotation) * b.Thrust
	thrustY := -math.Cos(b.Rotation) * b.Thrust

	b.VX += thrustX * dt
	b.VY += (phys.Gravity + thrustY) * dt

	b.X += b.VX * dt
	b.Y += b.VY * dt

	// Horizontal wrap keeps the overshoot so motion stays continuous
	span := field.Width + 2*field.WrapMargin
	if b.X < -field.WrapMargin {
		b.X += span
	} else if b.X > field.Width+field.WrapMargin {
		b.X -= span
	}

	if b.Y < field.Ceiling {
		b.Y = field.Ceiling
		b.VY = 0
	}
}

// Check reports ErrStateCorrupt if any field is NaN or infinite.
func (b *Body) Check() error {
	for _, v := range [...]float64{b.X, b.Y, b.VX, b.VY, b.Rotation, b.Fuel, b.Thrust} {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: body %+v", ErrStateCorrupt, *b)
		}
	}
	return nil
}

// normalizeAngle maps a into [-pi, pi].
func normalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
