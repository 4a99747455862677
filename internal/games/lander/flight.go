package lander

import "github.com/vovakirdan/tui-lander/internal/config"

// Controls is the held-key state, flipped by key events and read once per tick.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// Apply turns the held keys into rotation and engine commands for one tick.
// Both rotate keys may be held at once and cancel out.
func (c Controls) Apply(b *Body, dt float64, phys config.PhysicsConfig) {
	if c.RotateLeft {
		b.Rotation -= phys.RotationSpeed * dt
	}
	if c.RotateRight {
		b.Rotation += phys.RotationSpeed * dt
	}
	b.Rotation = normalizeAngle(b.Rotation)

	b.Fuel = clampFuel(b.Fuel)
	if c.Thrust && b.Fuel > 0 {
		b.Thrust = phys.ThrustPower
		b.Fuel = clampFuel(b.Fuel - phys.BurnRate*dt)
	} else {
		b.Thrust = 0
	}
}

func clampFuel(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}
