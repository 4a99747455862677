package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Phase is a step of the undocking cinematic.
type Phase int

const (
	PhaseDocked Phase = iota
	PhaseUndocking
	PhaseZoomingOut
	PhasePlaying
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseDocked:
		return "docked"
	case PhaseUndocking:
		return "undocking"
	case PhaseZoomingOut:
		return "zooming"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Intro sequences the cinematic. Phases only move forward; Skip jumps
// straight to PhasePlaying.
type Intro struct {
	cfg    config.IntroConfig
	phase  Phase
	timer  float64 // Seconds spent in the current phase
	zoom   float64
	undock float64 // Current separation distance
	pulse  bool    // RCS pulse firing this tick (visual only)
}

// NewIntro creates a sequencer in the docked phase.
func NewIntro(cfg config.IntroConfig) *Intro {
	in := &Intro{cfg: cfg}
	in.Reset()
	return in
}

// Reset rewinds to the docked phase at the opening zoom.
func (in *Intro) Reset() {
	in.phase = PhaseDocked
	in.timer = 0
	in.zoom = in.cfg.StartZoom
	in.undock = 0
	in.pulse = false
}

// Phase returns the current phase.
func (in *Intro) Phase() Phase { return in.phase }

// Active reports whether the cinematic is still running.
func (in *Intro) Active() bool { return in.phase != PhasePlaying }

// Zoom returns the cinematic zoom factor.
func (in *Intro) Zoom() float64 { return in.zoom }

// UndockDistance returns the current craft separation.
func (in *Intro) UndockDistance() float64 { return in.undock }

// Pulsing reports whether the scripted RCS pulse is firing.
func (in *Intro) Pulsing() bool { return in.pulse }

// Update advances the cinematic by dt and moves b along the scripted path.
// It returns true on the tick the sequence hands over to gameplay.
func (in *Intro) Update(dt float64, b *Body) bool {
	if !in.Active() {
		return false
	}
	in.timer += dt

	switch in.phase {
	case PhaseDocked:
		if in.timer >= in.cfg.DockedSecs {
			in.enter(PhaseUndocking)
		}

	case PhaseUndocking:
		p := progress(in.timer, in.cfg.UndockingSecs)
		in.undock = p * in.cfg.UndockDistance
		in.pulse = math.Sin(in.timer*in.cfg.PulseFrequency) > in.cfg.PulseThreshold
		b.Thrust = 0
		if in.pulse {
			b.Thrust = in.cfg.PulseThrust
		}
		if in.timer >= in.cfg.UndockingSecs {
			in.enter(PhaseZoomingOut)
			in.pulse = false
			b.Thrust = 0
		}

	case PhaseZoomingOut:
		ease := easeOut(progress(in.timer, in.cfg.ZoomingSecs))
		in.zoom = core.Lerp(in.cfg.StartZoom, 1, ease)

		from, to := in.cfg.Staging, in.cfg.Start
		pos := core.LerpPoint(core.Pt(from.X, from.Y), core.Pt(to.X, to.Y), ease)
		vel := core.LerpPoint(core.Pt(from.VX, from.VY), core.Pt(to.VX, to.VY), ease)
		b.X, b.Y = pos.X, pos.Y
		b.VX, b.VY = vel.X, vel.Y
		b.Rotation = to.Rotation

		if in.timer >= in.cfg.ZoomingSecs {
			in.Skip(b)
			return true
		}
	}
	return false
}

// Skip ends the cinematic and snaps b to the exact gameplay start pose.
func (in *Intro) Skip(b *Body) {
	in.enter(PhasePlaying)
	in.zoom = 1
	in.pulse = false
	b.Place(in.cfg.Start)
	b.Thrust = 0
}

func (in *Intro) enter(p Phase) {
	in.phase = p
	in.timer = 0
}

// progress returns elapsed/total clamped to [0, 1]. Zero-length phases are complete.
func progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return core.ClampF(elapsed/total, 0, 1)
}

// easeOut is the quadratic ease-out curve 1-(1-p)^2.
func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)
}
