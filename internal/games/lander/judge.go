package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Judge watches for ground contact and decides the outcome.
// Once it leaves OutcomeNone it stays there until Reset.
type Judge struct {
	landing config.LandingConfig
	scoring config.ScoringConfig
	outcome core.Outcome
}

// NewJudge creates a judge in the flying state.
func NewJudge(landing config.LandingConfig, scoring config.ScoringConfig) *Judge {
	return &Judge{landing: landing, scoring: scoring}
}

// Reset returns the judge to the flying state.
func (j *Judge) Reset() {
	j.outcome = core.OutcomeNone
}

// Outcome returns the current verdict.
func (j *Judge) Outcome() core.Outcome {
	return j.outcome
}

// Done reports whether an outcome has been reached.
func (j *Judge) Done() bool {
	return j.outcome != core.OutcomeNone
}

// Check tests for contact between the undercarriage and the ground.
// On contact it freezes the body on the surface and returns the touchdown
// report; otherwise it returns nil. Flight time is left for the caller.
func (j *Judge) Check(b *Body, t Terrain, pad Pad) *core.FlightReport {
	if j.Done() {
		return nil
	}
	ground := t.HeightAt(b.X, pad.Y)
	if b.Y+j.landing.Undercarriage < ground {
		return nil
	}

	r := &core.FlightReport{
		Speed:     b.Speed(),
		Tilt:      b.Tilt(),
		PadOffset: math.Abs(b.X - pad.CenterX),
		OnPad:     pad.Contains(b.X),
		Fuel:      b.Fuel,
	}
	r.Outcome = Classify(r.Speed, r.Tilt, r.OnPad, j.landing)
	if r.Outcome == core.OutcomeLanded {
		r.Score = Score(r.PadOffset, pad, j.scoring)
	}
	j.outcome = r.Outcome

	b.Y = ground - j.landing.Undercarriage
	b.VX, b.VY = 0, 0
	b.Thrust = 0
	return r
}

// Classify decides a touchdown from its speed, tilt and whether it was on the pad.
func Classify(speed, tilt float64, onPad bool, limits config.LandingConfig) core.Outcome {
	if speed > limits.MaxSpeed || tilt > limits.MaxTilt || !onPad {
		return core.OutcomeCrashed
	}
	return core.OutcomeLanded
}

// Score rates a landing by its distance from the pad center: full marks inside
// the inner ring, a linear falloff to the ring score at the outer ring, and a
// flat minimum beyond it.
func Score(dist float64, pad Pad, sc config.ScoringConfig) int {
	switch {
	case dist <= pad.InnerRadius:
		return sc.MaxScore
	case dist <= pad.OuterRadius:
		t := (dist - pad.InnerRadius) / (pad.OuterRadius - pad.InnerRadius)
		return int(math.Floor(float64(sc.MaxScore) - t*float64(sc.MaxScore-sc.RingScore)))
	default:
		return sc.MinScore
	}
}
