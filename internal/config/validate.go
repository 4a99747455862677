package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid lander config")

// Validate checks cfg for values the simulation cannot run with.
// It returns non-fatal warnings separately; the caller decides whether to log them.
func (cfg LanderConfig) Validate() (warnings []string, err error) {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		bad("field size %gx%g must be positive", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.WrapMargin < 0 {
		bad("field.wrap_margin %g must not be negative", cfg.Field.WrapMargin)
	}
	if cfg.Field.Stars < 0 {
		bad("field.stars %d must not be negative", cfg.Field.Stars)
	}
	if cfg.Physics.MaxDt <= 0 {
		bad("physics.max_dt %g must be positive", cfg.Physics.MaxDt)
	}
	if cfg.Physics.Gravity < 0 || cfg.Physics.ThrustPower < 0 || cfg.Physics.BurnRate < 0 {
		bad("physics rates must not be negative")
	}
	if cfg.Physics.InitialFuel < 0 || cfg.Physics.InitialFuel > 100 {
		bad("physics.initial_fuel %g must be within [0, 100]", cfg.Physics.InitialFuel)
	}
	if cfg.Landing.MaxSpeed <= 0 || cfg.Landing.MaxTilt <= 0 {
		bad("landing tolerances must be positive")
	}
	if cfg.Pad.Width <= 0 {
		bad("pad.width %g must be positive", cfg.Pad.Width)
	}
	if cfg.Pad.InnerRadius <= 0 || cfg.Pad.InnerRadius >= cfg.Pad.OuterRadius {
		bad("pad rings need 0 < inner_radius (%g) < outer_radius (%g)", cfg.Pad.InnerRadius, cfg.Pad.OuterRadius)
	}
	if cfg.Pad.MinCenterX-cfg.Pad.Width/2 <= 0 ||
		cfg.Pad.MinCenterX+cfg.Pad.CenterXRange+cfg.Pad.Width/2 >= cfg.Field.Width {
		bad("pad placement must leave ground on both sides")
	}
	if cfg.Terrain.Step <= 0 {
		bad("terrain.step %g must be positive", cfg.Terrain.Step)
	}
	if cfg.Camera.MaxZoom < 1 || cfg.Camera.ZoomThreshold <= 0 {
		bad("camera needs max_zoom >= 1 and a positive zoom_threshold")
	}
	if cfg.Intro.DockedSecs < 0 || cfg.Intro.UndockingSecs < 0 || cfg.Intro.ZoomingSecs < 0 {
		bad("intro durations must not be negative")
	}
	if cfg.Intro.StartZoom < 1 {
		bad("intro.start_zoom %g must be at least 1", cfg.Intro.StartZoom)
	}

	if cfg.Pad.OuterRadius > cfg.Pad.Width/2 {
		warnings = append(warnings, fmt.Sprintf(
			"pad.outer_radius %g exceeds half the pad width; the %d-point band is unreachable",
			cfg.Pad.OuterRadius, cfg.Scoring.MinScore))
	}
	if cfg.Scoring.MaxScore < cfg.Scoring.RingScore || cfg.Scoring.RingScore < cfg.Scoring.MinScore {
		warnings = append(warnings, "scoring bands are not decreasing from the pad center")
	}
	return warnings, errors.Join(errs...)
}
