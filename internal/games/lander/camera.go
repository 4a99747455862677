package lander

import (
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Camera scales the world about a focus point and re-centers it on a fixed
// screen anchor.
type Camera struct {
	Zoom   float64    // >= 1
	Focus  core.Point // World point that lands on Anchor
	Anchor core.Point // Screen point, usually the field center
}

// ToScreen maps a world point to screen coordinates.
func (c Camera) ToScreen(p core.Point) core.Point {
	if c.Zoom == 1 {
		return p
	}
	return p.Sub(c.Focus).Scale(c.Zoom).Add(c.Anchor)
}

// ToScreenAll maps every point of pts.
func (c Camera) ToScreenAll(pts []core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = c.ToScreen(p)
	}
	return out
}

// ZoomForAltitude returns the gameplay zoom: 1 at or above the threshold,
// ramping linearly to MaxZoom as altitude falls to 0.
func ZoomForAltitude(alt float64, cfg config.CameraConfig) float64 {
	switch {
	case alt >= cfg.ZoomThreshold:
		return 1
	case alt <= 0:
		return cfg.MaxZoom
	}
	progress := 1 - alt/cfg.ZoomThreshold
	return 1 + (cfg.MaxZoom-1)*progress
}
