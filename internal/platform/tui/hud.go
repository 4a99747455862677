package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// HudPanel is the one-line score/fuel/altitude readout drawn above the raster.
type HudPanel struct {
	score    int
	fuel     float64
	altitude float64
	altKnown bool
}

// NewHudPanel creates a panel showing zero score, zero fuel and no altitude.
func NewHudPanel() *HudPanel {
	return &HudPanel{}
}

// Update implements core.Hud. Only supplied fields change.
func (h *HudPanel) Update(u core.HudUpdate) {
	if u.Score != nil {
		h.score = *u.Score
	}
	if u.Fuel != nil {
		h.fuel = *u.Fuel
	}
	switch {
	case u.AltitudeUnknown:
		h.altKnown = false
	case u.Altitude != nil:
		h.altitude = *u.Altitude
		h.altKnown = true
	}
}

// Line formats the readout.
func (h *HudPanel) Line() string {
	alt := "----"
	if h.altKnown && core.IsFinite(h.altitude) {
		alt = fmt.Sprintf("%04d", int(math.Floor(h.altitude)))
	}
	return fmt.Sprintf("SCORE: %d  FUEL: %d%%  ALT: %s",
		h.score, int(math.Floor(h.fuel)), alt)
}

// Draw writes the readout into row of dst.
func (h *HudPanel) Draw(dst *core.Screen, row int) {
	dst.DrawText(1, row, h.Line(), core.Phosphor)
}
