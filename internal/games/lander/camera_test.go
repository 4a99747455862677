package lander

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestCameraIdentityAtUnitZoom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		cam := Camera{
			Zoom:   1,
			Focus:  core.Pt(rng.Float64()*800, rng.Float64()*600),
			Anchor: core.Pt(400, 300),
		}
		p := core.Pt(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		if got := cam.ToScreen(p); got != p {
			t.Fatalf("ToScreen(%v) = %v at zoom 1", p, got)
		}
	}
}

func TestCameraScalesAboutFocus(t *testing.T) {
	cam := Camera{Zoom: 2, Focus: core.Pt(100, 100), Anchor: core.Pt(400, 300)}

	if got := cam.ToScreen(cam.Focus); got != cam.Anchor {
		t.Errorf("focus maps to %v, want anchor %v", got, cam.Anchor)
	}
	if got := cam.ToScreen(core.Pt(110, 95)); got != core.Pt(420, 290) {
		t.Errorf("offset point = %v, want (420, 290)", got)
	}

	pts := cam.ToScreenAll([]core.Point{{X: 100, Y: 100}, {X: 110, Y: 95}})
	if len(pts) != 2 || pts[1] != core.Pt(420, 290) {
		t.Errorf("ToScreenAll = %v", pts)
	}
}

func TestZoomForAltitude(t *testing.T) {
	cfg := config.DefaultLanderConfig().Camera
	tests := []struct {
		alt  float64
		want float64
	}{
		{1000, 1},
		{200, 1},
		{100, 1.75},
		{50, 2.125},
		{0, 2.5},
		{-10, 2.5},
	}
	for _, tt := range tests {
		if got := ZoomForAltitude(tt.alt, cfg); !near(got, tt.want) {
			t.Errorf("ZoomForAltitude(%g) = %g, want %g", tt.alt, got, tt.want)
		}
	}
}
