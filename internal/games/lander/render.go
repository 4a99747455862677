package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// view is one way of drawing the stage. The intro phase picks the view.
type view interface {
	draw(s *Stage, r core.VectorSurface)
}

type (
	dockedView  struct{} // Ferry and lander side by side, fixed framing
	descentView struct{} // Zooming out onto the terrain
	flightView  struct{} // Interactive gameplay
)

func (s *Stage) view() view {
	switch s.intro.Phase() {
	case PhaseDocked, PhaseUndocking:
		return dockedView{}
	case PhaseZoomingOut:
		return descentView{}
	default:
		return flightView{}
	}
}

// Attitudes during the cinematic: lander nose left, ferry nose right.
const (
	landerIntroRotation = -math.Pi / 2
	ferryIntroRotation  = math.Pi / 2
)

// Offsets of each craft from the docking point, before zoom.
const (
	landerDockOffset = 42
	ferryDockOffset  = 14
)

func (dockedView) draw(s *Stage, r core.VectorSurface) {
	zoom := s.intro.Zoom()
	c := s.anchor()

	landerAt := core.Pt(c.X+landerDockOffset*zoom, c.Y)
	ferryAt := core.Pt(c.X-ferryDockOffset*zoom, c.Y)
	if s.intro.Phase() == PhaseUndocking {
		landerAt.Y += s.intro.UndockDistance() * zoom
	}

	drawFerry(r, ferryAt, ferryIntroRotation, zoom)
	drawLander(r, landerAt, landerIntroRotation, zoom)

	if s.intro.Phase() == PhaseUndocking && s.intro.Pulsing() {
		r.DrawShape(flameShape, landerAt.X, landerAt.Y, landerIntroRotation, 0.3*zoom*0.5, core.Amber)
	}

	if s.intro.Phase() == PhaseDocked {
		r.DrawText("ORION + HLS DOCKED", 290, 500, 24, core.Amber)
		r.DrawText("LUNAR ORBIT", 340, 530, 18, core.PhosphorDim)
	} else {
		r.DrawText("UNDOCKING...", 330, 500, 24, core.Amber)
	}
	drawSkipHint(r)
}

func (descentView) draw(s *Stage, r core.VectorSurface) {
	cam := s.camera()
	drawLander(r, cam.ToScreen(s.body.Pos()), landerIntroRotation, cam.Zoom)
	drawGround(s, r, cam)
	r.DrawText("BEGINNING DESCENT", 300, 500, 24, core.Amber)
	drawSkipHint(r)
}

func (flightView) draw(s *Stage, r core.VectorSurface) {
	cam := s.camera()
	drawGround(s, r, cam)

	center := cam.ToScreen(core.Pt(s.pad.CenterX, s.pad.Y-15))
	r.DrawCircle(center.X, center.Y, s.pad.InnerRadius*cam.Zoom, core.Amber)
	r.DrawCircle(center.X, center.Y, s.pad.OuterRadius*cam.Zoom, core.PhosphorDim)

	if s.judge.Outcome() != core.OutcomeCrashed {
		drawCraft(s, r, cam)
	}
	drawReadouts(s, r, cam.Zoom)
}

// drawGround draws the terrain profile and the pad edge markers.
func drawGround(s *Stage, r core.VectorSurface, cam Camera) {
	r.DrawPolygon(cam.ToScreenAll(s.terrain), core.Phosphor, false)

	for _, x := range [...]float64{s.pad.Left(), s.pad.Right()} {
		p := cam.ToScreen(core.Pt(x, s.pad.Y))
		r.DrawLine(p.X, p.Y-5*cam.Zoom, p.X, p.Y+10*cam.Zoom, core.Amber)
	}
}

// drawCraft draws the lander with its engine and RCS flames.
func drawCraft(s *Stage, r core.VectorSurface, cam Camera) {
	at := cam.ToScreen(s.body.Pos())
	rot, scale := s.body.Rotation, cam.Zoom
	drawLander(r, at, rot, scale)

	if s.body.Thrust > 0 {
		r.DrawShape(flameShape, at.X, at.Y, rot, (0.7+s.fx.Float64()*0.5)*scale, core.Amber)
	}
	// Rotating left fires the right-hand thrusters and vice versa
	if s.controls.RotateLeft {
		r.DrawShape(sideFlameRight, at.X, at.Y, rot, (0.5+s.fx.Float64()*0.3)*scale, core.Amber)
	}
	if s.controls.RotateRight {
		r.DrawShape(sideFlameLeft, at.X, at.Y, rot, (0.5+s.fx.Float64()*0.3)*scale, core.Amber)
	}
}

func drawReadouts(s *Stage, r core.VectorSurface, zoom float64) {
	hDir, vDir := "→", "↓"
	if s.body.VX < 0 {
		hDir = "←"
	}
	if s.body.VY < 0 {
		vDir = "↑"
	}
	r.DrawText(fmt.Sprintf("H:%s%.0f", hDir, math.Abs(s.body.VX)), 650, 60, 18, core.Phosphor)
	r.DrawText(fmt.Sprintf("V:%s%.0f", vDir, math.Abs(s.body.VY)), 720, 60, 18, core.Phosphor)

	if zoom > 1.1 {
		r.DrawText(fmt.Sprintf("ZOOM: %.1fx", zoom), 350, 60, 18, core.Amber)
	}

	switch s.judge.Outcome() {
	case core.OutcomeLanded:
		r.DrawText("LANDED!", 330, 280, 36, core.Amber)
	case core.OutcomeCrashed:
		r.DrawText("CRASHED!", 320, 280, 36, core.Amber)
	}
	if s.judge.Done() {
		r.DrawText("PRESS R TO RETRY", 300, 320, 24, core.Phosphor)
		r.DrawText("ESC FOR MENU", 320, 355, 20, core.PhosphorDim)
	}

	if s.paused {
		drawTuningPanel(s, r)
	} else if !s.judge.Done() && s.body.Y < 120 && zoom == 1 {
		r.DrawText("ARROWS/WASD TO CONTROL  -  P TO PAUSE", 180, 570, 18, core.PhosphorDim)
	}
}

// drawTuningPanel lists the values adjustable while paused.
func drawTuningPanel(s *Stage, r core.VectorSurface) {
	r.DrawText("PAUSED", 360, 180, 24, core.Amber)
	r.DrawText(fmt.Sprintf("GRAVITY %5.1f   1 -  2 +", s.phys.Gravity), 260, 220, 16, core.Phosphor)
	r.DrawText(fmt.Sprintf("THRUST  %5.1f   3 -  4 +", s.phys.ThrustPower), 260, 245, 16, core.Phosphor)
	r.DrawText(fmt.Sprintf("FUEL    %5.0f   5 -  6 +", s.body.Fuel), 260, 270, 16, core.Phosphor)
	r.DrawText("P TO RESUME", 330, 310, 16, core.PhosphorDim)
}

func drawSkipHint(r core.VectorSurface) {
	r.DrawText("SPACE TO SKIP", 330, 570, 16, core.PhosphorDim)
}
