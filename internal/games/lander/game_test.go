package lander

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// recordingSurface remembers what was drawn in the last frame.
type recordingSurface struct {
	texts  []string
	shapes [][]core.Point
	clears int
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.texts = r.texts[:0]
	r.shapes = r.shapes[:0]
}
func (r *recordingSurface) DrawLine(_, _, _, _ float64, _ core.Color)        {}
func (r *recordingSurface) DrawPolygon(_ []core.Point, _ core.Color, _ bool) {}
func (r *recordingSurface) DrawCircle(_, _, _ float64, _ core.Color)         {}
func (r *recordingSurface) DrawDot(_, _, _ float64, _ core.Color)            {}
func (r *recordingSurface) DrawText(text string, _, _, _ float64, _ core.Color) {
	r.texts = append(r.texts, text)
}
func (r *recordingSurface) DrawShape(local []core.Point, _, _, _, _ float64, _ core.Color) {
	r.shapes = append(r.shapes, local)
}

func (r *recordingSurface) drew(text string) bool {
	return slices.Contains(r.texts, text)
}

func (r *recordingSurface) stamped(shape []core.Point) bool {
	for _, s := range r.shapes {
		if &s[0] == &shape[0] {
			return true
		}
	}
	return false
}

// recordingHud folds partial updates the way a display would.
type recordingHud struct {
	score    int
	fuel     float64
	altitude float64
	altKnown bool
	updates  int
}

func (h *recordingHud) Update(u core.HudUpdate) {
	h.updates++
	if u.Score != nil {
		h.score = *u.Score
	}
	if u.Fuel != nil {
		h.fuel = *u.Fuel
	}
	if u.AltitudeUnknown {
		h.altKnown = false
	} else if u.Altitude != nil {
		h.altitude = *u.Altitude
		h.altKnown = true
	}
}

func newTestStage(t *testing.T) (*Stage, *recordingSurface, *recordingHud) {
	t.Helper()
	surface, hud := &recordingSurface{}, &recordingHud{}
	env := registry.Env{Surface: surface, Hud: hud, Runtime: core.RuntimeConfig{Seed: 42}}
	s, err := New(env, config.DefaultLanderConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, surface, hud
}

// playing returns a stage past the intro.
func playing(t *testing.T) (*Stage, *recordingSurface, *recordingHud) {
	t.Helper()
	s, surface, hud := newTestStage(t)
	s.HandleKeyDown(core.KeySpace)
	if s.State().InIntro {
		t.Fatal("skip did not end the intro")
	}
	return s, surface, hud
}

// hover parks the craft just above the pad center, upright and slow.
func hover(s *Stage, dx, vy float64) {
	s.body.X = s.pad.CenterX + dx
	s.body.Y = s.pad.Y - s.cfg.Landing.Undercarriage - 0.5
	s.body.VX, s.body.VY = 0, vy
	s.body.Rotation = 0
}

func TestNewStartsInIntro(t *testing.T) {
	s, _, hud := newTestStage(t)
	st := s.State()
	if !st.InIntro || st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("state = %+v", st)
	}
	if hud.score != 0 || hud.fuel != 100 || hud.altKnown {
		t.Errorf("hud = %+v, want score 0, fuel 100, altitude placeholder", hud)
	}
	if err := s.terrain.Validate(s.pad); err != nil {
		t.Errorf("terrain: %v", err)
	}
}

func TestNewRequiresCapabilities(t *testing.T) {
	if _, err := New(registry.Env{}, config.DefaultLanderConfig()); err == nil {
		t.Error("expected error without surface and hud")
	}
	bad := config.DefaultLanderConfig()
	bad.Pad.InnerRadius = 100
	env := registry.Env{Surface: &recordingSurface{}, Hud: &recordingHud{}}
	if _, err := New(env, bad); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want config.ErrInvalid", err)
	}
}

func TestIntroRunsIntoGameplay(t *testing.T) {
	s, _, hud := newTestStage(t)
	for i := 0; i < 200 && s.State().InIntro; i++ {
		if err := s.Update(0.05); err != nil {
			t.Fatal(err)
		}
	}
	if s.State().InIntro {
		t.Fatal("intro did not finish")
	}
	assertStartPose(t, s.body)
	if !hud.altKnown || hud.altitude != s.pad.Y-60-30 {
		t.Errorf("hud altitude = %g known=%v", hud.altitude, hud.altKnown)
	}
}

func TestKeysIgnoredDuringIntro(t *testing.T) {
	s, _, _ := newTestStage(t)
	s.HandleKeyDown(core.KeyArrowUp)
	s.HandleKeyDown(core.KeyP)
	if s.controls.Thrust || s.State().Paused {
		t.Error("gameplay keys registered during intro")
	}
	s.HandleKeyDown("F13")
}

func TestPauseFreezesPhysics(t *testing.T) {
	s, _, _ := playing(t)
	s.HandleKeyDown(core.KeyP)
	if !s.State().Paused {
		t.Fatal("not paused")
	}
	before := s.body
	if err := s.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if s.body != before {
		t.Error("body moved while paused")
	}

	s.HandleKeyDown(core.KeyArrowUp)
	if s.controls.Thrust {
		t.Error("thrust registered while paused")
	}

	s.HandleKeyDown(core.KeyP)
	if err := s.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if s.body == before {
		t.Error("body frozen after unpause")
	}
}

func TestHeldKeys(t *testing.T) {
	s, _, _ := playing(t)
	s.HandleKeyDown(core.KeyW)
	s.HandleKeyDown(core.KeyA)
	if !s.controls.Thrust || !s.controls.RotateLeft {
		t.Fatalf("controls = %+v", s.controls)
	}
	fuel := s.body.Fuel
	_ = s.Update(0.1)
	if s.body.Fuel >= fuel {
		t.Error("thrust did not burn fuel")
	}

	s.HandleKeyUp(core.KeyW)
	s.HandleKeyUp(core.KeyArrowLeft)
	if s.controls != (Controls{}) {
		t.Errorf("controls after key up = %+v", s.controls)
	}
}

func TestLandingScoresAndRestart(t *testing.T) {
	s, surface, hud := playing(t)
	hover(s, 0, 5)
	if err := s.Update(0.1); err != nil {
		t.Fatal(err)
	}

	st := s.State()
	if !st.GameOver || st.Report == nil || st.Report.Outcome != core.OutcomeLanded {
		t.Fatalf("state = %+v", st)
	}
	if st.Score != 1000 || hud.score != 1000 {
		t.Errorf("score = %d, hud = %d, want 1000", st.Score, hud.score)
	}
	if math.Abs(hud.altitude) > 1e-9 {
		t.Errorf("hud altitude = %g after touchdown", hud.altitude)
	}

	frozen := s.body
	_ = s.Update(0.1)
	if s.body != frozen {
		t.Error("physics ran after outcome")
	}

	s.Render()
	if !surface.drew("LANDED!") || !surface.drew("PRESS R TO RETRY") {
		t.Errorf("outcome banner missing: %v", surface.texts)
	}

	oldTerrain := slices.Clone(s.terrain)
	s.HandleKeyDown(core.KeyR)
	st = s.State()
	if st.GameOver || !st.InIntro || st.Score != 0 || st.Report != nil {
		t.Errorf("state after restart = %+v", st)
	}
	if hud.score != 0 || hud.fuel != 100 || hud.altKnown {
		t.Errorf("hud after restart = %+v", hud)
	}
	if err := s.terrain.Validate(s.pad); err != nil {
		t.Errorf("terrain after restart: %v", err)
	}
	if slices.Equal(oldTerrain, s.terrain) {
		t.Error("terrain was not regenerated")
	}
}

func TestRestartKeyOnlyAfterOutcome(t *testing.T) {
	s, _, _ := playing(t)
	s.HandleKeyDown(core.KeyR)
	if s.State().InIntro {
		t.Error("R restarted a live descent")
	}
}

func TestCrashHidesCraft(t *testing.T) {
	s, surface, hud := playing(t)
	hover(s, 0, 200)
	_ = s.Update(0.1)

	st := s.State()
	if st.Report == nil || st.Report.Outcome != core.OutcomeCrashed {
		t.Fatalf("report = %+v", st.Report)
	}
	if hud.score != 0 {
		t.Errorf("crash pushed score %d", hud.score)
	}

	s.Render()
	if surface.stamped(hullShape) {
		t.Error("hull drawn after crash")
	}
	if !surface.drew("CRASHED!") {
		t.Errorf("texts = %v", surface.texts)
	}
}

func TestFlightRecordsDuration(t *testing.T) {
	s, _, _ := playing(t)
	for i := 0; i < 3; i++ {
		_ = s.Update(0.1)
	}
	hover(s, 30, 5)
	_ = s.Update(0.1)
	r := s.State().Report
	if r == nil {
		t.Fatal("no touchdown")
	}
	if math.Abs(r.FlightSecs-0.4) > 1e-9 {
		t.Errorf("flight secs = %g, want 0.4", r.FlightSecs)
	}
	if r.Score >= 1000 || r.Score <= 500 {
		t.Errorf("score %d for offset %g, want inside the ring band", r.Score, r.PadOffset)
	}
}

func TestUpdateClampsDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"nan", math.NaN(), 0},
		{"negative", -1, 0},
		{"normal", 0.02, 0.02},
		{"hitch", 5, 0.1},
		{"inf", math.Inf(1), 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := playing(t)
			s.body.Y = 200
			vy := s.body.VY
			if err := s.Update(tt.dt); err != nil {
				t.Fatal(err)
			}
			want := vy + s.phys.Gravity*tt.want
			if math.Abs(s.body.VY-want) > 1e-9 {
				t.Errorf("vy = %g, want %g", s.body.VY, want)
			}
		})
	}
}

func TestFaultPersistsUntilRestart(t *testing.T) {
	s, _, _ := playing(t)
	s.body.VX = math.Inf(1)

	err := s.Update(0.1)
	if !errors.Is(err, ErrStateCorrupt) {
		t.Fatalf("err = %v, want ErrStateCorrupt", err)
	}
	if again := s.Update(0.1); !errors.Is(again, ErrStateCorrupt) {
		t.Errorf("second update err = %v", again)
	}

	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(0.1); err != nil {
		t.Errorf("after restart: %v", err)
	}
}

func TestEscapeRequestsMenu(t *testing.T) {
	s, _, _ := playing(t)
	s.HandleKeyDown(core.KeyP)
	s.HandleKeyDown(core.KeyEscape)
	st := s.State()
	if !st.BackToMenu || st.Paused {
		t.Errorf("state = %+v, want back to menu and unpaused", st)
	}
}

func TestTuningPanel(t *testing.T) {
	s, surface, hud := playing(t)

	s.HandleKeyDown(core.KeyDigit2)
	if s.phys.Gravity != 25 {
		t.Error("tuning applied while not paused")
	}

	s.HandleKeyDown(core.KeyP)
	s.HandleKeyDown(core.KeyDigit2)
	s.HandleKeyDown(core.KeyDigit3)
	s.HandleKeyDown(core.KeyDigit5)
	if s.phys.Gravity != 30 || s.phys.ThrustPower != 55 {
		t.Errorf("phys = %+v", s.phys)
	}
	if s.body.Fuel != 90 || hud.fuel != 90 {
		t.Errorf("fuel = %g, hud = %g, want 90", s.body.Fuel, hud.fuel)
	}

	s.Render()
	if !surface.drew("PAUSED") {
		t.Errorf("panel not drawn: %v", surface.texts)
	}

	for i := 0; i < 30; i++ {
		s.HandleKeyDown(core.KeyDigit1)
	}
	if s.phys.Gravity != 0 {
		t.Errorf("gravity = %g, want clamped at 0", s.phys.Gravity)
	}

	// Tuning survives a restart; fuel does not
	_ = s.Restart()
	if s.phys.Gravity != 0 || s.body.Fuel != 100 {
		t.Errorf("after restart gravity=%g fuel=%g", s.phys.Gravity, s.body.Fuel)
	}
}

func TestRenderStrategyFollowsPhase(t *testing.T) {
	s, surface, _ := newTestStage(t)

	s.Render()
	if !surface.drew("ORION + HLS DOCKED") || !surface.drew("SPACE TO SKIP") {
		t.Errorf("docked frame texts = %v", surface.texts)
	}
	if !surface.stamped(ferryCapsule) || !surface.stamped(hullShape) {
		t.Error("docked frame should show both craft")
	}

	_ = s.Update(2)
	s.Render()
	if !surface.drew("UNDOCKING...") {
		t.Errorf("undocking frame texts = %v", surface.texts)
	}

	_ = s.Update(0.1)
	for s.intro.Phase() == PhaseUndocking {
		_ = s.Update(0.1)
	}
	s.Render()
	if !surface.drew("BEGINNING DESCENT") || surface.stamped(ferryCapsule) {
		t.Errorf("zooming frame texts = %v", surface.texts)
	}

	s.HandleKeyDown(core.KeySpace)
	s.Render()
	if surface.drew("SPACE TO SKIP") || !surface.stamped(hullShape) {
		t.Errorf("gameplay frame texts = %v", surface.texts)
	}
	if surface.clears != 4 {
		t.Errorf("clears = %d, want one per frame", surface.clears)
	}
}

func TestRegisteredFactory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	env := registry.Env{Surface: &recordingSurface{}, Hud: &recordingHud{}, Runtime: core.RuntimeConfig{Seed: 9}}
	st, err := registry.Create(StageID, env)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.ID() != StageID || !st.State().InIntro {
		t.Errorf("stage = %s %+v", st.ID(), st.State())
	}
}
