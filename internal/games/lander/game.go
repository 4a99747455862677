package lander

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// StageID is the registry id of the lunar descent stage.
const StageID = "stage1"

// Package-level config options, set before creating a stage
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig loads the effective stage configuration: file, preset, validation.
// Validation warnings are logged, not returned.
func LoadConfig(logger *log.Logger) (config.LanderConfig, error) {
	cfg, err := config.LoadLander(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyLanderPreset(&cfg, difficultyPreset)
	warnings, err := cfg.Validate()
	if err != nil {
		return cfg, err
	}
	for _, w := range warnings {
		logger.Warn("config", "warning", w)
	}
	return cfg, nil
}

// Stage orchestrates one descent: intro, flight, judging and rendering.
// All simulation state is owned here; the surface and hud only receive output.
type Stage struct {
	cfg     config.LanderConfig
	phys    config.PhysicsConfig // cfg.Physics plus tuning panel changes
	surface core.VectorSurface
	hud     core.Hud
	log     *log.Logger

	rng *rand.Rand // Terrain and stars
	fx  *rand.Rand // Flame flicker, kept apart so rendering never shifts terrain

	body     Body
	controls Controls
	pad      Pad
	terrain  Terrain
	stars    starField
	intro    *Intro
	judge    *Judge
	zoom     float64 // Gameplay zoom

	starTime   float64
	flightSecs float64
	score      int
	paused     bool
	backToMenu bool
	report     *core.FlightReport
	fault      error
}

// New creates a stage from an explicit configuration and enters the intro.
func New(env registry.Env, cfg config.LanderConfig) (*Stage, error) {
	if env.Surface == nil || env.Hud == nil {
		return nil, fmt.Errorf("lander: surface and hud are required")
	}
	if _, err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Stage{
		cfg:     cfg,
		phys:    cfg.Physics,
		surface: env.Surface,
		hud:     env.Hud,
		log:     env.Log().With("stage", StageID),
		rng:     rand.New(rand.NewSource(seed)),
		fx:      rand.New(rand.NewSource(seed + 1)),
		intro:   NewIntro(cfg.Intro),
		judge:   NewJudge(cfg.Landing, cfg.Scoring),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the unique identifier for this stage.
func (s *Stage) ID() string {
	return StageID
}

// Title returns the display name for this stage.
func (s *Stage) Title() string {
	return "Lunar Descent"
}

// Field returns the playfield size in world units.
func (s *Stage) Field() (w, h float64) {
	return s.cfg.Field.Width, s.cfg.Field.Height
}

// Init enters the intro with fresh terrain and craft.
func (s *Stage) Init() {
	if err := s.Restart(); err != nil {
		s.fail(err)
	}
}

// Restart discards the current descent and rebuilds everything from scratch.
// Tuning panel changes to gravity and thrust survive.
func (s *Stage) Restart() error {
	s.pad = RandomPad(s.rng, s.cfg.Pad)
	s.terrain = GenerateTerrain(s.rng, s.cfg.Field.Width, s.pad, s.cfg.Terrain)
	if err := s.terrain.Validate(s.pad); err != nil {
		return s.fail(fmt.Errorf("lander: restart: %w", err))
	}
	s.stars = newStarField(s.rng, s.cfg.Field.Stars, s.cfg.Field.Width, s.cfg.Field.Height*2/3)

	s.body = Body{Fuel: s.cfg.Physics.InitialFuel}
	s.body.Place(s.cfg.Intro.Staging)
	s.controls = Controls{}
	s.intro.Reset()
	s.judge.Reset()
	s.zoom = 1

	s.starTime = 0
	s.flightSecs = 0
	s.score = 0
	s.paused = false
	s.backToMenu = false
	s.report = nil
	s.fault = nil

	s.hud.Update(core.HudUpdate{
		Score:           core.Ptr(0),
		Fuel:            core.Ptr(s.body.Fuel),
		AltitudeUnknown: true,
	})
	s.log.Debug("restart", "pad_x", s.pad.CenterX, "pad_y", s.pad.Y, "samples", len(s.terrain))
	return nil
}

// Update advances the stage by dt seconds.
// Once a tick fails the stage stays faulted until Restart.
func (s *Stage) Update(dt float64) error {
	if s.fault != nil {
		return s.fault
	}
	dt = s.clampDt(dt)
	s.starTime += dt

	if s.intro.Active() {
		before := s.intro.Phase()
		if s.intro.Update(dt, &s.body) {
			s.startFlight()
		} else if p := s.intro.Phase(); p != before {
			s.log.Debug("intro phase", "from", before, "to", p)
		}
		return nil
	}

	if s.paused || s.judge.Done() {
		return nil
	}

	s.controls.Apply(&s.body, dt, s.phys)
	s.body.Integrate(dt, s.phys, s.cfg.Field)
	if err := s.body.Check(); err != nil {
		return s.fail(err)
	}
	s.flightSecs += dt

	alt := s.altitude()
	s.zoom = ZoomForAltitude(alt, s.cfg.Camera)

	if r := s.judge.Check(&s.body, s.terrain, s.pad); r != nil {
		r.FlightSecs = s.flightSecs
		s.report = r
		s.score = r.Score
		if r.Outcome == core.OutcomeLanded {
			s.hud.Update(core.HudUpdate{Score: core.Ptr(r.Score)})
		}
		s.log.Info("touchdown",
			"outcome", r.Outcome,
			"speed", fmt.Sprintf("%.1f", r.Speed),
			"tilt", fmt.Sprintf("%.3f", r.Tilt),
			"offset", fmt.Sprintf("%.1f", r.PadOffset),
			"score", r.Score)
		alt = s.altitude()
	}

	s.hud.Update(core.HudUpdate{
		Fuel:     core.Ptr(s.body.Fuel),
		Altitude: core.Ptr(math.Max(0, alt)),
	})
	return nil
}

// HandleKeyDown routes a key press. Held keys only register during
// unpaused gameplay; unknown codes are ignored.
func (s *Stage) HandleKeyDown(code core.KeyCode) {
	action := core.ActionForKey(code)

	switch action {
	case core.ActionNone:
		return
	case core.ActionPause:
		s.togglePause()
		return
	case core.ActionSkipIntro:
		if s.intro.Active() {
			s.intro.Skip(&s.body)
			s.log.Debug("intro skipped")
			s.startFlight()
		}
		return
	case core.ActionMenu:
		s.paused = false
		s.backToMenu = true
		s.log.Debug("back to menu")
		return
	}

	if s.intro.Active() {
		return
	}
	if s.paused {
		s.tune(action)
		return
	}

	switch action {
	case core.ActionThrust:
		s.controls.Thrust = true
	case core.ActionRotateLeft:
		s.controls.RotateLeft = true
	case core.ActionRotateRight:
		s.controls.RotateRight = true
	case core.ActionRestart:
		if s.judge.Done() {
			_ = s.Restart()
		}
	}
}

// HandleKeyUp releases a held key. Always honoured, so keys never stick
// across a pause.
func (s *Stage) HandleKeyUp(code core.KeyCode) {
	switch core.ActionForKey(code) {
	case core.ActionThrust:
		s.controls.Thrust = false
	case core.ActionRotateLeft:
		s.controls.RotateLeft = false
	case core.ActionRotateRight:
		s.controls.RotateRight = false
	}
}

// State returns the stage summary for the host.
func (s *Stage) State() core.StageState {
	return core.StageState{
		Score:      s.score,
		GameOver:   s.judge.Done(),
		Paused:     s.paused,
		InIntro:    s.intro.Active(),
		BackToMenu: s.backToMenu,
		Report:     s.report,
	}
}

// Render paints the current frame.
func (s *Stage) Render() {
	s.surface.Clear()
	s.stars.draw(s.surface, s.starTime)
	s.view().draw(s, s.surface)
}

// startFlight pushes the opening altitude once the cinematic hands over.
func (s *Stage) startFlight() {
	s.zoom = 1
	s.log.Debug("intro phase", "to", PhasePlaying)
	s.hud.Update(core.HudUpdate{Altitude: core.Ptr(s.altitude())})
}

func (s *Stage) togglePause() {
	if s.intro.Active() {
		return
	}
	s.paused = !s.paused
	s.log.Debug("pause", "paused", s.paused)
}

// tune applies a tuning panel key while paused.
func (s *Stage) tune(a core.Action) {
	switch a {
	case core.ActionGravityDown:
		s.phys.Gravity = config.Nudge(s.phys.Gravity, -config.GravityStep, config.MinGravity, config.MaxGravity)
	case core.ActionGravityUp:
		s.phys.Gravity = config.Nudge(s.phys.Gravity, config.GravityStep, config.MinGravity, config.MaxGravity)
	case core.ActionThrustDown:
		s.phys.ThrustPower = config.Nudge(s.phys.ThrustPower, -config.ThrustStep, config.MinThrust, config.MaxThrust)
	case core.ActionThrustUp:
		s.phys.ThrustPower = config.Nudge(s.phys.ThrustPower, config.ThrustStep, config.MinThrust, config.MaxThrust)
	case core.ActionFuelDown, core.ActionFuelUp:
		step := float64(config.FuelStep)
		if a == core.ActionFuelDown {
			step = -step
		}
		s.body.Fuel = config.Nudge(math.Floor(s.body.Fuel), step, config.MinFuel, config.MaxFuel)
		s.hud.Update(core.HudUpdate{Fuel: core.Ptr(s.body.Fuel)})
	default:
		return
	}
	s.log.Debug("tuning", "gravity", s.phys.Gravity, "thrust", s.phys.ThrustPower, "fuel", s.body.Fuel)
}

// altitude is the undercarriage clearance above the pad level.
func (s *Stage) altitude() float64 {
	return s.pad.Y - s.body.Y - s.cfg.Landing.Undercarriage
}

// camera returns the current world-to-screen transform, focused on the craft.
func (s *Stage) camera() Camera {
	zoom := s.zoom
	if s.intro.Active() {
		zoom = s.intro.Zoom()
	}
	return Camera{
		Zoom:   zoom,
		Focus:  s.body.Pos(),
		Anchor: s.anchor(),
	}
}

func (s *Stage) anchor() core.Point {
	return core.Pt(s.cfg.Field.Width/2, s.cfg.Field.Height/2)
}

// clampDt maps NaN and negative steps to 0 and caps the rest at MaxDt.
func (s *Stage) clampDt(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, s.cfg.Physics.MaxDt)
}

func (s *Stage) fail(err error) error {
	s.fault = err
	s.log.Error("stage fault", "err", err)
	return err
}

func init() {
	registry.Register(StageID, "Lunar Descent", func(env registry.Env) (registry.Stage, error) {
		cfg, err := LoadConfig(env.Log())
		if err != nil {
			return nil, err
		}
		return New(env, cfg)
	})
}
