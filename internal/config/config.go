// Package config provides YAML-based stage configuration loading, difficulty
// presets and validation for the lander.
package config

// LanderConfig contains all tuning for the lunar lander stage.
type LanderConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Landing LandingConfig `yaml:"landing"`
	Pad     PadConfig     `yaml:"pad"`
	Scoring ScoringConfig `yaml:"scoring"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Intro   IntroConfig   `yaml:"intro"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WrapMargin float64 `yaml:"wrap_margin"` // How far past an edge the craft travels before re-entering
	Ceiling    float64 `yaml:"ceiling"`     // Minimum y of the craft reference point
	Stars      int     `yaml:"stars"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Units per second squared, downward
	ThrustPower   float64 `yaml:"thrust_power"`   // Main engine acceleration
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second
	BurnRate      float64 `yaml:"burn_rate"`      // Fuel percent per second of thrust
	InitialFuel   float64 `yaml:"initial_fuel"`
	MaxDt         float64 `yaml:"max_dt"` // Upper bound of a single step, seconds
}

// LandingConfig defines touchdown tolerances.
type LandingConfig struct {
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxTilt       float64 `yaml:"max_tilt"`      // Radians from upright
	Undercarriage float64 `yaml:"undercarriage"` // Distance from reference point to feet
}

// PadConfig defines landing pad placement and scoring rings.
type PadConfig struct {
	MinCenterX   float64 `yaml:"min_center_x"`
	CenterXRange float64 `yaml:"center_x_range"`
	Width        float64 `yaml:"width"`
	BaseY        float64 `yaml:"base_y"`
	YJitter      float64 `yaml:"y_jitter"` // Pad y is BaseY +/- YJitter
	InnerRadius  float64 `yaml:"inner_radius"`
	OuterRadius  float64 `yaml:"outer_radius"`
}

// ScoringConfig defines the piecewise landing score.
type ScoringConfig struct {
	MaxScore  int `yaml:"max_score"`  // Inside the inner ring
	RingScore int `yaml:"ring_score"` // At the outer ring
	MinScore  int `yaml:"min_score"`  // On the pad beyond the outer ring
}

// TerrainConfig defines the jagged ground either side of the pad.
type TerrainConfig struct {
	Step       float64 `yaml:"step"`        // Horizontal sample spacing
	BaseJitter float64 `yaml:"base_jitter"` // Side base level is pad y +/- this
	MinRise    float64 `yaml:"min_rise"`    // Samples rise at least this far above the base
	RiseRange  float64 `yaml:"rise_range"`  // ...plus up to this much more
}

// CameraConfig defines the altitude-driven zoom.
type CameraConfig struct {
	ZoomThreshold float64 `yaml:"zoom_threshold"` // Altitude below which zoom ramps up
	MaxZoom       float64 `yaml:"max_zoom"`
}

// IntroConfig defines the undocking cinematic.
type IntroConfig struct {
	DockedSecs     float64    `yaml:"docked_secs"`
	UndockingSecs  float64    `yaml:"undocking_secs"`
	ZoomingSecs    float64    `yaml:"zooming_secs"`
	StartZoom      float64    `yaml:"start_zoom"`
	UndockDistance float64    `yaml:"undock_distance"`
	PulseFrequency float64    `yaml:"pulse_frequency"` // Radians per second of the RCS pulse sine
	PulseThreshold float64    `yaml:"pulse_threshold"` // Sine value above which the pulse fires
	PulseThrust    float64    `yaml:"pulse_thrust"`
	Staging        PoseConfig `yaml:"staging"` // Where the craft sits during the cinematic
	Start          PoseConfig `yaml:"start"`   // Exact gameplay start pose
}

// PoseConfig is a position, velocity and attitude.
type PoseConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Rotation float64 `yaml:"rotation"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
