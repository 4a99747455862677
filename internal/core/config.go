package core

// RuntimeConfig contains configuration passed to stages at construction.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed for terrain, stars and flame flicker
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the terminal result of a descent.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLanded
	OutcomeCrashed
)

// String returns the lower-case name stored in the flight log.
func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "flying"
	}
}

// FlightReport is the touchdown telemetry of a finished descent.
type FlightReport struct {
	Outcome    Outcome
	Speed      float64 // |v| at contact
	Tilt       float64 // |rotation| at contact, radians
	PadOffset  float64 // |x - pad center|
	OnPad      bool
	Fuel       float64 // remaining fuel percentage
	FlightSecs float64 // gameplay seconds from end of intro to contact
	Score      int
}

// StageState summarizes a stage for its host.
type StageState struct {
	Score      int
	GameOver   bool // An outcome was reached
	Paused     bool
	InIntro    bool
	BackToMenu bool // The operator asked to leave the stage
	Report     *FlightReport
}
