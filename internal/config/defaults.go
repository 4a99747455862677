package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lander configuration.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Field: FieldConfig{
			Width:      800,
			Height:     600,
			WrapMargin: 50,
			Ceiling:    50,
			Stars:      60,
		},
		Physics: PhysicsConfig{
			Gravity:       25,
			ThrustPower:   60,
			RotationSpeed: 2.5,
			BurnRate:      15,
			InitialFuel:   100,
			MaxDt:         0.1,
		},
		Landing: LandingConfig{
			MaxSpeed:      40,
			MaxTilt:       0.25,
			Undercarriage: 30,
		},
		Pad: PadConfig{
			MinCenterX:   150,
			CenterXRange: 500,
			Width:        120,
			BaseY:        520,
			YJitter:      10,
			InnerRadius:  25,
			OuterRadius:  60,
		},
		Scoring: ScoringConfig{
			MaxScore:  1000,
			RingScore: 500,
			MinScore:  250,
		},
		Terrain: TerrainConfig{
			Step:       30,
			BaseJitter: 10,
			MinRise:    10,
			RiseRange:  40,
		},
		Camera: CameraConfig{
			ZoomThreshold: 200,
			MaxZoom:       2.5,
		},
		Intro: IntroConfig{
			DockedSecs:     2,
			UndockingSecs:  3,
			ZoomingSecs:    2,
			StartZoom:      3.5,
			UndockDistance: 80,
			PulseFrequency: 10,
			PulseThreshold: 0.7,
			PulseThrust:    20,
			Staging:        PoseConfig{X: 400, Y: 200},
			Start: PoseConfig{
				X:        80,
				Y:        60,
				VX:       50,
				VY:       10,
				Rotation: -math.Pi / 2, // Nose pointing left, retrograde
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
