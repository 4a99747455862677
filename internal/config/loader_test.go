package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	var fromYAML LanderConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultLanderConfig()) {
		t.Errorf("embedded defaults drifted from DefaultLanderConfig:\n%+v\n%+v", fromYAML, DefaultLanderConfig())
	}
}

func TestLoadLanderCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 9.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander: %v", err)
	}
	if cfg.Physics.Gravity != 9.5 {
		t.Errorf("gravity = %g, want 9.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.ThrustPower != 60 {
		t.Errorf("thrust_power = %g, want default 60", cfg.Physics.ThrustPower)
	}
}

func TestLoadLanderCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLander(filepath.Join(dir, "missing.yaml")); err == nil ||
		!strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLander(broken); err == nil ||
		!strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed file error = %v", err)
	}
}

func TestLoadLanderLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", landerFile), []byte("camera:\n  max_zoom: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander: %v", err)
	}
	if cfg.Camera.MaxZoom != 4 {
		t.Errorf("max_zoom = %g, want 4", cfg.Camera.MaxZoom)
	}
}

func TestLoadLanderFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLanderConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"EASY", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPresetsStayValid(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultLanderConfig()
		ApplyLanderPreset(&cfg, p)
		warnings, err := cfg.Validate()
		if err != nil {
			t.Errorf("%s: %v", p, err)
		}
		if len(warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", p, warnings)
		}
	}

	easy, hard := DefaultLanderConfig(), DefaultLanderConfig()
	ApplyLanderPreset(&easy, DifficultyEasy)
	ApplyLanderPreset(&hard, DifficultyHard)
	if easy.Landing.MaxSpeed <= hard.Landing.MaxSpeed {
		t.Error("easy should tolerate faster touchdowns than hard")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*LanderConfig)
		wantErr  bool
		wantWarn bool
	}{
		{"defaults", func(*LanderConfig) {}, false, false},
		{"inner equals outer", func(c *LanderConfig) { c.Pad.InnerRadius = c.Pad.OuterRadius }, true, false},
		{"zero step", func(c *LanderConfig) { c.Terrain.Step = 0 }, true, false},
		{"fuel above 100", func(c *LanderConfig) { c.Physics.InitialFuel = 150 }, true, false},
		{"zoom below one", func(c *LanderConfig) { c.Camera.MaxZoom = 0.5 }, true, false},
		{"pad touches edge", func(c *LanderConfig) { c.Pad.CenterXRange = 700 }, true, false},
		{"outer ring wider than pad", func(c *LanderConfig) { c.Pad.OuterRadius = 80 }, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			tt.mutate(&cfg)
			warnings, err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if (len(warnings) > 0) != tt.wantWarn {
				t.Errorf("warnings = %v, wantWarn %v", warnings, tt.wantWarn)
			}
		})
	}
}

func TestNudge(t *testing.T) {
	if got := Nudge(98, FuelStep, MinFuel, MaxFuel); got != MaxFuel {
		t.Errorf("Nudge overflow = %g", got)
	}
	if got := Nudge(1, -GravityStep, MinGravity, MaxGravity); got != MinGravity {
		t.Errorf("Nudge underflow = %g", got)
	}
	if got := Nudge(25, GravityStep, MinGravity, MaxGravity); got != 30 {
		t.Errorf("Nudge = %g", got)
	}
}
