package lander

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestClassify(t *testing.T) {
	limits := config.DefaultLanderConfig().Landing
	tests := []struct {
		name  string
		speed float64
		tilt  float64
		onPad bool
		want  core.Outcome
	}{
		{"gentle on pad", 10, 0, true, core.OutcomeLanded},
		{"at speed limit", limits.MaxSpeed, 0, true, core.OutcomeLanded},
		{"too fast", limits.MaxSpeed + 1, 0, true, core.OutcomeCrashed},
		{"too tilted", 0, limits.MaxTilt + 0.01, true, core.OutcomeCrashed},
		{"off pad", 0, 0, false, core.OutcomeCrashed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.speed, tt.tilt, tt.onPad, limits); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreBands(t *testing.T) {
	sc := config.DefaultLanderConfig().Scoring
	pad := Pad{InnerRadius: 25, OuterRadius: 60}

	tests := []struct {
		dist float64
		want int
	}{
		{0, 1000},
		{25, 1000},
		{42.5, 750},
		{60, 500},
		{61, 250},
		{200, 250},
	}
	for _, tt := range tests {
		if got := Score(tt.dist, pad, sc); got != tt.want {
			t.Errorf("Score(%g) = %d, want %d", tt.dist, got, tt.want)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	sc := config.DefaultLanderConfig().Scoring
	pad := Pad{InnerRadius: 25, OuterRadius: 60}
	prev := Score(0, pad, sc)
	for d := 0.0; d <= 100; d += 0.25 {
		got := Score(d, pad, sc)
		if got > prev {
			t.Fatalf("score rose from %d to %d at dist %g", prev, got, d)
		}
		prev = got
	}
}

func flatGround(y float64) (Terrain, Pad) {
	pad := Pad{CenterX: 400, Width: 120, Y: y, InnerRadius: 25, OuterRadius: 60}
	return Terrain{{X: 0, Y: y - 30}, {X: 340, Y: y}, {X: 460, Y: y}, {X: 800, Y: y - 30}}, pad
}

func TestJudgeCheck(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain, pad := flatGround(520)

	j := NewJudge(cfg.Landing, cfg.Scoring)
	b := Body{X: 400, Y: 400, VY: 10, Fuel: 42}
	if r := j.Check(&b, terrain, pad); r != nil {
		t.Fatalf("contact reported at altitude: %+v", r)
	}

	b.Y = 520 - 30 + 2
	r := j.Check(&b, terrain, pad)
	if r == nil {
		t.Fatal("no contact below ground")
	}
	if r.Outcome != core.OutcomeLanded || r.Score != 1000 || !r.OnPad || r.Fuel != 42 {
		t.Errorf("report = %+v", r)
	}
	if r.Speed != 10 {
		t.Errorf("speed = %g, want pre-contact 10", r.Speed)
	}
	if b.Y != 490 || b.VX != 0 || b.VY != 0 {
		t.Errorf("body not frozen on surface: %+v", b)
	}
	if !j.Done() || j.Outcome() != core.OutcomeLanded {
		t.Error("judge did not latch outcome")
	}
	if again := j.Check(&b, terrain, pad); again != nil {
		t.Error("judge reported a second touchdown")
	}

	j.Reset()
	if j.Done() {
		t.Error("Reset did not return to flying")
	}
}

func TestJudgeCrashOffPad(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain, pad := flatGround(520)
	j := NewJudge(cfg.Landing, cfg.Scoring)

	b := Body{X: 100, Y: 520}
	r := j.Check(&b, terrain, pad)
	if r == nil || r.Outcome != core.OutcomeCrashed || r.OnPad {
		t.Fatalf("report = %+v", r)
	}
	if r.Score != 0 {
		t.Errorf("crash scored %d", r.Score)
	}
}

func TestJudgeFallbackBeyondTerrain(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	terrain, pad := flatGround(520)
	j := NewJudge(cfg.Landing, cfg.Scoring)

	b := Body{X: 840, Y: 489}
	if r := j.Check(&b, terrain, pad); r != nil {
		t.Fatalf("contact above pad level fallback: %+v", r)
	}
	b.Y = 491
	if r := j.Check(&b, terrain, pad); r == nil {
		t.Fatal("no contact at pad level beyond the last sample")
	}
}
