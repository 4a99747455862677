package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

const probeID = "tui-probe"

// probeStage records host calls and draws one line plus a HUD update.
type probeStage struct {
	env      registry.Env
	downs    []core.KeyCode
	ups      []core.KeyCode
	dts      []float64
	restarts int
	failNext bool
	state    core.StageState
}

var lastProbe *probeStage

func init() {
	registry.Register(probeID, "Probe", func(env registry.Env) (registry.Stage, error) {
		lastProbe = &probeStage{env: env}
		return lastProbe, nil
	})
}

func (p *probeStage) ID() string    { return probeID }
func (p *probeStage) Title() string { return "Probe" }
func (p *probeStage) Init()         {}

func (p *probeStage) Restart() error {
	p.restarts++
	p.state = core.StageState{}
	return nil
}

func (p *probeStage) Update(dt float64) error {
	p.dts = append(p.dts, dt)
	if p.failNext {
		p.failNext = false
		return errors.New("probe fault")
	}
	return nil
}

func (p *probeStage) Render() {
	p.env.Surface.Clear()
	p.env.Surface.DrawLine(0, 300, 800, 300, core.Phosphor)
	p.env.Hud.Update(core.HudUpdate{Score: core.Ptr(7)})
}

func (p *probeStage) HandleKeyDown(code core.KeyCode) { p.downs = append(p.downs, code) }
func (p *probeStage) HandleKeyUp(code core.KeyCode)   { p.ups = append(p.ups, code) }
func (p *probeStage) State() core.StageState          { return p.state }

func newProbeModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(probeID, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelUnknownStage(t *testing.T) {
	if _, err := NewModel("no-such-stage", nil, core.DefaultConfig(), nil); err == nil {
		t.Error("NewModel() accepted an unknown stage")
	}
}

func TestModelKeyHoldRelease(t *testing.T) {
	m := newProbeModel(t, nil)
	probe := lastProbe

	m, _ = step(t, m, runeKey('w'))
	m, _ = step(t, m, runeKey('p'))
	if len(probe.downs) != 2 || probe.downs[0] != core.KeyW || probe.downs[1] != core.KeyP {
		t.Fatalf("downs = %v", probe.downs)
	}

	// Only the held key is released, once its window has passed
	m, _ = step(t, m, TickMsg(time.Now().Add(time.Second)))
	if len(probe.ups) != 1 || probe.ups[0] != core.KeyW {
		t.Errorf("ups = %v", probe.ups)
	}
}

func TestModelTickDt(t *testing.T) {
	m := newProbeModel(t, nil)
	probe := lastProbe

	t0 := time.Unix(5000, 0)
	m, cmd := step(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick loop stopped")
	}
	m, _ = step(t, m, TickMsg(t0.Add(30*time.Millisecond)))

	if len(probe.dts) != 2 {
		t.Fatalf("dts = %v", probe.dts)
	}
	if probe.dts[0] != 0.02 {
		t.Errorf("first dt = %g, want one tick at 50 fps", probe.dts[0])
	}
	if probe.dts[1] < 0.0299 || probe.dts[1] > 0.0301 {
		t.Errorf("second dt = %g, want 0.03", probe.dts[1])
	}
}

func TestModelRestartsFaultedStage(t *testing.T) {
	m := newProbeModel(t, nil)
	probe := lastProbe

	m, _ = step(t, m, runeKey('a'))
	probe.failNext = true
	_, cmd := step(t, m, TickMsg(time.Now()))

	if probe.restarts != 1 {
		t.Errorf("restarts = %d, want 1", probe.restarts)
	}
	if len(probe.ups) != 1 || probe.ups[0] != core.KeyA {
		t.Errorf("held key not released on fault: %v", probe.ups)
	}
	if cmd == nil {
		t.Error("tick loop stopped after a fault")
	}
}

func TestModelRecordsOutcomeOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "flights.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newProbeModel(t, store)
	probe := lastProbe
	probe.state = core.StageState{
		GameOver: true,
		Report:   &core.FlightReport{Outcome: core.OutcomeLanded, Speed: 12, Fuel: 40},
	}

	now := time.Now()
	for i := 0; i < 5; i++ {
		m, _ = step(t, m, TickMsg(now.Add(time.Duration(i)*20*time.Millisecond)))
	}

	flights, err := store.RecentFlights(probeID, 10)
	if err != nil {
		t.Fatalf("RecentFlights() failed: %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("recorded %d flights, want 1", len(flights))
	}

	// A new descent ending again is a new row
	probe.state = core.StageState{}
	m, _ = step(t, m, TickMsg(now.Add(time.Second)))
	probe.state.Report = &core.FlightReport{Outcome: core.OutcomeCrashed, Speed: 80}
	step(t, m, TickMsg(now.Add(2*time.Second)))

	flights, _ = store.RecentFlights(probeID, 10)
	if len(flights) != 2 || flights[0].Outcome != "crashed" {
		t.Errorf("flights = %+v", flights)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newProbeModel(t, nil)
	m.exitOnMenu = true
	probe := lastProbe

	m, _ = step(t, m, runeKey('d'))
	probe.state.BackToMenu = true
	m, cmd := step(t, m, runeKey('b'))

	if !m.BackToMenu() {
		t.Fatal("BackToMenu() = false")
	}
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("back to menu did not quit the standalone program")
	}
	if len(probe.ups) == 0 || probe.ups[0] != core.KeyD {
		t.Errorf("held keys not released: %v", probe.ups)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newProbeModel(t, nil)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c did not quit")
	}
	if m.View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestModelViewComposesHudAndRaster(t *testing.T) {
	m := newProbeModel(t, nil)
	m.View()

	if row := m.screen.Row(0); !strings.Contains(row, "SCORE: 7") {
		t.Errorf("HUD row = %q", row)
	}
	braille := false
	for y := 1; y < m.screen.Height(); y++ {
		for _, r := range m.screen.Row(y) {
			if r >= brailleBase && r < brailleBase+0x100 {
				braille = true
			}
		}
	}
	if !braille {
		t.Error("raster not flushed below the HUD")
	}
}

func TestModelResizeKeepsStage(t *testing.T) {
	m := newProbeModel(t, nil)
	probe := lastProbe

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if cols, rows := m.raster.Size(); cols != 100 || rows != 29 {
		t.Errorf("raster = %dx%d", cols, rows)
	}
	if probe.restarts != 0 {
		t.Error("resize restarted the stage")
	}
}

func TestModelTooSmallNotice(t *testing.T) {
	m := newProbeModel(t, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	m.View()

	if got := m.screen.Get(0, 0); got != '┌' {
		t.Errorf("corner = %q, want box frame", got)
	}
	if row := m.screen.Row(2); !strings.Contains(row, "need 40x10") {
		t.Errorf("notice row = %q", row)
	}
}
