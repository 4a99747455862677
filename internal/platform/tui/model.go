package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Playfield size used when a stage does not report its own.
const (
	defaultFieldW = 800
	defaultFieldH = 600
)

// Smallest screen that still fits the HUD line and a readable raster.
const (
	minCols = 40
	minRows = 10
)

// fielder is implemented by stages that know their playfield size.
type fielder interface {
	Field() (w, h float64)
}

// Model is the Bubble Tea model hosting one stage.
// Row 0 holds the HUD line; the raster fills the rest of the screen.
type Model struct {
	stage      registry.Stage
	raster     *Raster
	hud        *HudPanel
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *KeyHolds
	log        *log.Logger
	lastTick   time.Time
	exitOnMenu bool // Quit the program when the stage asks for the menu
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current outcome has been logged
}

// NewModel creates the stage from the registry and wires it to a raster and HUD.
func NewModel(stageID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	raster := NewRaster(cfg.ScreenW, cfg.ScreenH-1, defaultFieldW, defaultFieldH)
	hud := NewHudPanel()

	stage, err := registry.Create(stageID, registry.Env{
		Surface: raster,
		Hud:     hud,
		Runtime: cfg,
		Logger:  logger,
	})
	if err != nil {
		return Model{}, err
	}
	if f, ok := stage.(fielder); ok {
		w, h := f.Field()
		raster.SetField(w, h)
	}

	return Model{
		stage:     stage,
		raster:    raster,
		hud:       hud,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewKeyHolds(),
		log:       logger,
	}, nil
}

// Init starts the tick loop. The stage is already in its intro.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards a press to the stage and tracks it for release.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	code, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if code == "" {
		return m, nil
	}

	m.holds.Press(code, now)
	m.stage.HandleKeyDown(code)
	return m.checkMenu()
}

// handleResize keeps the descent running; only the canvas changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.raster.Resize(msg.Width, msg.Height-1)
	return m, nil
}

// handleTick releases stale keys and advances the stage by the wall time
// since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, code := range m.holds.Expire(now) {
		m.stage.HandleKeyUp(code)
	}

	dt := 1 / float64(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if err := m.stage.Update(dt); err != nil {
		m.log.Error("stage update failed, restarting", "stage", m.stage.ID(), "err", err)
		for _, code := range m.holds.ReleaseAll() {
			m.stage.HandleKeyUp(code)
		}
		if err := m.stage.Restart(); err != nil {
			m.log.Error("stage restart failed", "stage", m.stage.ID(), "err", err)
			m.quitting = true
			return m, tea.Quit
		}
	}

	m.recordOutcome()

	model, cmd := m.checkMenu()
	if cmd != nil {
		return model, cmd
	}
	return model, tickCmd(m.config.TickRate)
}

// recordOutcome logs the finished descent once. Storage failures only warn.
func (m *Model) recordOutcome() {
	report := m.stage.State().Report
	if report == nil {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordFlight(m.stage.ID(), *report); err != nil {
		m.log.Warn("could not record flight", "err", err)
	}
}

// checkMenu reacts to the stage's back-to-menu request.
func (m Model) checkMenu() (Model, tea.Cmd) {
	if !m.stage.State().BackToMenu || m.backToMenu {
		return m, nil
	}
	m.backToMenu = true
	for _, code := range m.holds.ReleaseAll() {
		m.stage.HandleKeyUp(code)
	}
	if m.exitOnMenu {
		return m, tea.Quit
	}
	return m, nil
}

// compose draws the full frame into the screen buffer.
func (m *Model) compose() {
	m.screen.Clear()
	if m.screen.Width() < minCols || m.screen.Height() < minRows {
		m.drawTooSmall()
		return
	}
	m.stage.Render()
	m.raster.Flush(m.screen, 1)
	m.hud.Draw(m.screen, 0)
}

// drawTooSmall frames a notice instead of a squashed playfield.
// The stage keeps running underneath.
func (m *Model) drawTooSmall() {
	w, h := m.screen.Width(), m.screen.Height()
	m.screen.DrawBox(core.NewRect(0, 0, w, h), core.PhosphorDim)
	m.screen.DrawTextCentered(h/2, fmt.Sprintf("need %dx%d", minCols, minRows), core.Amber)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.compose()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.stage.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.compose()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the stage asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one stage in the local terminal. It reports whether the player
// left through the stage's menu key rather than quitting.
func Run(stageID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model, err := NewModel(stageID, store, cfg, logger)
	if err != nil {
		return false, err
	}
	model.exitOnMenu = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
