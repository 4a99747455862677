package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

const maxFlights = 100 // Max flights to load per stage

// FlightLogKeyMap defines the key bindings for the flight log.
type FlightLogKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextStage key.Binding
	PrevStage key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FlightLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextStage, k.PrevStage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k FlightLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextStage, k.PrevStage},
		{k.Back, k.Quit},
	}
}

// DefaultFlightLogKeyMap returns default key bindings.
func DefaultFlightLogKeyMap() FlightLogKeyMap {
	return FlightLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextStage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next stage"),
		),
		PrevStage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev stage"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FlightLogModel is the Bubble Tea model for browsing recorded touchdowns.
type FlightLogModel struct {
	stages      []registry.StageInfo
	stageCursor int
	store       *storage.Store
	flights     []storage.FlightEntry
	stats       *storage.FlightStats
	table       table.Model
	help        help.Model
	keys        FlightLogKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
}

// NewFlightLogModel creates a new flight log model.
func NewFlightLogModel(store *storage.Store, width, height int) FlightLogModel {
	h := help.New()
	h.ShowAll = false

	m := FlightLogModel{
		stages: registry.List(),
		store:  store,
		keys:   DefaultFlightLogKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if len(m.stages) > 0 {
		m.loadFlights(m.stages[0].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *FlightLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 8},
		{Title: "Speed", Width: 7},
		{Title: "Tilt", Width: 6},
		{Title: "Offset", Width: 7},
		{Title: "Fuel", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-10, 3, maxFlights)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("46")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadFlights loads the log and its summary for the given stage.
func (m *FlightLogModel) loadFlights(stageID string) {
	m.flights, m.stats = nil, nil
	if m.store != nil {
		if flights, err := m.store.RecentFlights(stageID, maxFlights); err == nil {
			m.flights = flights
		}
		if stats, err := m.store.Stats(stageID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded flights.
func (m *FlightLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.flights))
	for i, f := range m.flights {
		rows[i] = table.Row{
			fmt.Sprintf("%d", f.ID),
			strings.ToUpper(f.Outcome),
			fmt.Sprintf("%.1f", f.Speed),
			fmt.Sprintf("%.0f°", f.Tilt*180/math.Pi),
			fmt.Sprintf("%.0f", f.PadOffset),
			fmt.Sprintf("%.0f%%", f.Fuel),
			fmt.Sprintf("%.1fs", f.FlightSecs),
			f.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the flight log model.
func (m FlightLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flight log.
func (m FlightLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextStage):
			if len(m.stages) > 0 {
				m.stageCursor = (m.stageCursor + 1) % len(m.stages)
				m.loadFlights(m.stages[m.stageCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevStage):
			if len(m.stages) > 0 {
				m.stageCursor = (m.stageCursor - 1 + len(m.stages)) % len(m.stages)
				m.loadFlights(m.stages[m.stageCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the flight log.
func (m FlightLogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46"))

	title := "FLIGHT LOG"
	if len(m.stages) > 0 {
		title = fmt.Sprintf("FLIGHT LOG - %s", m.stages[m.stageCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected stage.
func (m FlightLogModel) statsLine() string {
	if m.stats == nil || m.stats.Flights == 0 {
		return "no flights"
	}
	line := fmt.Sprintf("flights %d  landed %d  mean touchdown %.1f",
		m.stats.Flights, m.stats.Landed, m.stats.MeanSpeed)
	if m.stats.Landed > 0 {
		line += fmt.Sprintf("  best offset %.1f", m.stats.BestPadOffset)
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m FlightLogModel) renderTableContent() string {
	if len(m.flights) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No flights recorded yet.\nTouch down somewhere to start the log!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m FlightLogModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m FlightLogModel) IsQuitting() bool {
	return m.quitting
}

// RunFlightLog runs the flight log screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunFlightLog(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewFlightLogModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(FlightLogModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
