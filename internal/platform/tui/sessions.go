package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sandfall/internal/storage"
)

const maxSessions = 100 // Max sessions to load into the browser

// SessionsKeyMap defines the key bindings for the session browser.
type SessionsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for browsing past play sessions.
type SessionsModel struct {
	store    *storage.Store
	totals   storage.Totals
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates a new session browser.
func NewSessionsModel(store *storage.Store, width, height int) SessionsModel {
	keys := DefaultSessionsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadSessions()

	return m
}

// createTable creates the table with appropriate columns.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Player", Width: 12},
		{Title: "Grains", Width: 8},
		{Title: "Ticks", Width: 10},
		{Title: "Duration", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-6), // Leave room for header, totals, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions fills the table from storage.
func (m *SessionsModel) loadSessions() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	entries, err := m.store.RecentSessions(maxSessions)
	if err != nil {
		m.table.SetRows(nil)
		return
	}
	if totals, err := m.store.GetTotals(); err == nil {
		m.totals = totals
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Player,
			fmt.Sprintf("%d", e.Grains),
			fmt.Sprintf("%d", e.Ticks),
			(time.Duration(e.DurationSecs) * time.Second).String(),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 6)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Sandfall sessions")
	totals := hudStyle.Render(fmt.Sprintf("%d sessions · %d grains painted · best %d",
		m.totals.Sessions, m.totals.Grains, m.totals.BestGrains))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		totals,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunSessionBrowser starts the session browser and blocks until it exits.
func RunSessionBrowser(store *storage.Store, width, height int) error {
	model := NewSessionsModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
