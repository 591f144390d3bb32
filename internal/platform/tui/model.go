package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sandfall/internal/core"
	"sandfall/internal/sand"
	"sandfall/internal/storage"
)

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Model is the Bubble Tea model running the sand simulation.
type Model struct {
	game       *sand.Game
	canvas     *core.Canvas
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	saved      bool // Whether this session has been written to storage
}

// NewModel creates a new Bubble Tea model for the simulation.
func NewModel(game *sand.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		canvas:     core.NewCanvas(cfg.Cols(), cfg.Rows()),
		store:      store,
		config:     cfg,
		player:     player,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.saveSession()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The grid is fixed for the session; a smaller terminal just
		// clips the view.
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Released and key actions are one-shot; pointer state persists
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveSession writes the session record. Best-effort: the toy keeps working
// without a database.
func (m *Model) saveSession() {
	if m.store == nil || m.saved || m.gameState.Painted == 0 {
		return
	}
	duration := int(time.Since(m.started).Seconds())
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(m.player, m.gameState.Painted, m.gameState.Ticks, duration)
	m.saved = true
}

// View renders the current frame: the canvas plus a one-line HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	var sb strings.Builder
	sb.WriteString(RenderCanvas(m.canvas, m.config.CellW, m.config.CellH))
	sb.WriteByte('\n')
	sb.WriteString(m.hud())
	return sb.String()
}

// hud builds the status line shown under the canvas.
func (m Model) hud() string {
	status := fmt.Sprintf(" %s · sand %d · painted %d · tick %d · drag to paint · p pause · r clear · q quit",
		m.game.Title(), m.gameState.Grains, m.gameState.Painted, m.gameState.Ticks)
	line := hudStyle.Render(status)
	if m.gameState.Paused {
		line += pausedStyle.Render("  PAUSED")
	}
	return line
}

// Run starts the Bubble Tea program for a local session and blocks until
// it exits. A program error is fatal: the core has no defined behavior for
// a half-rendered frame.
func Run(game *sand.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report pointer drags for painting
	)

	_, err := p.Run()
	return err
}
