package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/eventlog"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the terminal shell.
type Options struct {
	FieldWidth  int
	FieldHeight int
	Cols, Rows  int // initial terminal size; 0 uses 80x24
	Logger      *log.Logger
	FirstHold   int // ticks a first key press stays held
	RepeatHold  int // ticks an auto-repeated press stays held
}

// Model is the Bubble Tea model running the shooter in a terminal.
type Model struct {
	game    core.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	surface *Surface
	screen  *core.Screen
	styles  styleCache

	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model
	hold    *HoldTracker
	pending core.InputFrame // one-shot events since the last tick

	tick      int
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = defaultCols, defaultRows
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    game,
		config:  cfg,
		logger:  logger,
		surface: NewSurface(opts.FieldWidth, opts.FieldHeight, opts.Cols, opts.Rows-1),
		screen:  core.NewScreen(opts.Cols, opts.Rows-1),
		styles:  make(styleCache),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		hold:    NewHoldTracker(opts.FirstHold, opts.RepeatHold),
		pending: core.NewInputFrame(),
	}
	m.help.Width = opts.Cols
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.mapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.mapper.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction records input until the next tick. Held actions go through
// the hold tracker; events are queued for exactly one tick.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch {
	case a == core.ActionNone:
	case IsHeld(a):
		m.hold.Press(a, m.tick)
	default:
		m.pending.Set(a)
	}
	return m, nil
}

// handleResize refits the field into the new terminal size. The game keeps
// running; only the rasterization changes. One row is kept for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-1, 0)
	m.surface.Resize(msg.Width, rows)
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.hold.Fill(&frame, m.tick)
	m.pending.Clear()
	m.tick++

	result := m.game.Step(frame)
	m.gameState = result.State
	eventlog.Write(m.logger, result.Events)

	if result.Quit {
		m.logger.Info("quit requested", "level", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameState.Phase != core.PhasePlaying {
		// Keys held when a session ends should not leak into the next one.
		m.hold.Release()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.surface.Clear()
	m.game.Render(m.surface)
	m.surface.Present(m.screen)

	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState { return m.gameState }

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks start a session
	)

	_, err := p.Run()
	return err
}
