package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/registry"
	"github.com/vovakirdan/pentix/internal/storage"
)

// Model is the Bubble Tea model for running a game, locally or inside an
// SSH session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	palette    *Palette
	log        *log.Logger

	width, height int

	quitting      bool
	quitRequested bool
	leaving       bool // esc pressed, hand control back after the stop tick
	backToMenu    bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The store may be nil; scores are then not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			cfg.BestScore = best
		}
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		palette:    NewPalette(nil),
		log:        log.New(io.Discard),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.config.ScreenH = m.screen.Height()
	return m
}

// WithLogger sets the logger used for platform warnings.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.log = l
	}
	return m
}

// WithPalette sets the styles used for output, e.g. a per-session palette.
func (m Model) WithPalette(p *Palette) Model {
	if p != nil {
		m.palette = p
		m.help.Styles.ShortKey = p.help
		m.help.Styles.ShortDesc = p.help
		m.help.Styles.FullKey = p.help
		m.help.Styles.FullDesc = p.help
	}
	return m
}

// WithBackToMenu enables esc as "stop and return to the menu".
func (m Model) WithBackToMenu() Model {
	m.keys.EnableBack()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, keys.Shot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Back):
		m.inputFrame.Set(core.ActionStop)
		m.leaving = true
		return m, nil
	}

	// Quit is delivered to the game first so it can close its session.
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitRequested = true
	}
	return m, nil
}

// handleMouse turns pointer events into hover positions and clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.inputFrame.Hover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.inputFrame.Hover(msg.X, msg.Y)
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
	return m, nil
}

// relayout sizes the game screen to the window minus the help footer.
func (m *Model) relayout() {
	m.help.Width = m.width
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	// Games without Resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// gameHeight is the number of rows left for the game above the help view.
func (m Model) gameHeight() int {
	h := m.height - lipgloss.Height(m.helpView())
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) helpView() string {
	return m.help.View(m.keys.Keys())
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.recordScore(result.State.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Quit || m.quitRequested {
		m.quitting = true
		return m, tea.Quit
	}
	if m.leaving {
		m.backToMenu = true
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordScore stores a finished session's score. Failures are logged; the
// game goes on regardless.
func (m Model) recordScore(score int) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.config.Player, score); err != nil {
		m.log.Warn("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.log.Info("score recorded", "game", m.game.ID(), "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return m.palette.RenderScreen(m.screen) + "\n" + m.helpView()
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
