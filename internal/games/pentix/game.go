// Package pentix adapts the Pentix engine to the arcade platform: it turns
// fixed simulation ticks into fall and boost ticks, dispatches keys and
// button clicks, draws the board and persists snapshots.
package pentix

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
	"github.com/vovakirdan/pentix/internal/registry"
)

// Registered game IDs.
const (
	IDPentix  = "pentix"
	IDClassic = "pentix_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(IDPentix, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

var _ registry.Resizer = (*Game)(nil)

// statusDuration is how long a status message stays on screen.
const statusDuration = 3 * time.Second

// Game implements registry.Game for Pentix.
type Game struct {
	id      string
	catalog string // forced catalog, empty means the configured one

	cfg     config.PentixConfig
	runtime core.RuntimeConfig
	ctrl    *engine.Controller
	log     *log.Logger

	// Simulation tick bookkeeping
	tickRate     int
	fallCounter  int
	boostTicks   int
	boostCounter int
	boostHold    int // ticks a soft-drop press keeps boosting
	boostLeft    int

	// active is set while a session is in progress; it is cleared when the
	// session ends so the end is reported once.
	active bool

	buttons []Button
	hover   Command
	view    layout

	status      string
	statusTicks int
}

// New creates a Pentix game using the configured shape catalog.
func New() *Game {
	return &Game{id: IDPentix, log: logger}
}

// NewClassic creates a Pentix game restricted to the tetrominoes.
func NewClassic() *Game {
	return &Game{id: IDClassic, catalog: engine.CatalogClassic, log: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDClassic {
		return "Pentix Classic"
	}
	return "Pentix"
}

// Reset loads the configuration, creates a fresh controller and starts a
// game at the selected difficulty.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.log = logger.With("game", g.id)
	if runtime.Player != "" {
		g.log = g.log.With("player", runtime.Player)
	}

	cfg, err := config.LoadPentix(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultPentixConfig()
	}
	if g.catalog != "" {
		cfg.Pieces.Catalog = g.catalog
	}
	g.cfg = cfg

	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.tickRate = runtime.TickRate
	g.boostTicks = ticksFor(cfg.Timing.BoostInterval(), g.tickRate)
	g.boostHold = ticksFor(cfg.Timing.BoostHold(), g.tickRate)

	g.ctrl = engine.NewController(cfg.EngineOptions(runtime.Seed))
	g.ctrl.SetHighScore(runtime.BestScore)
	g.hover = CmdNone
	g.status = ""
	g.statusTicks = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	level := cfg.Difficulty.Preset.Level()
	if runtime.StartLevel > 0 {
		level = runtime.StartLevel
	}
	g.start(level)
}

// Resize adapts the layout to a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = computeLayout(w, h, g.cfg.Board.Width, g.cfg.Board.Height)
	g.buttons = nil
	g.hover = CmdNone
	// A too-small window shows no buttons, so nothing is clickable
	if !g.view.tooSmall {
		g.buttons = layoutButtons(g.view.panelX, g.view.buttonsY, panelWidth)
	}
}

// ticksFor converts a duration into whole simulation ticks, at least one.
func ticksFor(d time.Duration, rate int) int {
	n := int((d*time.Duration(rate) + time.Second/2) / time.Second)
	return max(1, n)
}

// Step advances the game by one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Pointer != nil {
		g.hover = hitTest(g.buttons, *in.Pointer)
	}
	for _, p := range in.Clicks {
		if cmd := hitTest(g.buttons, p); cmd != CmdNone {
			g.Invoke(cmd)
		}
	}
	g.handleActions(in)

	if !g.view.tooSmall {
		g.advanceTimers()
	}

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}

	result := core.StepResult{State: g.State()}
	if g.active && (g.ctrl.GameOver() || g.ctrl.State() == engine.StateStopped) {
		g.active = false
		result.Finished = g.ctrl.Score() > 0
	}
	return result
}

// handleActions applies the keyboard actions of one frame.
func (g *Game) handleActions(in core.InputFrame) {
	for _, a := range []core.Action{
		core.ActionNewEasy, core.ActionNewMedium, core.ActionNewHard,
		core.ActionPause, core.ActionStop, core.ActionLoad, core.ActionSave, core.ActionQuit,
	} {
		if in.Has(a) {
			g.Invoke(commandForAction(a))
		}
	}

	if in.Has(core.ActionRestart) && (g.ctrl.GameOver() || g.ctrl.State() == engine.StateStopped) {
		g.start(g.ctrl.Level())
	}

	if in.Has(core.ActionLeft) {
		g.ctrl.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.ctrl.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.ctrl.Rotate()
	}
	if in.Has(core.ActionSoftDrop) && g.ctrl.Running() {
		if g.boostLeft == 0 {
			g.ctrl.SoftDrop()
			g.boostCounter = 0
		}
		g.boostLeft = g.boostHold
	}
}

// advanceTimers delivers fall ticks every FallInterval and boost ticks every
// BoostInterval while soft drop is held.
func (g *Game) advanceTimers() {
	if !g.ctrl.Running() {
		g.boostLeft = 0
		return
	}

	g.fallCounter++
	if g.fallCounter >= ticksFor(g.ctrl.FallInterval(), g.tickRate) {
		g.fallCounter = 0
		g.afterFall(g.ctrl.OnFallTick())
	}

	if g.boostLeft > 0 {
		g.boostLeft--
		g.boostCounter++
		if g.boostCounter >= g.boostTicks {
			g.boostCounter = 0
			g.ctrl.OnBoostTick()
		}
	}
}

func (g *Game) afterFall(res engine.TickResult) {
	if res.Cleared > 0 {
		g.log.Debug("rows cleared", "rows", res.Cleared, "score", g.ctrl.Score())
	}
	if res.GameOver {
		g.log.Info("game over", "score", g.ctrl.Score(), "highscore", g.ctrl.HighScore())
		g.setStatus("Game over")
	}
}

// Invoke runs a button command.
func (g *Game) Invoke(cmd Command) {
	switch cmd {
	case CmdEasy:
		g.start(config.DifficultyEasy.Level())
	case CmdMedium:
		g.start(config.DifficultyMedium.Level())
	case CmdHard:
		g.start(config.DifficultyHard.Level())
	case CmdPlayPause:
		g.ctrl.PlayPause()
	case CmdStop:
		g.ctrl.Stop()
	case CmdLoad:
		g.load()
	case CmdSave:
		g.save()
	case CmdQuit:
		g.ctrl.Exit()
	}
}

// start begins a new session at level.
func (g *Game) start(level int) {
	if err := g.ctrl.Start(level); err != nil {
		g.log.Error("cannot start game", "err", err)
		g.setStatus("Cannot start game")
		return
	}
	g.active = true
	g.fallCounter = 0
	g.boostLeft = 0
	g.boostCounter = 0
	g.log.Info("game started", "level", level, "catalog", g.ctrl.Catalog().Name)
}

// save writes the controller snapshot to the session's slot.
func (g *Game) save() {
	store := g.runtime.Saves
	if store == nil {
		g.setStatus("Saving is disabled")
		return
	}
	data, err := engine.EncodeSnapshot(g.ctrl.Snapshot())
	if err == nil {
		err = store.SaveSnapshot(g.id, g.runtime.Slot(), data)
	}
	if err != nil {
		g.log.Error("save failed", "slot", g.runtime.Slot(), "err", err)
		g.setStatus("Save failed")
		return
	}
	g.log.Info("game saved", "slot", g.runtime.Slot(), "score", g.ctrl.Score())
	g.setStatus("Game saved")
}

// load restores the session's slot. Any failure leaves the game untouched.
func (g *Game) load() {
	store := g.runtime.Saves
	if store == nil {
		g.setStatus("Saving is disabled")
		return
	}
	slot := g.runtime.Slot()
	data, err := store.LoadSnapshot(g.id, slot)
	if errors.Is(err, core.ErrNoSnapshot) {
		g.log.Warn("no saved game", "slot", slot)
		g.setStatus("No saved game")
		return
	}
	if err != nil {
		g.log.Error("load failed", "slot", slot, "err", err)
		g.setStatus("Load failed")
		return
	}

	snap, err := engine.DecodeSnapshot(data)
	if err == nil {
		err = g.ctrl.Restore(snap)
	}
	if err != nil {
		g.log.Warn("saved game rejected", "slot", slot, "err", err)
		g.setStatus("Saved game is damaged")
		return
	}

	g.active = true
	g.fallCounter = 0
	g.boostLeft = 0
	g.log.Info("game loaded", "slot", slot, "score", g.ctrl.Score())
	g.setStatus("Game loaded")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = int(statusDuration.Seconds() * float64(g.tickRate))
}

// Status returns the current status line message, if any.
func (g *Game) Status() string {
	return g.status
}

// Controller exposes the engine for inspection.
func (g *Game) Controller() *engine.Controller {
	return g.ctrl
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.GameOver(),
		Paused:   g.ctrl.Paused(),
		Quit:     g.ctrl.Quit(),
	}
}
