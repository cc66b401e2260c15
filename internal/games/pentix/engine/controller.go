package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// State is the controller's lifecycle phase.
type State string

const (
	StateStopped  State = "stopped"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// ErrInvalidLevel is returned by Start for levels below 1.
var ErrInvalidLevel = errors.New("engine: level must be at least 1")

// Options configures a Controller.
type Options struct {
	Width         int
	Height        int
	Catalog       Catalog
	BaseInterval  time.Duration // fall interval at level 1
	BoostInterval time.Duration // soft-drop cadence
	Seed          int64
}

// DefaultOptions returns the classic 10x20 Pentix setup.
func DefaultOptions() Options {
	return Options{
		Width:         10,
		Height:        20,
		Catalog:       Pentix,
		BaseInterval:  270 * time.Millisecond,
		BoostInterval: 60 * time.Millisecond,
	}
}

// TickResult describes what a fall or boost tick did.
type TickResult struct {
	Moved    bool // piece moved down one row
	Locked   bool // piece merged into the grid
	Merged   int  // cells written by the merge
	Cleared  int  // rows removed after the merge
	GameOver bool // the tick ended the game
}

// Controller owns the grid, the falling piece and the session counters.
// All mutation goes through its methods; it is not safe for concurrent use.
type Controller struct {
	opts  Options
	rng   *rand.Rand
	grid  *Grid
	piece *Piece

	state     State
	level     int
	score     int
	highScore int
	lines     int
	quit      bool
}

// NewController creates a stopped controller with an empty grid and a first
// piece already spawned.
func NewController(opts Options) *Controller {
	if opts.Catalog.Len() == 0 {
		opts.Catalog = Pentix
	}
	c := &Controller{
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		grid:  NewGrid(opts.Width, opts.Height),
		state: StateStopped,
		level: 1,
	}
	c.piece = Spawn(c.opts.Catalog.Random(c.rng), c.grid)
	return c
}

// Start begins a new session at level: score and grid are reset, a fresh
// piece spawns and the fall interval becomes BaseInterval / level.
func (c *Controller) Start(level int) error {
	if level < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	c.level = level
	c.score = 0
	c.lines = 0
	c.grid.Reset()
	c.state = StateRunning
	c.spawn()
	return nil
}

// PlayPause toggles between running and paused. Other states are unaffected.
func (c *Controller) PlayPause() {
	switch c.state {
	case StateRunning:
		c.state = StatePaused
	case StatePaused:
		c.state = StateRunning
	}
}

// Stop ends the session and folds the score into the highscore.
func (c *Controller) Stop() {
	c.state = StateStopped
	c.updateHighScore()
}

// Exit stops the session and raises the quit flag.
func (c *Controller) Exit() {
	c.Stop()
	c.quit = true
}

// OnFallTick moves the piece down one row. A blocked piece is merged, full
// rows are cleared and the next piece spawns. Ignored unless running.
func (c *Controller) OnFallTick() TickResult {
	if c.state != StateRunning {
		return TickResult{}
	}
	if c.piece.TryMove(0, 1, c.grid) {
		return TickResult{Moved: true}
	}
	return c.lock()
}

// OnBoostTick moves the piece down one row if it can. A blocked boost tick
// does nothing; the next fall tick performs the merge.
func (c *Controller) OnBoostTick() TickResult {
	if c.state != StateRunning {
		return TickResult{}
	}
	return TickResult{Moved: c.piece.TryMove(0, 1, c.grid)}
}

// MoveLeft shifts the piece one column left.
func (c *Controller) MoveLeft() bool {
	return c.state == StateRunning && c.piece.TryMove(-1, 0, c.grid)
}

// MoveRight shifts the piece one column right.
func (c *Controller) MoveRight() bool {
	return c.state == StateRunning && c.piece.TryMove(1, 0, c.grid)
}

// Rotate turns the piece clockwise.
func (c *Controller) Rotate() bool {
	return c.state == StateRunning && c.piece.TryRotate(c.grid)
}

// SoftDrop is a single boost tick requested by the player.
func (c *Controller) SoftDrop() bool {
	return c.OnBoostTick().Moved
}

// FallInterval returns the gravity period for the current level.
func (c *Controller) FallInterval() time.Duration {
	return FallInterval(c.opts.BaseInterval, c.level)
}

// BoostInterval returns the soft-drop period.
func (c *Controller) BoostInterval() time.Duration {
	return c.opts.BoostInterval
}

// FallInterval divides base by level; levels below 1 are treated as 1.
func FallInterval(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return base / time.Duration(level)
}

// SetHighScore seeds the highscore, typically from persistent storage.
// Lower values than the current highscore are ignored.
func (c *Controller) SetHighScore(n int) {
	if n > c.highScore {
		c.highScore = n
	}
}

// Grid returns the settled-block grid. Callers must treat it as read-only.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Piece returns the falling piece. Callers must treat it as read-only.
func (c *Controller) Piece() *Piece {
	return c.piece
}

func (c *Controller) Catalog() Catalog {
	return c.opts.Catalog
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Paused() bool {
	return c.state == StatePaused
}

func (c *Controller) Running() bool {
	return c.state == StateRunning
}

func (c *Controller) GameOver() bool {
	return c.state == StateGameOver
}

// Quit reports whether Exit was called.
func (c *Controller) Quit() bool {
	return c.quit
}

func (c *Controller) Level() int {
	return c.level
}

func (c *Controller) Score() int {
	return c.score
}

func (c *Controller) HighScore() int {
	return c.highScore
}

// LinesCleared counts rows removed since Start.
func (c *Controller) LinesCleared() int {
	return c.lines
}

// lock merges the piece, clears rows, scores both and spawns the next piece.
func (c *Controller) lock() TickResult {
	merged, overflow := c.grid.Merge(c.piece)
	cleared := c.grid.ClearFullRows()
	c.score += merged + cleared*c.grid.Width()
	c.lines += cleared

	res := TickResult{Locked: true, Merged: merged, Cleared: cleared}
	if overflow > 0 {
		c.endGame()
		res.GameOver = true
		return res
	}
	c.spawn()
	res.GameOver = c.state == StateGameOver
	return res
}

// spawn draws the next piece; one that collides where it appears ends the game.
func (c *Controller) spawn() {
	c.piece = Spawn(c.opts.Catalog.Random(c.rng), c.grid)
	if c.grid.IsCollision(c.piece.cells, c.piece.X, c.piece.Y) {
		c.endGame()
	}
}

func (c *Controller) endGame() {
	c.state = StateGameOver
	c.updateHighScore()
}

func (c *Controller) updateHighScore() {
	if c.score > c.highScore {
		c.highScore = c.score
	}
}
