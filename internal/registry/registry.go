// Package registry maps variant IDs to game factories. Variants register
// themselves from init, so the CLI and the SSH server can list and start
// them without importing each one by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/pentix/internal/core"
)

// Game is a variant as the platform drives it. Implementations hold pure
// logic: the platform owns the terminal, timing, key mapping and storage.
type Game interface {
	// ID names the variant in CLI arguments and score rows, e.g. "pentix".
	ID() string

	// Title is the display name, e.g. "Pentix".
	Title() string

	// Reset starts a new session. It is called before the first Step and
	// again whenever the platform restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the input gathered since the last.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which is cleared beforehand.
	Render(dst *core.Screen)

	// State reports score and lifecycle flags without advancing.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting. The platform falls back to Reset otherwise.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, unreset game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. It panics on a duplicate ID, which can only be
// a programming error.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create returns a new instance of the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
