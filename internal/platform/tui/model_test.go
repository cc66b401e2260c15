package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/registry"
	"github.com/vovakirdan/pentix/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	frames  []core.InputFrame
	resets  []core.RuntimeConfig
	resized [2]int
	result  core.StepResult
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return g.result
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return g.result.State
}

func (g *stubGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

// lastStub is the most recent stub created through the registry.
var lastStub *stubGame

func init() {
	registry.Register("stub", func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

func newTestModel(g *stubGame, store *storage.Store) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Player = "alice"
	return NewModel(g, store, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, runes("a"))
	m, cmd := update(t, m, TickMsg{})

	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionLeft) {
		t.Fatalf("expected ActionLeft on first tick, got %+v", g.frames)
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("expected the tick loop to continue")
	}

	// Input is cleared between ticks
	update(t, m, TickMsg{})
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("ActionLeft repeated on second tick")
	}
}

func TestModelMouse(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 7, Y: 2, Action: tea.MouseActionMotion})
	m, _ = update(t, m, TickMsg{})
	first := g.frames[0]
	if first.Pointer == nil || *first.Pointer != (core.Point{X: 7, Y: 2}) {
		t.Errorf("pointer = %v, expected (7,2)", first.Pointer)
	}
	if len(first.Clicks) != 0 {
		t.Errorf("motion produced clicks: %v", first.Clicks)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})
	second := g.frames[1]
	if len(second.Clicks) != 1 || second.Clicks[0] != (core.Point{X: 3, Y: 4}) {
		t.Errorf("clicks = %v, expected [(3,4)]", second.Clicks)
	}

	// Right button presses are ignored
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	update(t, m, TickMsg{})
	if len(g.frames[2].Clicks) != 0 {
		t.Errorf("right click produced clicks: %v", g.frames[2].Clicks)
	}
}

func TestModelRecordsFinishedScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("stub", "bob", 10); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	g := &stubGame{}
	m := newTestModel(g, store)
	if m.config.BestScore != 10 {
		t.Errorf("BestScore = %d, expected 10", m.config.BestScore)
	}

	g.result = core.StepResult{State: core.GameState{Score: 42, GameOver: true}, Finished: true}
	update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Player != "alice" {
		t.Errorf("top score = %d by %q, expected 42 by alice", scores[0].Score, scores[0].Player)
	}
}

func TestModelSkipsUnfinishedScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{result: core.StepResult{State: core.GameState{Score: 42}}}
	m := newTestModel(g, store)
	update(t, m, TickMsg{})

	if best, _ := store.HighScore("stub"); best != 0 {
		t.Errorf("HighScore = %d, expected nothing recorded", best)
	}
}

func TestModelQuit(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, cmd := update(t, m, runes("q"))
	if cmd != nil {
		t.Error("quit should wait for the game to see it")
	}

	m, cmd = update(t, m, TickMsg{})
	if !g.frames[0].Has(core.ActionQuit) {
		t.Error("game did not receive ActionQuit")
	}
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("expected the program to quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestModelQuitFromGameState(t *testing.T) {
	g := &stubGame{result: core.StepResult{State: core.GameState{Quit: true}}}
	m := newTestModel(g, nil)

	m, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("expected quit when the game asks for it")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}

	m := newTestModel(g, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg{})
	if m.BackToMenu() || g.frames[0].Has(core.ActionStop) {
		t.Error("esc must do nothing without a menu")
	}

	m = newTestModel(g, nil).WithBackToMenu()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, TickMsg{})
	if !g.frames[1].Has(core.ActionStop) {
		t.Error("esc should stop the game before leaving")
	}
	if !m.BackToMenu() {
		t.Error("expected BackToMenu")
	}
	if cmd != nil {
		t.Error("tick loop should end when leaving")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	wantH := 40 - lipgloss.Height(m.helpView())
	if g.resized != [2]int{100, wantH} {
		t.Errorf("Resize(%v), expected (100, %d)", g.resized, wantH)
	}
	if len(g.resets) != 0 {
		t.Errorf("resize reset the game %d times", len(g.resets))
	}
	if m.screen.Width() != 100 || m.screen.Height() != wantH {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), wantH)
	}
}

func TestModelHelpToggle(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	short := m.screen.Height()

	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if m.screen.Height() >= short {
		t.Errorf("full help should take rows from the game: %d >= %d", m.screen.Height(), short)
	}
	if len(g.frames) != 0 {
		t.Error("help toggle should not step the game")
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	view := m.View()
	if lipgloss.Height(view) != m.height {
		t.Errorf("view height = %d, expected %d", lipgloss.Height(view), m.height)
	}
	if got := view[:4]; got != "stub" {
		t.Errorf("view starts with %q, expected stub", got)
	}
}
