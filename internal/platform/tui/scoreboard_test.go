package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pentix/internal/storage"
)

func TestScoreboardShowsPlayersAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		player string
		score  int
	}{{"alice", 50}, {"", 30}} {
		if _, err := store.SaveScore("stub", s.player, s.score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == "stub" {
			m.selectGame(i)
		}
	}

	if len(m.scores) != 2 || m.scores[0].Player != "alice" {
		t.Fatalf("scores = %+v, expected alice first", m.scores)
	}
	if got := m.statsLine(); !strings.HasPrefix(got, "2 games  |  best 50  |  avg 40") {
		t.Errorf("statsLine() = %q", got)
	}

	view := m.View()
	for _, want := range []string{"alice", "Player", "HIGH SCORES - Stub"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.statsLine() != "" {
		t.Errorf("statsLine() = %q, expected empty", m.statsLine())
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected the empty message")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || !isQuit(cmd) {
		t.Error("esc should go back")
	}
}

func TestScoreboardTabClick(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.games) < 2 {
		t.Skip("needs at least two registered variants")
	}

	tabs := m.tabRects()
	last := tabs[len(tabs)-1]
	next, _ := m.Update(tea.MouseMsg{X: last.X, Y: last.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(ScoreboardModel)
	if m.current != len(tabs)-1 {
		t.Errorf("current = %d, expected %d", m.current, len(tabs)-1)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := next.(ScoreboardModel).current; got != 0 {
		t.Errorf("tab from the last variant moved to %d, expected 0", got)
	}
}
