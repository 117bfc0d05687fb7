package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-taxi/internal/core"
	"github.com/vovakirdan/tui-taxi/internal/registry"
	"github.com/vovakirdan/tui-taxi/internal/storage"
)

func init() {
	registry.Register("board_a", func() registry.Game { return &fakeGame{} })
	registry.Register("board_b", func() registry.Game { return &fakeGame{} })
}

func boardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runs := []core.ScoreRecord{
		{GameID: "board_a", Player: "alice", Earnings: 10, At: base.Add(2 * time.Hour)},
		{GameID: "board_a", Player: "bob", Earnings: 520, Won: true, At: base},
		{GameID: "board_b", Player: "carol", Earnings: 77, At: base},
	}
	for _, r := range runs {
		if err := store.RecordScore(r); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}
	return store
}

// selectMode moves the scoreboard to the mode with the given id.
func selectMode(t *testing.T, m ScoreboardModel, id string) ScoreboardModel {
	t.Helper()
	for range m.modes {
		if m.currentMode() == id {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	t.Fatalf("mode %q not found", id)
	return m
}

func TestScoreboardBestAndRecent(t *testing.T) {
	m := selectMode(t, NewScoreboardModel(boardStore(t), 80, 30), "board_a")

	if len(m.entries) != 2 || m.entries[0].Player != "bob" {
		t.Fatalf("best entries = %+v, expected bob first", m.entries)
	}
	if !strings.Contains(m.View(), "TOP FARES") {
		t.Error("View() missing TOP FARES title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	m = next.(ScoreboardModel)
	if m.view != viewRecent {
		t.Fatalf("view = %v, expected recent", m.view)
	}
	if m.entries[0].Player != "alice" {
		t.Errorf("recent first = %s, expected alice", m.entries[0].Player)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("View() missing RECENT RUNS title")
	}
}

func TestScoreboardStats(t *testing.T) {
	m := selectMode(t, NewScoreboardModel(boardStore(t), 120, 30), "board_a")

	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.Wins != 1 {
		t.Fatalf("stats = %+v, expected 2 runs 1 win", m.stats)
	}
	if !m.wide() {
		t.Fatal("120 columns should show the stats panel")
	}
	if !strings.Contains(m.statsPanel(), "$520.00") {
		t.Error("statsPanel() missing best earnings")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if len(m.entries) != 0 {
		t.Errorf("entries = %d, expected 0", len(m.entries))
	}
	if !strings.Contains(m.View(), "not being recorded") {
		t.Error("View() should explain that scores are not recorded")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
