package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestScoreboardShowsPlays(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(match3.IDCampaign, 1234)
	store.SavePlay(storage.PlayRecord{GameID: match3.IDCampaign, Score: 1234, Moves: 17, BestChain: 3, Level: 2})

	m := NewScoreboardModel(store, 120, 30)
	if scoreModes[m.mode].GameID != match3.IDCampaign {
		t.Fatalf("first mode = %q, expected %q", scoreModes[m.mode].GameID, match3.IDCampaign)
	}
	if len(m.plays) != 1 {
		t.Fatalf("plays = %d, expected 1", len(m.plays))
	}

	view := m.View()
	for _, want := range []string{"Campaign", "Endless", "1234", "x3", "longest chain x3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if scoreModes[m.mode].GameID != match3.IDEndless {
		t.Errorf("mode after Tab = %q, expected %q", scoreModes[m.mode].GameID, match3.IDEndless)
	}
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("Esc should go back")
	}
}

func TestScoreboardModeKeysCycle(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 60, 20)
			next, _ := m.Update(tt.msg)
			m = next.(ScoreboardModel)
			if m.mode != 1 {
				t.Errorf("mode after one press = %d, expected 1", m.mode)
			}
			next, _ = m.Update(tt.msg)
			m = next.(ScoreboardModel)
			if m.mode != 0 {
				t.Errorf("mode after two presses = %d, expected 0", m.mode)
			}
		})
	}
}

func TestScoreboardNarrowKeepsLabels(t *testing.T) {
	view := NewScoreboardModel(nil, 40, 20).View()
	for _, want := range []string{"Campaign", "Endless"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() at width 40 missing %q", want)
		}
	}
}
