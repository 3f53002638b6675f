package main

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultMatch3Config()

	a, err := simulate(cfg, 11, 30)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(cfg, 11, 30)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a != b {
		t.Errorf("simulate() = %+v, then %+v for the same seed", a, b)
	}
}

func TestSimulateRespectsMoveLimit(t *testing.T) {
	cfg := config.DefaultMatch3Config()

	for seed := int64(1); seed <= 5; seed++ {
		res, err := simulate(cfg, seed, 10)
		if err != nil {
			t.Fatalf("simulate() failed: %v", err)
		}
		if res.Moves > 10 {
			t.Errorf("seed %d: Moves = %d, expected at most 10", seed, res.Moves)
		}
		if res.Moves < 10 && !res.Stuck {
			t.Errorf("seed %d: stopped at %d moves without being stuck", seed, res.Moves)
		}
		if res.Moves > 0 && res.Score < 10*res.Moves {
			t.Errorf("seed %d: Score = %d, expected at least %d", seed, res.Score, 10*res.Moves)
		}
	}
}

func TestSimulateRejectsBadBoard(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Board.Width = 0

	if _, err := simulate(cfg, 1, 5); err == nil {
		t.Error("simulate() should fail for an empty board")
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
		wantErr  bool
	}{
		{"", "match3", false},
		{"campaign", "match3", false},
		{"endless", "match3_endless", false},
		{"match3_endless", "match3_endless", false},
		{"arcade", "", true},
	}

	for _, tc := range tests {
		got, err := resolveMode(tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("resolveMode(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("resolveMode(%q) = %q, expected %q", tc.arg, got, tc.expected)
		}
	}
}
