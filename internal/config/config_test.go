package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // Ignore any real ~/.arcade/configs

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3(\"\") failed: %v", err)
	}
	if cfg != DefaultMatch3Config() {
		t.Errorf("embedded YAML differs from DefaultMatch3Config():\n%+v\nvs\n%+v", cfg, DefaultMatch3Config())
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match3.yaml")
	data := []byte("board:\n  width: 6\n  height: 10\nicons:\n  types: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}

	if cfg.Board.Width != 6 || cfg.Board.Height != 10 {
		t.Errorf("board = %dx%d, expected 6x10", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Icons.Types != 4 {
		t.Errorf("icons.types = %d, expected 4", cfg.Icons.Types)
	}
	// Unspecified sections keep their defaults
	if cfg.Settle.MaxPasses != 100 {
		t.Errorf("settle.max_passes = %d, expected default 100", cfg.Settle.MaxPasses)
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadMatch3() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [1, 2"), 0o600)
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("LoadMatch3() with malformed YAML should fail")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	os.WriteFile(tiny, []byte("board:\n  width: 2\n"), 0o600)
	if _, err := LoadMatch3(tiny); err == nil {
		t.Error("LoadMatch3() with a 2-wide board should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Match3Config)
		wantErr bool
	}{
		{"defaults", func(*Match3Config) {}, false},
		{"too narrow", func(c *Match3Config) { c.Board.Width = 2 }, true},
		{"too tall", func(c *Match3Config) { c.Board.Height = 40 }, true},
		{"two icon types", func(c *Match3Config) { c.Icons.Types = 2 }, true},
		{"max below types", func(c *Match3Config) { c.Icons.MaxTypes = 3 }, true},
		{"no settle passes", func(c *Match3Config) { c.Settle.MaxPasses = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	easy := DefaultMatch3Config()
	ApplyMatch3Preset(&easy, DifficultyEasy)
	if easy.Icons.Types != 4 || easy.Campaign.ExtraMoves != 5 {
		t.Errorf("easy preset = %d types / %d extra moves", easy.Icons.Types, easy.Campaign.ExtraMoves)
	}

	hard := DefaultMatch3Config()
	ApplyMatch3Preset(&hard, DifficultyHard)
	if hard.Icons.Types != 6 || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %d types / level %.1f", hard.Icons.Types, hard.Difficulty.InitialLevel)
	}

	fixed := DefaultMatch3Config()
	ApplyMatch3Preset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}

func TestDifficultyIconTypes(t *testing.T) {
	d := NewDifficultyManager(DefaultMatch3Config().Difficulty)

	if got := d.IconTypes(5, 7, 0, 0); got != 5 {
		t.Errorf("IconTypes at score 0 = %d, expected 5", got)
	}
	if got := d.IconTypes(5, 7, 2500, 0); got != 6 {
		t.Errorf("IconTypes at half progress = %d, expected 6", got)
	}
	if got := d.IconTypes(5, 6, 1_000_000, 0); got != 6 {
		t.Errorf("IconTypes should respect maxTypes, got %d", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultMatch3Config().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.5)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if lvl := d.Level(100000, 0); lvl != 0.5 {
		t.Errorf("Level() = %f, expected initial level 0.5", lvl)
	}
	if got := d.MoveBudget(20); got != 18 {
		t.Errorf("MoveBudget(20) = %d, expected 18", got)
	}
}
