// match3 is a terminal match-three puzzle.
//
// Usage:
//
//	match3 list              - List game modes
//	match3 play [mode]       - Play campaign (default) or endless
//	match3 menu              - Start menu to pick a mode interactively
//	match3 scores [mode]     - Show high scores
//	match3 sim               - Auto-play seeded games without a terminal
//	match3 config            - Print the config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game config flags shared by play and menu
	flagConfig     string
	flagDifficulty string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match Three - swap tiles, line up three, watch them cascade",
	Long: `Match Three is a terminal tile-matching puzzle.

Swap two neighbouring tiles to line up three or more of a kind. Lines
clear, tiles above fall down and new tiles drop in from the top, which
may set off further lines.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  sim      - Auto-play seeded games and print results
  config   - Print the configuration YAML

Examples:
  match3 play
  match3 play endless --difficulty hard
  match3 menu
  match3 scores endless
  match3 sim --games 20 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// addGameConfigFlags registers --config and --difficulty on a command.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.Match3Config, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Match3Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyMatch3Preset(&cfg, preset)
	return cfg, nil
}

// resolveMode maps a mode argument to a registered game ID.
func resolveMode(arg string) (string, error) {
	switch arg {
	case "", "campaign", match3.IDCampaign:
		return match3.IDCampaign, nil
	case "endless", match3.IDEndless:
		return match3.IDEndless, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'match3 list')", arg)
}

// modeName is the command-line name of a game ID, the inverse of resolveMode.
func modeName(gameID string) string {
	if gameID == match3.IDEndless {
		return string(match3.ModeEndless)
	}
	return string(match3.ModeCampaign)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// gameLogger returns a logger for the full-screen UI. Stderr shares the
// terminal with the game, so records go to ~/.arcade/logs/match3.log.
// The returned func closes the file.
func gameLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}
	}
	dir := filepath.Join(home, ".arcade", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create log directory", "error", err)
		return nil, func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "error", err)
		return nil, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}
