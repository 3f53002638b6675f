package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagLevel  int
	flagReplay string
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a game mode",
	Long: `Start playing. Campaign is the default mode.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Pick a tile, then pick a neighbour to swap
  X/Backspace       - Drop the picked tile
  ?                 - Show a hint
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - One fewer tile type, five extra moves per level
  normal - Default settings
  hard   - One more tile type, three fewer moves per level
  fixed  - No progression in endless mode

Examples:
  match3 play
  match3 play endless
  match3 play --level 4
  match3 play endless --difficulty hard
  match3 play --config ./my-match3.yaml
  match3 play --replay <id>   # deal the opening board of a recorded game again

A replay reuses the recorded mode, seed and start level. The board matches
only when the board and icon settings are the same as when it was recorded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay the recorded game with this ID (see 'match3 scores')")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagReplay != "" && (len(args) > 0 || flagLevel != 0) {
		return fmt.Errorf("--replay cannot be combined with a mode or --level")
	}

	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	match3.SetConfig(gameCfg)

	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > match3.LevelCount() {
			return fmt.Errorf("--level must be between 1 and %d", match3.LevelCount())
		}
		match3.SetStartLevel(flagLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if flagReplay != "" {
			return fmt.Errorf("opening scores database: %w", err)
		}
		// The game still works without persistence.
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	if flagReplay != "" {
		r, err := loadReplay(store, flagReplay)
		if err != nil {
			return err
		}
		gameID = r.GameID
		rc.Seed = r.Seed
		if r.StartLevel > 0 {
			match3.SetStartLevel(r.StartLevel)
		}
		logger.Info("replaying", "id", flagReplay, "mode", gameID, "seed", r.Seed, "level", r.StartLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	gameLog, closeLog := gameLogger()
	defer closeLog()

	if err := tui.Run(game, store, gameLog, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
