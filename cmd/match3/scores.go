package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores for a mode",
	Long: `Display the best recorded games for a mode.

Examples:
  match3 scores
  match3 scores endless --limit 20
  match3 scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", gameID)
		return nil
	}

	plays, err := store.TopPlays(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(plays) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", modeName(gameID))
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-5s  %-16s  %s\n", "Rank", "Score", "Moves", "Chain", "Level", "Date", "ID")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-5s  %-16s  %s\n", "----", "-----", "-----", "-----", "-----", "----", "--")
	for i, p := range plays {
		level := "-"
		if p.Level > 0 {
			level = fmt.Sprintf("%d", p.Level)
		}
		fmt.Printf("  %-4d  %-8d  %-5d  x%-4d  %-5s  %-16s  %s\n",
			i+1, p.Score, p.Moves, p.BestChain, level, p.CreatedAt.Format("2006-01-02 15:04"), p.ID)
	}

	fmt.Println()
	fmt.Println("Replay an opening board with 'match3 play --replay <ID>'.")
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Longest chain: x%d\n", stats.HighScore, stats.GamesCount, stats.BestChain)
	}
	return nil
}
