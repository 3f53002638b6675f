package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

var (
	flagSimGames    int
	flagSimMaxMoves int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Auto-play seeded games and print results",
	Long: `Play games without a terminal. Each turn takes the swap with the
highest immediate score until no swap is left or the move limit is hit.
Game i uses seed --seed + i, so runs are reproducible.

Examples:
  match3 sim
  match3 sim --games 50 --seed 1 --moves 200
  match3 sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameConfigFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimMaxMoves, "moves", 100, "Move limit per game")
}

// simResult summarizes one automatic game.
type simResult struct {
	Seed      int64
	Score     int
	Moves     int
	BestChain int
	Runs      int
	Capped    int  // Settles stopped by the pass limit
	Stuck     bool // Ended because no swap was left
}

// simulate plays one game greedily on a fresh board.
func simulate(cfg config.Match3Config, seed int64, maxMoves int) (simResult, error) {
	res := simResult{Seed: seed}

	src := engine.NewRandomSource(cfg.Icons.Types, seed)
	e, err := engine.New(cfg.Board.Width, cfg.Board.Height, src, engine.WithMaxSettlePasses(cfg.Settle.MaxPasses))
	if err != nil {
		return res, fmt.Errorf("new board: %w", err)
	}

	for res.Moves < maxMoves {
		m, ok := e.BestMove()
		if !ok {
			res.Stuck = true
			break
		}
		if !e.Select(m.A, m.B) {
			return res, fmt.Errorf("seed %d: move %v <-> %v rejected", seed, m.A, m.B)
		}
		res.Moves++

		report := e.RemoveAllRuns()
		res.BestChain = max(res.BestChain, report.Chain())
		res.Runs += report.Runs()
		if report.Capped {
			res.Capped++
		}
	}

	res.Score = e.Score()
	return res, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimGames < 1 || flagSimMaxMoves < 1 {
		return fmt.Errorf("--games and --moves must be positive")
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	logger.Debug("simulating", "games", flagSimGames, "seed", base,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "types", cfg.Icons.Types)

	fmt.Printf("  %-20s  %-8s  %-5s  %-5s  %-5s  %s\n", "Seed", "Score", "Moves", "Chain", "Runs", "End")
	fmt.Printf("  %-20s  %-8s  %-5s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----", "---")

	var total, best int
	for i := range flagSimGames {
		res, err := simulate(cfg, base+int64(i), flagSimMaxMoves)
		if err != nil {
			return err
		}
		if res.Capped > 0 {
			logger.Warn("settle hit the pass limit", "seed", res.Seed, "times", res.Capped)
		}

		end := "limit"
		if res.Stuck {
			end = "stuck"
		}
		fmt.Printf("  %-20d  %-8d  %-5d  x%-4d  %-5d  %s\n", res.Seed, res.Score, res.Moves, res.BestChain, res.Runs, end)

		total += res.Score
		best = max(best, res.Score)
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", flagSimGames, best, float64(total)/float64(flagSimGames))
	return nil
}
