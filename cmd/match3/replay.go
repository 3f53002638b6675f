package main

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

// replay holds what is needed to deal the opening board of a recorded play again.
type replay struct {
	GameID     string
	Seed       int64
	StartLevel int
}

// loadReplay looks up a recorded play by its ID.
func loadReplay(store *storage.Store, id string) (replay, error) {
	rec, err := store.PlayByID(id)
	if err != nil {
		return replay{}, err
	}
	if rec == nil {
		return replay{}, fmt.Errorf("no recorded game with id %q (run 'match3 scores')", id)
	}

	gameID, err := resolveMode(rec.GameID)
	if err != nil {
		return replay{}, fmt.Errorf("recorded game %s: %w", id, err)
	}
	return replay{GameID: gameID, Seed: rec.Seed, StartLevel: rec.StartLevel}, nil
}
