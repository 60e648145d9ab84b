package gamelog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()
	repo, err := Open(filepath.Join(dir, "games.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestInsertGameRoundTrips(t *testing.T) {
	repo := openTestRepo(t)

	g := &Game{
		Day:       "2026-08-03",
		ID:        1,
		Timestamp: time.Now(),
		Size:      8,
		Player1:   "alpha",
		Player2:   "beta",
		Result:    "bridge",
		Winner:    "player1",
		Moves:     23,
	}
	if err := repo.InsertGame(g); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	var count int
	if err := repo.db.Get(&count, "SELECT count(*) FROM games WHERE id = ?", 1); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestInsertGamesIsTransactional(t *testing.T) {
	repo := openTestRepo(t)

	games := []*Game{
		{Day: "2026-08-03", ID: 1, Size: 8, Player1: "alpha", Player2: "beta", Result: "ring", Winner: "player2", Moves: 40},
		{Day: "2026-08-03", ID: 2, Size: 8, Player1: "alpha", Player2: "beta", Result: "draw", Winner: "", Moves: 64},
	}
	if err := repo.InsertGames(games); err != nil {
		t.Fatalf("InsertGames: %v", err)
	}

	var count int
	if err := repo.db.Get(&count, "SELECT count(*) FROM games"); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestPlayerGamesViewAssignsWinLoss(t *testing.T) {
	repo := openTestRepo(t)

	g := &Game{Day: "2026-08-03", ID: 1, Size: 8, Player1: "alpha", Player2: "beta", Result: "fork", Winner: "player1", Moves: 30}
	if err := repo.InsertGame(g); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	var win string
	if err := repo.db.Get(&win, "SELECT win FROM player_games WHERE player = ?", "alpha"); err != nil {
		t.Fatalf("player_games query: %v", err)
	}
	if win != "win" {
		t.Errorf("alpha's win column = %q, want %q", win, "win")
	}

	if err := repo.db.Get(&win, "SELECT win FROM player_games WHERE player = ?", "beta"); err != nil {
		t.Fatalf("player_games query: %v", err)
	}
	if win != "lose" {
		t.Errorf("beta's win column = %q, want %q", win, "lose")
	}
}
