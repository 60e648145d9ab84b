package selfplay

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/net/context"

	"github.com/havannah-labs/hvn/gamelog"
)

func TestRunRecordsRequestedGameCount(t *testing.T) {
	repo, err := gamelog.Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("gamelog.Open: %v", err)
	}
	defer repo.Close()

	r := New(Config{
		Size:    3,
		Games:   4,
		Threads: 2,
		Seed:    1,
		Epsilon: 1.0, // all-random moves keeps this test fast and deterministic-ish
		Depth:   2,
		Limit:   50 * time.Millisecond,
	}, repo)

	if err := r.Run(context.Background(), "2026-08-03"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var count int
	if err := repo.DB().Get(&count, "SELECT count(*) FROM games"); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}
