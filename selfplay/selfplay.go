// Package selfplay runs many concurrent self-play games to build a corpus
// of finished games, the way cmd/internal/gencorpus generates Tak corpora.
package selfplay

import (
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/havannah-labs/hvn/gamelog"
	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/search"
	"github.com/havannah-labs/hvn/timer"
)

// Config controls a self-play run.
type Config struct {
	Size    int
	Games   int
	Threads int
	Seed    int64

	// Epsilon is the probability of a uniformly random move instead of a
	// search-selected one, matching gencorpus's epsilon-greedy generation.
	Epsilon float64
	Depth   int
	Limit   time.Duration
}

// Runner drives a self-play corpus into a gamelog.Repository.
type Runner struct {
	cfg  Config
	repo *gamelog.Repository
}

func New(cfg Config, repo *gamelog.Repository) *Runner {
	return &Runner{cfg: cfg, repo: repo}
}

const prime = 1099511628211

// Run generates cfg.Games games across cfg.Threads workers and records each
// finished game to the repository. It returns the first worker error, if
// any game insert fails.
func (r *Runner) Run(ctx context.Context, day string) error {
	todo := int64(r.cfg.Games)
	var nextID int64

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Threads; i++ {
		id := i
		grp.Go(func() error {
			return r.worker(ctx, day, id, &todo, &nextID)
		})
	}
	return grp.Wait()
}

func (r *Runner) worker(ctx context.Context, day string, id int, todo, nextID *int64) error {
	rng := rand.New(rand.NewSource(prime*r.cfg.Seed + int64(id)))
	ab := search.NewAlphaBeta()

	for {
		if atomic.AddInt64(todo, -1) < 0 {
			return nil
		}

		g, result, winner := r.playOne(ctx, rng, ab)

		gameID := int(atomic.AddInt64(nextID, 1))
		if err := r.repo.InsertGame(&gamelog.Game{
			Day:       day,
			ID:        gameID,
			Timestamp: time.Now(),
			Size:      r.cfg.Size,
			Player1:   "selfplay",
			Player2:   "selfplay",
			Result:    result,
			Winner:    winner,
			Moves:     len(g),
		}); err != nil {
			return err
		}
	}
}

// playOne plays a single game to completion and returns the move list, the
// result kind ("bridge", "fork", "ring", or "draw"), and the winner
// ("player1", "player2", or "" for a draw).
func (r *Runner) playOne(ctx context.Context, rng *rand.Rand, ab *search.AlphaBeta) ([]hex.Move, string, string) {
	b := hex.New(r.cfg.Size)
	var moves []hex.Move

	for b.Result() == hex.Ongoing {
		legal := b.LegalMoves()
		if len(legal) == 0 {
			break
		}

		var m hex.Move
		if rng.Float64() < r.cfg.Epsilon {
			m = legal[rng.Intn(len(legal))]
		} else {
			var flag timer.Flag
			dl := timer.Schedule(&flag, r.cfg.Limit)
			_, best := ab.Solve(b, r.cfg.Depth, &flag)
			dl.Cancel()
			if best == hex.Unknown {
				m = legal[rng.Intn(len(legal))]
			} else {
				m = best
			}
		}

		b.Move(m)
		moves = append(moves, m)

		select {
		case <-ctx.Done():
			return moves, "draw", ""
		default:
		}
	}

	return moves, resultKind(b.WinKind()), winnerOf(b.Result())
}

func resultKind(k hex.WinKind) string {
	switch k {
	case hex.WinBridge:
		return "bridge"
	case hex.WinFork:
		return "fork"
	case hex.WinRing:
		return "ring"
	default:
		return "draw"
	}
}

func winnerOf(o hex.Outcome) string {
	switch o {
	case hex.Player1:
		return "player1"
	case hex.Player2:
		return "player2"
	default:
		return ""
	}
}
