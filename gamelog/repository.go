// Package gamelog persists finished games to a SQLite database, the way
// logs.Repository persists finished Tak games, adapted from Tak's
// flats/colour result vocabulary to Havannah's bridge/fork/ring/draw one.
package gamelog

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

// Game is one row of the games table: a finished Havannah game between two
// engines or players.
type Game struct {
	Day       string    `db:"day"`
	ID        int       `db:"id"`
	Timestamp time.Time `db:"time"`
	Size      int       `db:"size"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	// Result is one of "bridge", "fork", "ring", "draw", or "resign".
	Result string `db:"result"`
	// Winner is "player1", "player2", or "" for a draw.
	Winner string `db:"winner"`
	Moves  int    `db:"moves"`
}

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Open creates (or reuses) a sqlite database at path and prepares the
// games table and its player_games view.
func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create game table: %v", err)
	}
	if _, err := db.Exec(createPlayerTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_games view: %v", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare insert: %v", err)
	}
	return repo, nil
}

// DB exposes the underlying connection for callers that need read access
// beyond InsertGame/InsertGames, e.g. reporting queries against
// player_games.
func (r *Repository) DB() *sqlx.DB { return r.db }

// InsertGame records a single finished game.
func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

// InsertGames records a batch of finished games in a single transaction,
// the way Repository.InsertGames bulk-loads a self-play corpus.
func (r *Repository) InsertGames(games []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()

	stmt := txn.NamedStmt(r.insert)
	for _, g := range games {
		if _, err := stmt.Exec(g); err != nil {
			return err
		}
	}
	return txn.Commit()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
