package search

import (
	"testing"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/timer"
)

func TestAlphaBetaFindsImmediateWin(t *testing.T) {
	b := hex.New(4)
	// player 1 has three of a bridge's connecting cells; one move away
	// from touching two corners.
	b.MoveAs(hex.Move{X: 0, Y: 0}, 1)
	b.MoveAs(hex.Move{X: 5, Y: 3}, 2)
	b.MoveAs(hex.Move{X: 1, Y: 0}, 1)
	b.MoveAs(hex.Move{X: 4, Y: 3}, 2)
	b.MoveAs(hex.Move{X: 2, Y: 0}, 1)
	b.MoveAs(hex.Move{X: 4, Y: 2}, 2)
	// it is now player 1's turn; (3,0) completes the bridge to corner 1.

	var flag timer.Flag
	s := NewAlphaBeta()
	value, move := s.Solve(b, 4, &flag)
	if value != 2 {
		t.Fatalf("value = %d, want 2 (proven win)", value)
	}
	if move != (hex.Move{X: 3, Y: 0}) {
		t.Errorf("move = %v, want (3,0)", move)
	}
}

func TestAlphaBetaUnknownOnEmptyBoard(t *testing.T) {
	b := hex.New(3)
	var flag timer.Flag
	s := NewAlphaBeta()
	value, move := s.Solve(b, 2, &flag)
	if move == hex.Unknown {
		t.Fatal("expected a candidate move on an empty board")
	}
	if value != 0 {
		t.Errorf("value = %d, want 0 (unknown)", value)
	}
}

func TestAlphaBetaRespectsTimeoutFlag(t *testing.T) {
	b := hex.New(4)
	var flag timer.Flag
	flag.Set()
	s := NewAlphaBeta()
	value, move := s.Solve(b, 6, &flag)
	if value != 0 || move != hex.Unknown {
		t.Errorf("Solve with pre-tripped flag = (%d, %v), want (0, Unknown)", value, move)
	}
}
