// Package search implements the two solvers described in SPEC_FULL.md: an
// iterative-deepening negamax alpha-beta search, and a depth-first
// proof-number search whose leaves are seeded by alpha-beta probes.
package search

import (
	"log"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/timer"
)

// Stats tracks basic search accounting, mirroring the shape (if not the
// exact field set) of ai.MinimaxAI's Stats struct in the teacher corpus.
type Stats struct {
	Nodes   uint64
	Leaves  uint64
	Cutoffs uint64
}

// AlphaBeta is an iterative-deepening negamax solver over hex.Board.
// Values are in {-2,-1,0,1,2}: ±2 is a proven win/loss, ±1 is a
// draw-leaning unresolved result, 0 is unknown. Grounded on
// original_source/solverab.cpp for exact value semantics and on
// ai/minimax.go for Go structuring (iterative deepening driven from a
// single Analyze-style entry point, Stats accumulation, Debug logging).
type AlphaBeta struct {
	Debug bool
	Stats Stats
}

// NewAlphaBeta returns a ready-to-use solver.
func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

// Solve runs iterative deepening from depth 1 up to (but not including)
// maxDepth, returning the last completed iteration's value and best move.
// It stops early once a proven result is found or the deadline flag trips.
func (s *AlphaBeta) Solve(b *hex.Board, maxDepth int, flag *timer.Flag) (int, hex.Move) {
	value := 0
	best := hex.Unknown
	for depth := 1; depth < maxDepth && !flag.Load(); depth++ {
		v, m := s.runNegamax(b, depth, flag)
		value, best = v, m
		if s.Debug {
			log.Printf("alphabeta: depth=%d value=%d move=%v nodes=%d", depth, v, m, s.Stats.Nodes)
		}
		if v == 2 || v == -2 {
			break
		}
	}
	return value, best
}

// runNegamax is the move-choosing top level for one fixed depth.
func (s *AlphaBeta) runNegamax(b *hex.Board, depth int, flag *timer.Flag) (int, hex.Move) {
	alpha, beta := -2, 2
	best := hex.Unknown
	moves := b.LegalMoves()
	turn := b.ToPlay()
	for _, m := range moves {
		if flag.Load() {
			break
		}
		child := b.Clone()
		child.MoveAs(m, turn)
		val := -s.negamax(child, depth-1, -beta, -alpha, flag)
		if best == hex.Unknown || val > alpha {
			alpha = val
			best = m
		}
		if alpha >= beta {
			s.Stats.Cutoffs++
			break
		}
	}
	return alpha, best
}

// negamax evaluates board b, which has just received a move from the
// perspective of the side now to play, returning a value in {-2,...,2}.
func (s *AlphaBeta) negamax(b *hex.Board, depth int, alpha, beta int, flag *timer.Flag) int {
	s.Stats.Nodes++
	if flag.Load() {
		return 0
	}
	if b.Result() != hex.Ongoing {
		s.Stats.Leaves++
		if b.Result() == hex.Draw {
			return 0
		}
		// b.Result() names whoever just moved (not b.ToPlay()), so from
		// the current side's perspective this position is already lost.
		return -2
	}
	if depth <= 0 {
		return 0
	}

	turn := b.ToPlay()
	opponent := uint8(3 - turn)
	moves := b.LegalMoves()

	if depth <= 2 {
		// Fast leaf probe: check for an immediate win, and count the
		// distinct cells where the opponent could win immediately on the
		// current board. Two or more such cells mean no single move can
		// parry every threat: a proven loss. Grounded on
		// solverab.cpp's depth<=2 double-threat shortcut.
		losses := 0
		for _, m := range moves {
			if b.TestWin(m, turn) {
				return 2
			}
			if b.TestWin(m, opponent) {
				losses++
			}
		}
		if losses >= 2 {
			return -2
		}
		return 0
	}

	for _, m := range moves {
		if flag.Load() {
			return 0
		}
		child := b.Clone()
		child.MoveAs(m, turn)
		val := -s.negamax(child, depth-1, -beta, -alpha, flag)
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			s.Stats.Cutoffs++
			break
		}
	}
	return alpha
}
