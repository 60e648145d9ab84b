package search

import (
	"testing"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/timer"
)

func TestABValDrawRemapping(t *testing.T) {
	var n PNSNode
	n.ABVal(1, 1, 1, 1) // draw-ish outcome, ties assigned to player 1, mover is player 1
	if n.Phi != Loss || n.Delta != 0 {
		t.Errorf("ABVal(1,1,assign=1) = (%d,%d), want (Loss,0): ties-to-mover should read as a win", n.Phi, n.Delta)
	}

	var n2 PNSNode
	n2.ABVal(1, 2, 1, 1) // same draw-ish outcome, but mover (2) != assign (1)
	if n2.Phi != 0 || n2.Delta != Loss {
		t.Errorf("ABVal(1,toplay=2,assign=1) = (%d,%d), want (0,Loss)", n2.Phi, n2.Delta)
	}
}

func TestABValUnassignedDrawIsUnresolved(t *testing.T) {
	var n PNSNode
	n.ABVal(1, 1, 0, 1)
	if n.Phi != 0 || n.Delta != Draw {
		t.Errorf("ABVal(1,assign=0) = (%d,%d), want (0,Draw)", n.Phi, n.Delta)
	}
}

func TestSelectTwoSmallestDeltaSingleChild(t *testing.T) {
	kids := []PNSNode{{Phi: 1, Delta: 5}}
	c1, c2 := selectTwoSmallestDelta(kids)
	if c1 != 0 || c2 != 0 {
		t.Errorf("single-child selection = (%d,%d), want (0,0)", c1, c2)
	}
}

func TestSelectTwoSmallestDeltaOrdering(t *testing.T) {
	kids := []PNSNode{{Delta: 9}, {Delta: 3}, {Delta: 7}, {Delta: 3}}
	c1, c2 := selectTwoSmallestDelta(kids)
	if kids[c1].Delta != 3 {
		t.Fatalf("c1 delta = %d, want 3", kids[c1].Delta)
	}
	if kids[c2].Delta < kids[c1].Delta {
		t.Fatalf("c2 delta %d should not be smaller than c1 delta %d", kids[c2].Delta, kids[c1].Delta)
	}
	if kids[c2].Delta != 3 {
		t.Fatalf("c2 delta = %d, want 3 (the tied second-smallest, kids[3])", kids[c2].Delta)
	}
	if c2 != 3 {
		t.Fatalf("c2 index = %d, want 3", c2)
	}
}

func TestDFPNSolverResolvesSmallBoard(t *testing.T) {
	// A size-3 board has 19 cells (18 left after the opening stone), small
	// enough for a bounded node budget to search it out; this exercises leaf expansion,
	// threshold recursion, and the dual-run combination end to end without
	// depending on which specific outcome the position resolves to.
	b := hex.New(3)
	b.MoveAs(hex.Move{X: 0, Y: 0}, 1)

	var flag timer.Flag
	s := NewDFPNSolver(4)
	outcome, _ := s.Solve(b, &flag)

	switch outcome {
	case OutcomeOpponentWins, OutcomeCurrentWins, OutcomeDraw, OutcomeLossOrDraw, OutcomeWinOrDraw, OutcomeUnresolved:
		// one of the defined outcomes; good enough without asserting which.
	default:
		t.Fatalf("Solve returned undefined outcome %v", outcome)
	}
}

func TestUpdatePDNumEmptyChildrenNoop(t *testing.T) {
	s := NewDFPNSolver(16)
	n := NewPNSNode(hex.Unknown, 1)
	s.updatePDNum(&n)
	if n.Phi != 1 || n.Delta != 1 {
		t.Errorf("updatePDNum on a childless node mutated it: (%d,%d)", n.Phi, n.Delta)
	}
}
