package hex

import "testing"

func TestNewBoardCellCount(t *testing.T) {
	b := New(4)
	if b.NumCells() != 37 {
		t.Errorf("NumCells(4) = %d, want 37", b.NumCells())
	}
	if b.MovesRemain() != b.NumCells() {
		t.Errorf("MovesRemain = %d, want %d", b.MovesRemain(), b.NumCells())
	}
}

func TestFirstMoveTogglesToPlay(t *testing.T) {
	b := New(4)
	if !b.Move(Move{0, 0}) {
		t.Fatal("expected legal move")
	}
	if b.ToPlay() != 2 {
		t.Errorf("ToPlay() = %d, want 2", b.ToPlay())
	}
	if b.Result() != Ongoing {
		t.Errorf("Result() = %v, want Ongoing", b.Result())
	}
	root := b.FindGroup(0, 0)
	if popcount6(b.cells[root].corner) == 0 {
		t.Errorf("corner 0 group should carry corner bit")
	}
}

func TestIllegalMoveRejected(t *testing.T) {
	b := New(4)
	b.Move(Move{0, 0})
	if b.Move(Move{0, 0}) {
		t.Error("replaying an occupied cell should fail")
	}
	if b.Move(Move{-5, -5}) {
		t.Error("off-board move should fail")
	}
}

// TestBridgeWin builds a bridge for player 1 between corners 0 and 1 of a
// size-4 board and checks the win fires on the closing move, matching
// SPEC_FULL.md §8 scenario 2.
func TestBridgeWin(t *testing.T) {
	b := New(4)
	moves := []Move{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	opp := []Move{{0, 1}, {1, 1}, {0, 2}}
	for i, m := range moves {
		if !b.Move(m) {
			t.Fatalf("move %v rejected", m)
		}
		if i < len(opp) {
			b.Move(opp[i])
		}
	}
	if b.Result() != Player1 {
		t.Fatalf("Result() = %v, want Player1", b.Result())
	}
	root := b.FindGroup(0, 0)
	if popcount6(b.cells[root].corner) < 2 {
		t.Errorf("winning group should touch >=2 corners")
	}
}

// TestRingWin builds a minimal 6-stone ring for player 1 around a single
// empty hub, matching SPEC_FULL.md §8 scenario 4. Player 2's moves are
// interleaved on cells far from the ring so they never interfere with it.
func TestRingWin(t *testing.T) {
	b := New(4)
	hub := Move{1, 1}
	var p1 []Move
	for i := 0; i < 6; i++ {
		p1 = append(p1, hub.add(neighbours[i]))
	}
	far := []Move{{5, 3}, {4, 3}, {4, 2}, {5, 4}, {5, 2}}

	for i := 0; i < 5; i++ {
		if !b.MoveAs(p1[i], 1) {
			t.Fatalf("ring setup move %v rejected", p1[i])
		}
		if b.Result() != Ongoing {
			t.Fatalf("premature result %v after %d ring stones", b.Result(), i+1)
		}
		if !b.MoveAs(far[i], 2) {
			t.Fatalf("filler move %v rejected", far[i])
		}
	}
	b.MoveAs(p1[5], 1)
	if b.Result() != Player1 {
		t.Fatalf("Result() = %v, want Player1 (ring)", b.Result())
	}
}

// TestForkWin builds a player-2 fork touching edges 0, 2, and 4 of a size-4
// board, matching SPEC_FULL.md §8 scenario 3: three arms radiating from a
// central hub cell, each arm ending on a different edge. The closing move
// links the third arm into the hub's group.
func TestForkWin(t *testing.T) {
	b := New(4)
	setup := []Move{
		{2, 0}, {3, 1}, {3, 2}, {3, 3}, // hub arm reaching edge 0
		{2, 3}, {1, 3}, {1, 4}, // hub arm reaching edge 4
		{4, 3}, {5, 3}, // hub arm reaching toward edge 2, one short
	}
	for _, m := range setup {
		if !b.MoveAs(m, 2) {
			t.Fatalf("setup move %v rejected", m)
		}
	}
	if b.Result() != Ongoing {
		t.Fatalf("premature result %v before closing move", b.Result())
	}

	closing := Move{6, 4}
	if !b.MoveAs(closing, 2) {
		t.Fatalf("closing move %v rejected", closing)
	}
	if b.Result() != Player2 {
		t.Fatalf("Result() = %v, want Player2 (fork)", b.Result())
	}
	if b.WinKind() != WinFork {
		t.Fatalf("WinKind() = %v, want WinFork", b.WinKind())
	}
	root := b.FindGroup(int(closing.X), int(closing.Y))
	if popcount6(b.cells[root].edge) < 3 {
		t.Errorf("winning group should touch >=3 edges")
	}
}

// TestNeighbourSkipDoesNotMissCorner enumerates every size-4 configuration
// of a central cell's six neighbours (each either friendly or empty) and
// confirms MoveAs's skip-the-next-neighbour optimization still merges every
// friendly neighbour into the newly placed stone's group. A missed merge
// here would under-count a group's corner/edge masks and could leave a real
// win undetected.
func TestNeighbourSkipDoesNotMissCorner(t *testing.T) {
	for mask := 0; mask < 64; mask++ {
		b := New(4)
		center := Move{3, 3}

		var friends []Move
		for i := 0; i < 6; i++ {
			if mask&(1<<uint(i)) != 0 {
				friends = append(friends, center.add(neighbours[i]))
			}
		}
		for _, m := range friends {
			if !b.MoveAs(m, 1) {
				t.Fatalf("mask=%06b: setup move %v rejected", mask, m)
			}
		}

		if b.Result() != Ongoing {
			// all six neighbours (mask 0b111111) already close a ring
			// around the center without it; nothing left to merge.
			continue
		}
		if !b.MoveAs(center, 1) {
			t.Fatalf("mask=%06b: center move rejected", mask)
		}

		root := b.FindGroup(int(center.X), int(center.Y))
		for _, m := range friends {
			if b.FindGroup(int(m.X), int(m.Y)) != root {
				t.Fatalf("mask=%06b: neighbour %v not merged into center's group", mask, m)
			}
		}
	}
}

func TestMoveIteratorCoversAllCells(t *testing.T) {
	b := New(3)
	count := 0
	it := b.Moves()
	for it.Next() {
		count++
	}
	if count != b.NumCells() {
		t.Errorf("iterator visited %d cells, want %d", count, b.NumCells())
	}
}

func TestDrawFillsBoard(t *testing.T) {
	b := New(3)
	for {
		it := b.Moves()
		if !it.Next() {
			break
		}
		b.Move(it.Move())
		if b.Result() != Ongoing {
			return
		}
	}
	if b.Result() != Draw && b.Result() != Ongoing {
		t.Errorf("Result() = %v after filling board", b.Result())
	}
}
