package hex

import (
	"fmt"
	"strings"
)

// cell is one slot of the board's dense array. The reference implementation
// packs piece/parent/size/corner/edge into 32 bits of C bitfields; Go has no
// bitfields, so these are just plain fields — the packing bought the
// original implementation cache density, which matters less here since the
// arena (package arena) is where this codebase's memory-layout effort goes.
type cell struct {
	piece  uint8
	parent int32
	size   int32
	corner uint8 // 6-bit mask, one bit per corner
	edge   uint8 // 6-bit mask, one bit per edge
}

func popcount6(v uint8) int {
	n := 0
	for i := 0; i < 6; i++ {
		if v&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// Outcome is the result of a finished (or unfinished) game.
type Outcome int8

const (
	// Ongoing marks a game still in progress. Named distinctly from
	// Move's Unknown sentinel in move.go — Outcome and Move are different
	// types, but both packages' "no value yet" constant would otherwise
	// collide on the name Unknown in this package's namespace.
	Ongoing Outcome = -1
	Draw    Outcome = 0
	Player1 Outcome = 1
	Player2 Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "none"
	case Draw:
		return "draw"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "invalid"
}

// WinKind names which of Havannah's three winning conditions closed out a
// finished game, or WinNone while the game is undecided or ends in a draw.
type WinKind int8

const (
	WinNone   WinKind = 0
	WinBridge WinKind = 1
	WinFork   WinKind = 2
	WinRing   WinKind = 3
)

func (k WinKind) String() string {
	switch k {
	case WinBridge:
		return "bridge"
	case WinFork:
		return "fork"
	case WinRing:
		return "ring"
	}
	return "none"
}

// Board is a Havannah board of side length 3..10. Copy it with Clone to
// simulate a move, the way tak.Position is copied per ply in the teacher's
// move-application code; a plain struct copy shares the cells slice.
type Board struct {
	size    int
	sizeD   int
	cells   []cell
	nMoves  int
	toPlay  uint8
	result  Outcome
	winKind WinKind
}

// New builds an empty board of the given side length.
func New(size int) *Board {
	if size < 3 || size > 10 {
		panic(fmt.Sprintf("hex: invalid board size %d", size))
	}
	b := &Board{
		size:   size,
		sizeD:  size*2 - 1,
		toPlay: 1,
		result: Ongoing,
	}
	b.cells = make([]cell, b.sizeD*b.sizeD)
	for y := 0; y < b.sizeD; y++ {
		for x := 0; x < b.sizeD; x++ {
			i := b.xy(x, y)
			b.cells[i] = cell{
				parent: int32(i),
				size:   1,
				corner: cornerMaskAt(size, b.sizeD, x, y),
				edge:   edgeMaskAt(size, b.sizeD, x, y),
			}
		}
	}
	return b
}

func cornerMaskAt(size, sizeD, x, y int) uint8 {
	c := isCornerRaw(size, sizeD, x, y)
	if c < 0 {
		return 0
	}
	return 1 << uint(c)
}

func edgeMaskAt(size, sizeD, x, y int) uint8 {
	e := isEdgeRaw(size, sizeD, x, y)
	if e < 0 {
		return 0
	}
	return 1 << uint(e)
}

// Clone returns an independent copy, for move simulation (e.g. leaf
// expansion in the solver).
func (b *Board) Clone() *Board {
	nb := *b
	nb.cells = make([]cell, len(b.cells))
	copy(nb.cells, b.cells)
	return &nb
}

func (b *Board) Size() int  { return b.size }
func (b *Board) SizeD() int { return b.sizeD }

// NumCells is the number of on-board cells.
func (b *Board) NumCells() int { return b.sizeD*b.sizeD - b.size*(b.size-1) }

func (b *Board) NumMoves() int      { return b.nMoves }
func (b *Board) MovesRemain() int   { return b.NumCells() - b.nMoves }
func (b *Board) ToPlay() uint8      { return b.toPlay }
func (b *Board) Result() Outcome    { return b.result }
func (b *Board) WinKind() WinKind   { return b.winKind }

func (b *Board) xy(x, y int) int { return y*b.sizeD + x }

func (b *Board) Get(x, y int) uint8 { return b.cells[b.xy(x, y)].piece }
func (b *Board) GetMove(m Move) uint8 { return b.Get(int(m.X), int(m.Y)) }

// OnBoard reports whether (x,y) lies within the hexagon, assuming it's
// already within array bounds.
func (b *Board) OnBoard(x, y int) bool {
	return y-x < b.size && x-y < b.size
}

// OnBoard2 additionally checks array bounds.
func (b *Board) OnBoard2(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.sizeD && y < b.sizeD && b.OnBoard(x, y)
}

func isCornerRaw(size, sizeD, x, y int) int {
	if y-x >= size || x-y >= size {
		return -1
	}
	m, e := size-1, sizeD-1
	switch {
	case x == 0 && y == 0:
		return 0
	case x == m && y == 0:
		return 1
	case x == e && y == m:
		return 2
	case x == e && y == e:
		return 3
	case x == m && y == e:
		return 4
	case x == 0 && y == m:
		return 5
	}
	return -1
}

func isEdgeRaw(size, sizeD, x, y int) int {
	if y-x >= size || x-y >= size {
		return -1
	}
	m, e := size-1, sizeD-1
	switch {
	case y == 0 && x != 0 && x != m:
		return 0
	case x-y == m && x != m && x != e:
		return 1
	case x == e && y != m && y != e:
		return 2
	case y == e && x != e && x != m:
		return 3
	case y-x == m && x != m && x != 0:
		return 4
	case x == 0 && y != m && y != 0:
		return 5
	}
	return -1
}

// LineStart is the first on-board column in row y.
func (b *Board) LineStart(y int) int {
	if y < b.size {
		return 0
	}
	return y - (b.size - 1)
}

// LineLen is the number of on-board cells in row y.
func (b *Board) LineLen(y int) int {
	d := (b.size - 1) - y
	if d < 0 {
		d = -d
	}
	return b.sizeD - d
}

// ValidMove reports whether a move can legally be played at (x,y).
func (b *Board) ValidMove(x, y int) bool {
	return b.result == Ongoing && b.OnBoard2(x, y) && b.cells[b.xy(x, y)].piece == 0
}

func (b *Board) ValidMoveM(m Move) bool { return b.ValidMove(int(m.X), int(m.Y)) }

// find resolves the root of i's group, compressing the path as it goes —
// exactly the recursive find_group of the reference implementation.
func (b *Board) find(i int32) int32 {
	if b.cells[i].parent != i {
		b.cells[i].parent = b.find(b.cells[i].parent)
	}
	return b.cells[i].parent
}

// FindGroup returns the representative cell index for the group containing
// (x,y).
func (b *Board) FindGroup(x, y int) int32 {
	return b.find(int32(b.xy(x, y)))
}

// join merges the groups containing cell indices i and j, by size, ORing
// corner/edge masks into the surviving root. It reports whether i and j
// were already in the same group — the "ring hint" used by Move.
func (b *Board) join(i, j int32) bool {
	i = b.find(i)
	j = b.find(j)
	if i == j {
		return true
	}
	if b.cells[i].size < b.cells[j].size {
		i, j = j, i
	}
	b.cells[j].parent = i
	b.cells[i].size += b.cells[j].size
	b.cells[i].corner |= b.cells[j].corner
	b.cells[i].edge |= b.cells[j].edge
	return false
}

// detectRing looks for a ring of friendly cells passing through pos, after
// pos has already been merged into its final group.
func (b *Board) detectRing(pos Move) bool {
	group := b.FindGroup(int(pos.X), int(pos.Y))
	for i := 0; i < 6; i++ {
		loc := pos.add(neighbours[i])
		if b.OnBoard2(int(loc.X), int(loc.Y)) &&
			b.FindGroup(int(loc.X), int(loc.Y)) == group &&
			b.followRing(pos, loc, i, group) {
			return true
		}
	}
	return false
}

// followRing continues a ring search from cur, having arrived via direction
// dir. Only the three "roughly forward" directions are tried — the
// backwards half of the compass cannot lie on the shortest loop back to
// start. This pruning is carried over unchanged from the reference
// implementation (see SPEC_FULL.md §9); it is intentionally not "complete"
// DFS and that is by design, not a bug.
func (b *Board) followRing(start, cur Move, dir int, group int32) bool {
	if start == cur {
		return true
	}
	for i := 5; i <= 7; i++ {
		nd := (dir + i) % 6
		next := cur.add(neighbours[nd])
		if b.OnBoard2(int(next.X), int(next.Y)) &&
			b.FindGroup(int(next.X), int(next.Y)) == group &&
			b.followRing(start, next, nd, group) {
			return true
		}
	}
	return false
}

// Move plays a stone for the current player at pos. It reports whether the
// move was legal; an illegal move leaves the board unchanged.
func (b *Board) Move(pos Move) bool {
	return b.MoveAs(pos, b.toPlay)
}

// MoveAs plays a stone for the given player, bypassing whose turn it
// nominally is — used by the solver to simulate moves during search without
// mutating toPlay bookkeeping twice.
func (b *Board) MoveAs(pos Move, turn uint8) bool {
	if !b.ValidMoveM(pos) {
		return false
	}

	idx := int32(b.xy(int(pos.X), int(pos.Y)))
	b.cells[idx].piece = turn
	b.nMoves++
	b.toPlay = 3 - b.toPlay

	alreadyJoined := false
	for i := 0; i < 6; i++ {
		loc := pos.add(neighbours[i])
		if b.OnBoard2(int(loc.X), int(loc.Y)) && b.Get(int(loc.X), int(loc.Y)) == turn {
			locIdx := int32(b.xy(int(loc.X), int(loc.Y)))
			if b.join(idx, locIdx) {
				alreadyJoined = true
			}
			i++ // skip the next neighbour: see SPEC_FULL.md §4.1 neighbour-merge detail.
		}
	}

	root := b.find(idx)
	g := &b.cells[root]
	switch {
	case popcount6(g.corner) >= 2:
		b.result, b.winKind = Outcome(turn), WinBridge
	case popcount6(g.edge) >= 3:
		b.result, b.winKind = Outcome(turn), WinFork
	case alreadyJoined && g.size >= 6 && b.detectRing(pos):
		b.result, b.winKind = Outcome(turn), WinRing
	case b.nMoves == b.NumCells():
		b.result = Draw
	}
	return true
}

// TestWin reports whether playing turn at pos would immediately win,
// without mutating the board. Used by the alpha-beta solver's fast leaf
// probe (SPEC_FULL.md §4.3), mirroring Board::test_win in the reference
// implementation — implemented here by simulating on a clone, since union
// find's mutation isn't trivially undoable in place.
func (b *Board) TestWin(pos Move, turn uint8) bool {
	if !b.ValidMoveM(pos) {
		return false
	}
	c := b.Clone()
	c.MoveAs(pos, turn)
	return c.result == Outcome(turn)
}

// MoveIterator yields every legal move on the board, in row-major order.
// Usage follows bufio.Scanner: call Next until it returns false, reading
// Move in between.
type MoveIterator struct {
	b   *Board
	cur Move
}

// Moves returns a fresh iterator over all legal moves.
func (b *Board) Moves() *MoveIterator {
	return &MoveIterator{b: b, cur: Move{-1, 0}}
}

// Next advances the iterator and reports whether a move is available.
func (it *MoveIterator) Next() bool {
	b := it.b
	for {
		it.cur.X++
		if int(it.cur.X) >= b.sizeD {
			it.cur.Y++
			if int(it.cur.Y) >= b.sizeD {
				return false
			}
			it.cur.X = int8(b.LineStart(int(it.cur.Y)))
		}
		if b.ValidMoveM(it.cur) {
			return true
		}
	}
}

// Move returns the current move. Valid only after Next returns true, before
// the following call to Next.
func (it *MoveIterator) Move() Move { return it.cur }

// LegalMoves collects every legal move into a slice; convenient for leaf
// expansion where the solver needs a fixed-size children array up front.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, b.MovesRemain())
	for y := 0; y < b.sizeD; y++ {
		for x := b.LineStart(y); x < b.LineStart(y)+b.LineLen(y); x++ {
			if b.ValidMove(x, y) {
				moves = append(moves, Move{int8(x), int8(y)})
			}
		}
	}
	return moves
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.sizeD; y++ {
		pad := (b.size - 1) - y
		if pad < 0 {
			pad = -pad
		}
		sb.WriteString(strings.Repeat(" ", pad+2))
		for x := 0; x < b.sizeD; x++ {
			if b.OnBoard(x, y) {
				switch b.Get(x, y) {
				case 0:
					sb.WriteByte('.')
				case 1:
					sb.WriteByte('W')
				case 2:
					sb.WriteByte('B')
				}
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
