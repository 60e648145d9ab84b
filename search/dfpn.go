package search

import (
	"unsafe"

	"github.com/havannah-labs/hvn/arena"
	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/timer"
)

// Outcome is the result of a full DFPN+alpha-beta solve, after combining
// the two ties-assignment runs (SPEC_FULL.md §4.5).
type Outcome int

const (
	OutcomeOpponentWins Outcome = iota
	OutcomeCurrentWins
	OutcomeDraw
	OutcomeLossOrDraw
	OutcomeWinOrDraw
	OutcomeUnresolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOpponentWins:
		return "opponent wins"
	case OutcomeCurrentWins:
		return "current player wins"
	case OutcomeDraw:
		return "draw"
	case OutcomeLossOrDraw:
		return "loss or draw"
	case OutcomeWinOrDraw:
		return "win or draw"
	}
	return "unresolved"
}

// DFPNSolver is a depth-first proof-number search with an alpha-beta probe
// at leaf expansion. Grounded on original_source/solverpns.h and
// solverdfpnsab.cpp; Go structuring (table-free, pool-free here since the
// arena already owns allocation) follows prove/dfpn.go's shape of a single
// solver struct driving a recursive step.
type DFPNSolver struct {
	Ctmem    *arena.CompactTree[PNSNode]
	AB       int // depth of the alpha-beta probe run at each freshly expanded leaf
	MaxNodes uint64

	Nodes uint64
	Root  PNSNode

	ab *AlphaBeta
}

// NewDFPNSolver sizes the node budget from a MiB limit, the way the
// reference implementation translates memlimit*1024*1024/sizeof(PNSNode).
func NewDFPNSolver(memLimitMiB uint64) *DFPNSolver {
	nodeSize := uint64(unsafe.Sizeof(PNSNode{}))
	return &DFPNSolver{
		Ctmem:    arena.New[PNSNode](),
		AB:       1,
		MaxNodes: memLimitMiB * 1024 * 1024 / nodeSize,
		ab:       NewAlphaBeta(),
	}
}

func (s *DFPNSolver) resetArena() {
	s.Root.Dealloc(s.Ctmem)
	s.Ctmem.Compact(1, 1)
	s.Root = NewPNSNode(hex.Unknown, 1)
	s.Nodes = 0
}

// Solve runs the dual-run ties-assignment DFPN+alpha-beta search and
// combines the outcomes per the table in SPEC_FULL.md §4.5.
func (s *DFPNSolver) Solve(board *hex.Board, flag *timer.Flag) (Outcome, hex.Move) {
	mover := board.ToPlay()
	other := uint8(3 - mover)

	s.resetArena()
	r1, m1 := s.runDFPNSAB(board, other, flag)
	if r1 == 1 {
		return OutcomeCurrentWins, m1
	}

	s.resetArena()
	r2, m2 := s.runDFPNSAB(board, mover, flag)

	switch {
	case r1 == -1 && r2 == -1:
		return OutcomeOpponentWins, hex.Unknown
	case r1 == -1 && r2 == 1:
		return OutcomeDraw, m2
	case r1 == -1 && r2 == 0:
		return OutcomeLossOrDraw, hex.Unknown
	case r1 == 0 && r2 == 1:
		return OutcomeWinOrDraw, m2
	default:
		return OutcomeUnresolved, hex.Unknown
	}
}

// runDFPNSAB drives a single proof-number search to completion (or
// timeout/OOM), with ties assigned to player `ties`. It returns 1 for a
// proven win for the mover, -1 for a proven loss, 0 otherwise.
func (s *DFPNSolver) runDFPNSAB(board *hex.Board, ties uint8, flag *timer.Flag) (int, hex.Move) {
	collected := false
	for !flag.Load() && s.Root.Phi != 0 && s.Root.Delta != 0 {
		ok := s.dfpnsab(board, &s.Root, 0, Inf/2, Inf/2, ties, flag)
		if !ok {
			if collected {
				break
			}
			freed := s.garbageCollect(&s.Root)
			s.Nodes -= uint64(freed)
			collected = true
		}
	}
	if s.Root.Phi == 0 {
		return 1, s.bestMove(&s.Root)
	}
	if s.Root.Delta == 0 {
		return -1, hex.Unknown
	}
	return 0, hex.Unknown
}

func (s *DFPNSolver) bestMove(n *PNSNode) hex.Move {
	for _, c := range n.Children.All() {
		if c.Delta == 0 {
			return c.Move
		}
	}
	return hex.Unknown
}

// dfpnsab is the recursive depth-first proof-number step, grounded exactly
// on solverdfpnsab.cpp's dfpnsab. It returns false only on memory
// exhaustion at a leaf expansion.
func (s *DFPNSolver) dfpnsab(board *hex.Board, node *PNSNode, depth int, tp, td uint32, ties uint8, flag *timer.Flag) bool {
	if node.Children.Empty() {
		moves := board.LegalMoves()
		if s.Nodes+uint64(len(moves)) > s.MaxNodes {
			return false
		}
		node.Alloc(len(moves), s.Ctmem)
		s.Nodes += uint64(len(moves))

		kids := node.Children.All()
		for i, m := range moves {
			child := board.Clone()
			turn := board.ToPlay()
			child.MoveAs(m, turn)

			s.ab.Stats = Stats{}
			abValue, _ := s.ab.Solve(child, s.AB+1, flag)
			weight := uint32(1) + uint32(s.ab.Stats.Nodes)

			kids[i] = NewPNSNode(m, 1)
			kids[i].ABVal(-abValue, turn, ties, weight)
		}
		s.updatePDNum(node)
		return true
	}

	for !flag.Load() && s.Nodes < s.MaxNodes && node.Phi < tp && node.Delta < td {
		kids := node.Children.All()
		c1i, c2i := selectTwoSmallestDelta(kids)
		c1, c2 := &kids[c1i], &kids[c2i]

		tpc := saturatingThreshold(int64(td)+int64(c1.Phi)-int64(node.Delta), Inf/2)
		tdc := saturatingThreshold(int64(c2.Delta)+1, tp)

		child := board.Clone()
		child.MoveAs(c1.Move, board.ToPlay())
		if !s.dfpnsab(child, c1, depth+1, tpc, tdc, ties, flag) {
			return false
		}
		if c1.Terminal() {
			freed := c1.Dealloc(s.Ctmem)
			s.Nodes -= uint64(freed)
		}
		s.updatePDNum(node)
	}
	return true
}

// updatePDNum recomputes node's (phi, delta) from its children: phi is the
// smallest child delta, delta is the saturating sum of child phis.
func (s *DFPNSolver) updatePDNum(node *PNSNode) {
	kids := node.Children.All()
	if len(kids) == 0 {
		return
	}
	minDelta := Inf
	var sumPhi uint64
	for i := range kids {
		if kids[i].Delta < minDelta {
			minDelta = kids[i].Delta
		}
		sumPhi += uint64(kids[i].Phi)
	}
	if sumPhi > uint64(Inf) {
		sumPhi = uint64(Inf)
	}
	node.Phi = minDelta
	node.Delta = uint32(sumPhi)
}

// garbageCollect discards the children of any already-terminal node, but
// leaves unresolved subtrees alone, returning the number of node-slots
// reclaimed. Grounded on SolverPNS::garbage_collect.
func (s *DFPNSolver) garbageCollect(node *PNSNode) int {
	if node.Terminal() {
		return node.Dealloc(s.Ctmem)
	}
	freed := 0
	kids := node.Children.All()
	for i := range kids {
		freed += s.garbageCollect(&kids[i])
	}
	return freed
}

// selectTwoSmallestDelta returns the indices of the child with the smallest
// delta and the child with the second-smallest delta. When only one child
// exists the second index equals the first; with two or more children the
// indices differ, and an exact tie for smallest puts the later child second.
func selectTwoSmallestDelta(kids []PNSNode) (int, int) {
	c1, c2 := 0, 0
	for i := 1; i < len(kids); i++ {
		if kids[i].Delta < kids[c1].Delta {
			c2 = c1
			c1 = i
		} else if c2 == c1 || kids[i].Delta < kids[c2].Delta {
			c2 = i
		}
	}
	return c1, c2
}

// saturatingThreshold clamps v into [0, cap], matching the min(INF32/2, ...)
// and min(tp, ...) guards around dfpnsab's threshold arithmetic, done in
// 64-bit to avoid the underflow/overflow the raw uint32 expressions would
// otherwise risk.
func saturatingThreshold(v int64, cap uint32) uint32 {
	if v < 0 {
		v = 0
	}
	if v > int64(cap) {
		v = int64(cap)
	}
	return uint32(v)
}
