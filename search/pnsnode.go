package search

import (
	"github.com/havannah-labs/hvn/arena"
	"github.com/havannah-labs/hvn/hex"
)

// Proof/disproof number sentinels. Grounded exactly on solverpns.h; the
// threshold arithmetic in dfpnsab (§4.5) relies on these specific values
// not overflowing when added together, so they must not be changed.
const (
	Loss uint32 = (1 << 30) - 1
	Draw uint32 = (1 << 30) - 2
	Inf  uint32 = (1 << 30) - 3
)

// PNSNode is one node of the proof-number search tree, stored in a
// CompactTree arena via its Children handle.
type PNSNode struct {
	Phi, Delta uint32
	Move       hex.Move
	Children   arena.Children[PNSNode]
}

// NewPNSNode returns a fresh unexpanded node with phi = delta = v.
func NewPNSNode(m hex.Move, v uint32) PNSNode {
	return PNSNode{Phi: v, Delta: v, Move: m}
}

// Terminal reports whether the node is proved or disproved.
func (n *PNSNode) Terminal() bool { return n.Phi == 0 || n.Delta == 0 }

// Size recursively counts this node's descendants (not itself).
func (n *PNSNode) Size() int {
	kids := n.Children.All()
	num := len(kids)
	for i := range kids {
		num += kids[i].Size()
	}
	return num
}

// SwapTree exchanges n's and o's child subtrees without copying them, used
// when committing a move to reuse the matching child's subtree as the new
// root.
func (n *PNSNode) SwapTree(o *PNSNode) {
	n.Children.Swap(&o.Children)
}

// Alloc reserves num children for this node from ct.
func (n *PNSNode) Alloc(num int, ct *arena.CompactTree[PNSNode]) {
	n.Children.Alloc(num, ct)
}

// Dealloc recursively frees this node's descendants (but not the node
// itself, which is usually embedded in its parent's block), returning the
// number of node-slots reclaimed.
func (n *PNSNode) Dealloc(ct *arena.CompactTree[PNSNode]) int {
	kids := n.Children.All()
	freed := len(kids)
	for i := range kids {
		freed += kids[i].Dealloc(ct)
	}
	n.Children.Dealloc(ct)
	return freed
}

// ABVal sets this node's (phi, delta) from the result of a fixed-depth
// alpha-beta probe, exactly as PNSNode::abval does. outcome is in
// {-2,-1,0,1,2} (see AlphaBeta.negamax), seen from the side that played
// this node's move, so +2 marks the node as a win for its parent; toPlay is
// that side (the side to move at the parent); assign is 0 to leave draws unresolved or the player
// number ties are assigned to for this run; value is the initial proof
// weight (1, usually biased upward by probe node count).
func (n *PNSNode) ABVal(outcome int, toPlay, assign uint8, value uint32) {
	if assign != 0 && (outcome == 1 || outcome == -1) {
		if toPlay == assign {
			outcome = 2
		} else {
			outcome = -2
		}
	}
	switch outcome {
	case 0:
		n.Phi, n.Delta = value, value
	case 2:
		n.Phi, n.Delta = Loss, 0
	case -2:
		n.Phi, n.Delta = 0, Loss
	default: // residual +-1 when assign == 0
		n.Phi, n.Delta = 0, Draw
	}
}
