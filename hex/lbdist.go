package hex

import "container/heap"

const farAway = 1000

// numRegions is the 6 corners plus 6 edges this heuristic floods from.
const numRegions = 12

// LBDists is a lower bound on the number of further moves a player needs to
// complete a bridge or a fork, computed once per board position via a
// Dijkstra flood from each of the 12 regions for each player. Grounded on
// original_source/lbdist.h; the min-heap here is container/heap in place of
// std::priority_queue, following the rest of this codebase's preference for
// standard-library heap-ordered worklists.
type LBDists struct {
	size, sizeD int
	dist        [numRegions][2]([]int32)
}

// NewLBDists allocates (but does not populate) a distance table sized for
// the given board.
func NewLBDists(size, sizeD int) *LBDists {
	d := &LBDists{size: size, sizeD: sizeD}
	n := sizeD * sizeD
	for r := 0; r < numRegions; r++ {
		for p := 0; p < 2; p++ {
			d.dist[r][p] = make([]int32, n)
		}
	}
	return d
}

type heapItem struct {
	cell int32
	dist int32
}

type distHeap []heapItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool   { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{})  { *h = append(*h, x.(heapItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Run recomputes every region/player distance table for board b.
func (d *LBDists) Run(b *Board) {
	for r := 0; r < numRegions; r++ {
		for p := 0; p < 2; p++ {
			row := d.dist[r][p]
			for i := range row {
				row[i] = farAway
			}
		}
	}

	for c := 0; c < 6; c++ {
		x, y := cornerCell(b.size, b.sizeD, c)
		for p := 0; p < 2; p++ {
			h := &distHeap{}
			d.seed(b, h, c, p, x, y)
			d.flood(b, h, c, p)
		}
	}
	for e := 0; e < 6; e++ {
		for p := 0; p < 2; p++ {
			h := &distHeap{}
			for y := 0; y < b.sizeD; y++ {
				for x := b.LineStart(y); x < b.LineStart(y)+b.LineLen(y); x++ {
					if isEdgeRaw(b.size, b.sizeD, x, y) == e {
						d.seed(b, h, 6+e, p, x, y)
					}
				}
			}
			d.flood(b, h, 6+e, p)
		}
	}
}

// cornerCell returns a representative on-board cell for corner index c.
func cornerCell(size, sizeD, c int) (int, int) {
	m, e := size-1, sizeD-1
	switch c {
	case 0:
		return 0, 0
	case 1:
		return m, 0
	case 2:
		return e, m
	case 3:
		return e, e
	case 4:
		return m, e
	case 5:
		return 0, m
	}
	panic("hex: bad corner index")
}

// seed initialises the frontier cell at (x,y) to distance 0 for region/
// player, unless it is occupied by the opponent, mirroring LBDists::init.
func (d *LBDists) seed(b *Board, h *distHeap, region, player int, x, y int) {
	if !b.OnBoard2(x, y) {
		return
	}
	opponent := uint8(2 - player)
	if b.Get(x, y) == opponent {
		return
	}
	idx := int32(b.xy(x, y))
	if d.dist[region][player][idx] > 0 {
		d.dist[region][player][idx] = 0
		heap.Push(h, heapItem{cell: idx, dist: 0})
	}
}

// flood runs a Dijkstra relaxation from the seeded frontier in h, applying
// the "free slide" rule: moving between two cells already owned by player
// costs 0 instead of 1.
func (d *LBDists) flood(b *Board, h *distHeap, region, player int) {
	table := d.dist[region][player]
	playerPiece := uint8(player + 1)
	opponentPiece := uint8(2 - player)

	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem)
		if top.dist > table[top.cell] {
			continue // stale entry
		}
		x := int(top.cell) % b.sizeD
		y := int(top.cell) / b.sizeD

		for i := 0; i < 6; i++ {
			nx, ny := x+int(neighbours[i].X), y+int(neighbours[i].Y)
			if !b.OnBoard2(nx, ny) {
				continue
			}
			if b.Get(nx, ny) == opponentPiece {
				continue
			}
			nIdx := int32(b.xy(nx, ny))
			next := top.dist + 1
			if b.Get(x, y) == playerPiece && b.Get(nx, ny) == playerPiece {
				next--
			}
			if next < table[nIdx] {
				table[nIdx] = next
				heap.Push(h, heapItem{cell: nIdx, dist: next})
			}
		}
	}
}

// partialSortSmallest returns the sum of the n smallest values in vals.
func partialSortSmallest(vals []int32, n int) int32 {
	cp := make([]int32, len(vals))
	copy(cp, vals)
	for i := 0; i < n && i < len(cp); i++ {
		min := i
		for j := i + 1; j < len(cp); j++ {
			if cp[j] < cp[min] {
				min = j
			}
		}
		cp[i], cp[min] = cp[min], cp[i]
	}
	var sum int32
	lim := n
	if lim > len(cp) {
		lim = len(cp)
	}
	for i := 0; i < lim; i++ {
		sum += cp[i]
	}
	return sum
}

// Get returns the lower bound on moves-to-win for cell (x,y) and player
// (0 or 1): the smaller of "two nearest corners" and "three nearest edges".
func (d *LBDists) Get(b *Board, x, y, player int) int32 {
	idx := int32(b.xy(x, y))
	corners := make([]int32, 6)
	for c := 0; c < 6; c++ {
		corners[c] = d.dist[c][player][idx]
	}
	edges := make([]int32, 6)
	for e := 0; e < 6; e++ {
		edges[e] = d.dist[6+e][player][idx]
	}
	cornerSum := partialSortSmallest(corners, 2)
	edgeSum := partialSortSmallest(edges, 3)
	if cornerSum < edgeSum {
		return cornerSum
	}
	return edgeSum
}

// GetBest returns min(Get(...,0), Get(...,1)) — the lower bound for
// whichever player is closer.
func (d *LBDists) GetBest(b *Board, x, y int) int32 {
	a := d.Get(b, x, y, 0)
	c := d.Get(b, x, y, 1)
	if a < c {
		return a
	}
	return c
}
