package arena

import (
	"sync"
	"sync/atomic"
)

// chunk is one fixed-capacity arena segment. Allocation inside a chunk
// reserves a byte range via CAS on used; chunk.blocks records, in
// allocation order, every block ever carved from this chunk's tail (not
// from a freelist) so that Compact can walk live blocks in the order the
// reference implementation's memmove-based sliding phase assumes.
type chunk[Node any] struct {
	next     atomic.Pointer[chunk[Node]]
	id       int64
	capacity int64
	used     atomic.Int64

	mu     sync.Mutex
	blocks []*Data[Node]
}

func newChunk[Node any](id int64) *chunk[Node] {
	return &chunk[Node]{id: id, capacity: ChunkSize}
}

func (c *chunk[Node]) record(d *Data[Node]) {
	c.mu.Lock()
	c.blocks = append(c.blocks, d)
	c.mu.Unlock()
}

// CompactTree is a generic arena allocator for a self-referential tree of
// Node values, grounded on original_source/compacttree.h.
type CompactTree[Node any] struct {
	head        *chunk[Node]
	current     atomic.Pointer[chunk[Node]]
	numChunks   atomic.Int64
	nextChunkID atomic.Int64
	newChunkMu  sync.Mutex

	freelist [MaxNum + 1]atomic.Pointer[Data[Node]]
	memUsed  atomic.Int64
}

// New creates an empty arena with a single initial chunk.
func New[Node any]() *CompactTree[Node] {
	ct := &CompactTree[Node]{}
	c := newChunk[Node](0)
	ct.head = c
	ct.current.Store(c)
	ct.numChunks.Store(1)
	return ct
}

// MemUsed reports the live byte footprint currently tracked by the arena.
func (ct *CompactTree[Node]) MemUsed() int64 { return ct.memUsed.Load() }

// NumChunks reports how many chunks are currently linked into the arena.
func (ct *CompactTree[Node]) NumChunks() int64 { return ct.numChunks.Load() }

// alloc reserves a block of num children, preferring a freelist hit,
// falling back to bump-allocating from the current chunk's tail, falling
// back to linking in a new chunk — the same three-step order as
// CompactTree::alloc.
func (ct *CompactTree[Node]) alloc(num int, owner *Children[Node]) *Data[Node] {
	size := blockSize[Node](num)
	ct.memUsed.Add(size)

	if num <= MaxNum {
		if d := ct.popFreelist(num); d != nil {
			*d = Data[Node]{capacity: uint16(num), used: uint16(num), owner: owner, children: make([]Node, num)}
			d.header = sanityHeader(d)
			return d
		}
	}

	for {
		cur := ct.current.Load()
		for {
			used := cur.used.Load()
			next := used + size
			if next > cur.capacity {
				break
			}
			if cur.used.CompareAndSwap(used, next) {
				d := &Data[Node]{capacity: uint16(num), used: uint16(num), owner: owner, children: make([]Node, num)}
				d.header = sanityHeader(d)
				cur.record(d)
				return d
			}
		}

		if nc := cur.next.Load(); nc != nil {
			ct.current.CompareAndSwap(cur, nc)
			continue
		}

		ct.newChunkMu.Lock()
		if cur.next.Load() == nil {
			id := ct.nextChunkID.Add(1)
			nc := newChunk[Node](id)
			cur.next.Store(nc)
			ct.numChunks.Add(1)
		}
		ct.newChunkMu.Unlock()
	}
}

func (ct *CompactTree[Node]) popFreelist(capacity int) *Data[Node] {
	for {
		head := ct.freelist[capacity].Load()
		if head == nil {
			return nil
		}
		next := head.nextfree
		if ct.freelist[capacity].CompareAndSwap(head, next) {
			return head
		}
	}
}

func (ct *CompactTree[Node]) pushFreelist(d *Data[Node]) {
	capacity := int(d.capacity)
	if capacity > MaxNum {
		return // beyond MaxNum span, never reused — matches the reference cap.
	}
	for {
		head := ct.freelist[capacity].Load()
		d.nextfree = head
		if ct.freelist[capacity].CompareAndSwap(head, d) {
			return
		}
	}
}

// dealloc returns a block to its capacity's freelist, matching
// CompactTree::dealloc.
func (ct *CompactTree[Node]) dealloc(d *Data[Node]) {
	ct.memUsed.Add(-blockSize[Node](int(d.capacity)))

	var zero Node
	for i := range d.children {
		d.children[i] = zero
	}
	d.used = d.capacity
	d.header = 0
	d.owner = nil
	ct.pushFreelist(d)
}

// Compact consolidates bookkeeping for every chunk, dropping vacant blocks
// (and with them all dead chunk-tracking state) so the garbage collector can
// reclaim them.
//
// Callers must guarantee no concurrent allocation or deallocation is in
// flight — compaction is stop-the-world, exactly as in the reference
// implementation. Unlike the reference's three-phase memmove-based slide,
// this implementation does not relocate live Go objects (the garbage
// collector already owns that problem); instead it re-threads the chunk
// list down to a single chunk containing only the live blocks and empties
// every freelist (vacant blocks are not kept for reuse), which preserves the invariants that matter
// at this level: every live block's back-pointer still equals its owning
// handle, and no block is simultaneously reachable from a handle and from
// a freelist. arenasize/generationsize are accepted for interface parity
// with solverpns.h's GC policy callers but do not change behaviour here —
// there is no OS-visible memory to partially reclaim the way there is with
// a real chunk allocator.
func (ct *CompactTree[Node]) Compact(arenasize, generationsize int) {
	var live []*Data[Node]
	for c := ct.head; c != nil; c = c.next.Load() {
		c.mu.Lock()
		for _, d := range c.blocks {
			if d.header != 0 {
				live = append(live, d)
			}
		}
		c.blocks = nil
		c.mu.Unlock()
	}

	for i := range ct.freelist {
		ct.freelist[i].Store(nil)
	}

	nc := newChunk[Node](0)
	var used int64
	for _, d := range live {
		used += blockSize[Node](d.Num())
		nc.blocks = append(nc.blocks, d)
	}
	nc.used.Store(used)

	ct.head = nc
	ct.current.Store(nc)
	ct.numChunks.Store(1)
	ct.nextChunkID.Store(0)
}
