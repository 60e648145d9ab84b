package arena

import "sync/atomic"

// handle states. The reference implementation overloads the data pointer
// itself with a LOCK=1 sentinel value to mark "being installed"; Go makes
// it awkward to stash a sentinel inside a typed pointer without unsafe
// tricks, so this codebase tracks the same three states with an explicit
// atomic int32 instead — the same pattern ai.MinimaxAI uses for its atomic
// cancellation flag (cancel *int32).
const (
	stateEmpty     int32 = 0
	stateLocked    int32 = 1
	stateInstalled int32 = 2
)

// Children is a handle to a relocatable block of child nodes. It is the
// single field every parent node embeds to own its subtree.
type Children[Node any] struct {
	state int32
	data  *Data[Node]
}

// Empty reports whether the handle currently owns no block.
func (c *Children[Node]) Empty() bool {
	return atomic.LoadInt32(&c.state) != stateInstalled || c.data == nil
}

// Num returns the number of live children, or 0 if empty.
func (c *Children[Node]) Num() int {
	if c.Empty() {
		return 0
	}
	return c.data.Num()
}

// At returns a pointer to the i'th child. Panics if the handle is empty or
// i is out of range, mirroring the reference implementation's unchecked
// array access (a hard precondition, not a recoverable error).
func (c *Children[Node]) At(i int) *Node {
	return c.data.At(i)
}

// All returns the live children slice for iteration, or nil if empty.
func (c *Children[Node]) All() []Node {
	if c.Empty() {
		return nil
	}
	return c.data.Children()
}

// Lock transitions an empty handle to "being installed", the Go analogue of
// CAS'ing the data pointer from NULL to LOCK. It reports whether the
// transition succeeded; a caller that loses the race must not proceed to
// alloc.
func (c *Children[Node]) Lock() bool {
	return atomic.CompareAndSwapInt32(&c.state, stateEmpty, stateLocked)
}

// Unlock reverts a locked-but-not-yet-installed handle back to empty.
func (c *Children[Node]) Unlock() {
	atomic.StoreInt32(&c.state, stateEmpty)
}

func (c *Children[Node]) install(d *Data[Node]) {
	c.data = d
	atomic.StoreInt32(&c.state, stateInstalled)
}

// Alloc reserves num children from ct and installs them into this handle.
// The handle must be empty; Alloc locks it for the duration.
func (c *Children[Node]) Alloc(num int, ct *CompactTree[Node]) {
	if num == 0 {
		return
	}
	if !c.Lock() {
		panic("arena: Alloc called on a non-empty handle")
	}
	d := ct.alloc(num, c)
	c.install(d)
}

// Dealloc returns this handle's block (and, recursively, nothing else — the
// caller is responsible for deallocating grandchildren first, matching
// PNSNode::dealloc's explicit recursive walk) to ct, leaving the handle
// empty.
func (c *Children[Node]) Dealloc(ct *CompactTree[Node]) {
	if c.Empty() {
		return
	}
	d := c.data
	c.data = nil
	atomic.StoreInt32(&c.state, stateEmpty)
	ct.dealloc(d)
}

// Shrink drops children[n:Num()), keeping capacity for future reuse.
func (c *Children[Node]) Shrink(n int) {
	if !c.Empty() {
		c.data.shrink(n)
	}
}

// Swap exchanges the blocks owned by c and other, repairing both blocks'
// back-pointers to point at their new owning handle. This is how the DFPN
// solver moves a child's subtree into the root slot after committing a
// move, without copying the subtree itself.
func (c *Children[Node]) Swap(other *Children[Node]) {
	c.data, other.data = other.data, c.data
	cs, os := atomic.LoadInt32(&c.state), atomic.LoadInt32(&other.state)
	atomic.StoreInt32(&c.state, os)
	atomic.StoreInt32(&other.state, cs)
	if c.data != nil {
		c.data.owner = c
	}
	if other.data != nil {
		other.data.owner = other
	}
}
