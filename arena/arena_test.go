package arena

import "testing"

type leaf struct {
	val      int
	children Children[leaf]
}

func TestAllocInstallsBackPointer(t *testing.T) {
	ct := New[leaf]()
	var h Children[leaf]
	h.Alloc(3, ct)
	if h.Empty() {
		t.Fatal("handle should be non-empty after Alloc")
	}
	if h.Num() != 3 {
		t.Fatalf("Num() = %d, want 3", h.Num())
	}
	if !h.data.consistent() {
		t.Error("back-pointer did not round-trip after alloc")
	}
}

func TestDeallocThenAllocReusesFreelist(t *testing.T) {
	ct := New[leaf]()
	var h Children[leaf]
	h.Alloc(5, ct)
	old := h.data
	before := ct.MemUsed()
	h.Dealloc(ct)
	if !h.Empty() {
		t.Fatal("handle should be empty after Dealloc")
	}
	if ct.MemUsed() != before-blockSize[leaf](5) {
		t.Errorf("MemUsed after dealloc = %d, want %d", ct.MemUsed(), before-blockSize[leaf](5))
	}

	var h2 Children[leaf]
	h2.Alloc(5, ct)
	if h2.data != old {
		t.Error("Alloc did not reuse the deallocated block from its freelist")
	}
	if !h2.data.consistent() {
		t.Error("reused block's back-pointer did not round-trip")
	}
}

func TestSwapIsInvolution(t *testing.T) {
	ct := New[leaf]()
	var a, b Children[leaf]
	a.Alloc(2, ct)
	b.Alloc(4, ct)
	a.At(0).val = 111
	b.At(0).val = 222

	a.Swap(&b)
	if a.Num() != 4 || b.Num() != 2 {
		t.Fatalf("after first swap: a.Num()=%d b.Num()=%d", a.Num(), b.Num())
	}
	if !a.data.consistent() || !b.data.consistent() {
		t.Fatal("back-pointers inconsistent after swap")
	}

	a.Swap(&b)
	if a.Num() != 2 || b.Num() != 4 {
		t.Fatalf("after second swap: a.Num()=%d b.Num()=%d, want identity", a.Num(), b.Num())
	}
	if a.At(0).val != 111 || b.At(0).val != 222 {
		t.Fatalf("swap-swap did not restore original contents")
	}
}

func TestShrinkKeepsCapacityDropsTail(t *testing.T) {
	ct := New[leaf]()
	var h Children[leaf]
	h.Alloc(6, ct)
	for i := 0; i < 6; i++ {
		h.At(i).val = i
	}
	h.Shrink(2)
	if h.Num() != 2 {
		t.Fatalf("Num() after Shrink(2) = %d, want 2", h.Num())
	}
	if h.data.capacity != 6 {
		t.Errorf("capacity after Shrink = %d, want unchanged 6", h.data.capacity)
	}
}

func TestCompactPreservesLiveBlocksAndDropsVacant(t *testing.T) {
	ct := New[leaf]()
	var keep, drop Children[leaf]
	keep.Alloc(3, ct)
	drop.Alloc(3, ct)
	drop.Dealloc(ct)

	ct.Compact(1, 1)

	if keep.Empty() || keep.Num() != 3 {
		t.Fatalf("live block did not survive compaction")
	}
	if !keep.data.consistent() {
		t.Error("back-pointer broken after compaction")
	}
	if ct.NumChunks() != 1 {
		t.Errorf("NumChunks after compact = %d, want 1", ct.NumChunks())
	}
	if ct.popFreelist(3) != nil {
		t.Error("vacant block still on its freelist after compaction")
	}
}

func TestNoDoubleMembership(t *testing.T) {
	ct := New[leaf]()
	var h Children[leaf]
	h.Alloc(7, ct)
	d := h.data
	h.Dealloc(ct)

	// d must now be reachable only via the freelist, not via h.
	if !h.Empty() {
		t.Fatal("handle should be empty after dealloc")
	}
	got := ct.popFreelist(7)
	if got != d {
		t.Fatal("deallocated block should be the one in its freelist")
	}
}
