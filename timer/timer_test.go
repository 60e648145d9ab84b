package timer

import (
	"testing"
	"time"
)

func TestScheduleSetsFlag(t *testing.T) {
	var f Flag
	Schedule(&f, 10*time.Millisecond)
	if f.Load() {
		t.Fatal("flag set before deadline")
	}
	time.Sleep(50 * time.Millisecond)
	if !f.Load() {
		t.Fatal("flag not set after deadline")
	}
}

func TestCancelPreventsFire(t *testing.T) {
	var f Flag
	dl := Schedule(&f, 10*time.Millisecond)
	if !dl.Cancel() {
		t.Fatal("Cancel reported no-op, expected to stop a pending timer")
	}
	time.Sleep(50 * time.Millisecond)
	if f.Load() {
		t.Fatal("flag set despite cancellation")
	}
}
