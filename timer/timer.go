// Package timer provides a deadline-to-flag façade: the only external
// contract the solvers need from a timing mechanism (SPEC_FULL.md §4.6).
// Grounded on original_source/alarm.h for the contract; implemented with
// time.AfterFunc, the standard library's own equivalent of a userspace
// alarm heap layered over a single OS timer — there is no point
// reimplementing that layering by hand when the runtime already does it,
// and no third-party library in this codebase's corpus offers a deadline
// timer (the corpus's own idiom for bounding work is context.WithTimeout,
// used by ai.MinimaxAI.Analyze; this package exists because the solver
// needs to poll a plain flag deep inside tight recursion, not thread a
// context through every frame).
package timer

import (
	"sync/atomic"
	"time"
)

// Deadline schedules fn to run once after d elapses, unless cancelled
// first. Cancel is idempotent and safe to call after the deadline has
// already fired.
type Deadline struct {
	t *time.Timer
}

// After arranges for fn to run once, d from now.
func After(d time.Duration, fn func()) *Deadline {
	return &Deadline{t: time.AfterFunc(d, fn)}
}

// Cancel stops the deadline if it hasn't already fired. It reports whether
// the cancellation actually prevented fn from running.
func (dl *Deadline) Cancel() bool {
	return dl.t.Stop()
}

// Flag is a shared cancellation flag a Deadline's callback sets. Every
// solver recursion polls it via Load instead of threading a context
// through every stack frame, matching how the reference solvers check a
// plain `timeout` bool at each recursive call.
type Flag struct {
	v atomic.Bool
}

// Set marks the flag as tripped. Safe to call from the Deadline's callback
// goroutine.
func (f *Flag) Set() { f.v.Store(true) }

// Clear resets the flag, e.g. before starting a fresh search.
func (f *Flag) Clear() { f.v.Store(false) }

// Load reports whether the flag has been tripped.
func (f *Flag) Load() bool { return f.v.Load() }

// Schedule is a convenience wrapper that arranges for a Flag to be set
// after d elapses, returning the Deadline so the caller can Cancel it.
func Schedule(f *Flag, d time.Duration) *Deadline {
	return After(d, f.Set)
}
