// Package stepper is the cooperative suspension primitive behind every
// instrumented algorithm.
//
// An algorithm is written as ordinary synchronous Go code that receives a
// *Handle. At each checkpoint it calls Handle.Suspend with the event describing
// the unit of work it just performed; control then returns to whoever drives
// the algorithm and comes back only when that driver asks for the next step.
//
// Internally a run is an iter.Seq of events converted into a pull-style
// coroutine with iter.Pull, so the algorithm and its driver never execute at
// the same time: each Resume runs the body up to its next checkpoint and no
// further. Cancellation is cooperative. Cancel marks the outstanding
// suspension as cancelled and lets the body run to its return; the body
// observes this through Handle.Cancelled right after Suspend returns.
//
// A nil *Handle is valid: it never suspends and ignores counters, so every
// algorithm in this module can also be called directly.
package stepper

import (
	"errors"
	"iter"

	"github.com/katalvlaran/algostep/event"
)

// ErrCancelled is returned by algorithms that stopped early because their run
// was cancelled.
var ErrCancelled = errors.New("stepper: run cancelled")

// Procedure is an instrumented algorithm already bound to its input.
type Procedure func(h *Handle) error

// Hooks receive counter updates as the algorithm reports them.
// Nil fields are ignored.
type Hooks struct {
	// OnCompare is invoked with the number of comparisons just performed.
	OnCompare func(n int)

	// OnSwap is invoked with the number of swaps (or element writes) just performed.
	OnSwap func(n int)
}

// Counters is a snapshot of the progress counters.
type Counters struct {
	Comparisons int
	Swaps       int
}

// Handle is the algorithm-side view of a run.
type Handle struct {
	yield     func(event.Event) bool
	hooks     Hooks
	cancelled bool
	counters  Counters
}

// Suspend emits ev and blocks until the driver grants continuation.
// It does not report cancellation; check Cancelled afterwards.
// Once the handle is cancelled Suspend returns immediately.
func (h *Handle) Suspend(ev event.Event) {
	if h == nil || h.cancelled || h.yield == nil {
		return
	}
	if !h.yield(ev) {
		h.cancelled = true
	}
}

// Cancelled reports whether the run was cancelled.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled
}

// Checkpoint suspends with ev and reports whether the algorithm may continue.
func (h *Handle) Checkpoint(ev event.Event) bool {
	h.Suspend(ev)

	return !h.Cancelled()
}

// AddComparisons records n comparisons.
func (h *Handle) AddComparisons(n int) {
	if h == nil || n <= 0 {
		return
	}
	h.counters.Comparisons += n
	if h.hooks.OnCompare != nil {
		h.hooks.OnCompare(n)
	}
}

// AddSwaps records n swaps or element writes.
func (h *Handle) AddSwaps(n int) {
	if h == nil || n <= 0 {
		return
	}
	h.counters.Swaps += n
	if h.hooks.OnSwap != nil {
		h.hooks.OnSwap(n)
	}
}

// Counters returns the counters accumulated on this handle.
func (h *Handle) Counters() Counters {
	if h == nil {
		return Counters{}
	}

	return h.counters
}

// Coroutine drives one Procedure checkpoint by checkpoint.
// It is not safe for concurrent use; a single driver owns it.
type Coroutine struct {
	next   func() (event.Event, bool)
	stop   func()
	handle *Handle
	err    error
	done   bool
}

// Start prepares proc for stepping. The body does not run until the first Resume.
func Start(proc Procedure, hooks Hooks) *Coroutine {
	c := &Coroutine{handle: &Handle{hooks: hooks}}
	seq := func(yield func(event.Event) bool) {
		c.handle.yield = yield
		c.err = proc(c.handle)
	}
	c.next, c.stop = iter.Pull(iter.Seq[event.Event](seq))

	return c
}

// Resume runs the body until its next checkpoint and returns the event emitted
// there. ok is false once the body has returned; Err then reports its result.
// A panic inside the body propagates out of Resume.
func (c *Coroutine) Resume() (ev event.Event, ok bool) {
	if c.done {
		return event.Event{}, false
	}
	ev, ok = c.next()
	if !ok {
		c.done = true
	}

	return ev, ok
}

// Cancel resolves the outstanding suspension as cancelled and waits for the
// body to return. It is idempotent. A panic raised while the body unwinds
// propagates out of Cancel.
func (c *Coroutine) Cancel() {
	c.done = true
	c.stop()
}

// Done reports whether the body has returned or the coroutine was cancelled.
func (c *Coroutine) Done() bool { return c.done }

// Err returns the error the body returned, if it has returned.
func (c *Coroutine) Err() error { return c.err }

// Counters returns the counters reported by the body so far.
func (c *Coroutine) Counters() Counters { return c.handle.Counters() }
