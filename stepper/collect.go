package stepper

import "github.com/katalvlaran/algostep/event"

// Trace is the full output of running a Procedure without a driver.
type Trace struct {
	Events   []event.Event
	Counters Counters
	Err      error
}

// Collect runs proc to completion, resolving every suspension immediately,
// and returns everything it emitted.
func Collect(proc Procedure) Trace {
	return CollectN(proc, -1)
}

// CollectN is like Collect but cancels the run at the checkpoint that would be
// number limit+1, which lets callers exercise mid-run cancellation
// deterministically. A negative limit never cancels.
func CollectN(proc Procedure, limit int) Trace {
	var tr Trace
	h := &Handle{}
	h.yield = func(ev event.Event) bool {
		if limit >= 0 && len(tr.Events) >= limit {
			return false
		}
		tr.Events = append(tr.Events, ev)

		return true
	}
	tr.Err = proc(h)
	tr.Counters = h.counters

	return tr
}
