package event

import (
	"slices"
	"sync"
	"time"
)

// Sink observes a controller. All callbacks are invoked synchronously on the
// controller goroutine, interleaved with algorithm steps; a Sink must not block
// for long and must never mutate the data it is shown.
type Sink interface {
	// OnRunStart is called once a run has been resolved and is about to execute.
	OnRunStart(topic, algorithm string)

	// OnCheckpoint delivers the event emitted at a suspension point.
	OnCheckpoint(ev Event)

	// OnCounterChange reports the current progress counters.
	OnCounterChange(comparisons, swaps int)

	// OnComplete is called after a run finished normally.
	OnComplete(elapsed time.Duration)

	// OnReset is called after the controller returned to idle with a fresh buffer.
	OnReset()

	// OnStatus carries human-readable status lines (search outcome, faults).
	OnStatus(msg string)
}

// Hooks adapts individual callbacks to a Sink. Nil fields are ignored.
type Hooks struct {
	RunStart      func(topic, algorithm string)
	Checkpoint    func(ev Event)
	CounterChange func(comparisons, swaps int)
	Complete      func(elapsed time.Duration)
	Reset         func()
	Status        func(msg string)
}

var _ Sink = Hooks{}

// OnRunStart implements Sink.
func (h Hooks) OnRunStart(topic, algorithm string) {
	if h.RunStart != nil {
		h.RunStart(topic, algorithm)
	}
}

// OnCheckpoint implements Sink.
func (h Hooks) OnCheckpoint(ev Event) {
	if h.Checkpoint != nil {
		h.Checkpoint(ev)
	}
}

// OnCounterChange implements Sink.
func (h Hooks) OnCounterChange(comparisons, swaps int) {
	if h.CounterChange != nil {
		h.CounterChange(comparisons, swaps)
	}
}

// OnComplete implements Sink.
func (h Hooks) OnComplete(elapsed time.Duration) {
	if h.Complete != nil {
		h.Complete(elapsed)
	}
}

// OnReset implements Sink.
func (h Hooks) OnReset() {
	if h.Reset != nil {
		h.Reset()
	}
}

// OnStatus implements Sink.
func (h Hooks) OnStatus(msg string) {
	if h.Status != nil {
		h.Status(msg)
	}
}

// Fanout forwards every callback to each sink in order.
type Fanout []Sink

var _ Sink = Fanout(nil)

// OnRunStart implements Sink.
func (f Fanout) OnRunStart(topic, algorithm string) {
	for _, s := range f {
		s.OnRunStart(topic, algorithm)
	}
}

// OnCheckpoint implements Sink.
func (f Fanout) OnCheckpoint(ev Event) {
	for _, s := range f {
		s.OnCheckpoint(ev)
	}
}

// OnCounterChange implements Sink.
func (f Fanout) OnCounterChange(comparisons, swaps int) {
	for _, s := range f {
		s.OnCounterChange(comparisons, swaps)
	}
}

// OnComplete implements Sink.
func (f Fanout) OnComplete(elapsed time.Duration) {
	for _, s := range f {
		s.OnComplete(elapsed)
	}
}

// OnReset implements Sink.
func (f Fanout) OnReset() {
	for _, s := range f {
		s.OnReset()
	}
}

// OnStatus implements Sink.
func (f Fanout) OnStatus(msg string) {
	for _, s := range f {
		s.OnStatus(msg)
	}
}

// Recorder is a Sink that keeps everything it receives. It is safe to read
// from another goroutine while the controller writes to it.
type Recorder struct {
	mu        sync.Mutex
	events    []Event
	statuses  []string
	starts    int
	completes int
	resets    int
	counters  [2]int
}

var _ Sink = (*Recorder)(nil)

// OnRunStart implements Sink.
func (r *Recorder) OnRunStart(string, string) {
	r.mu.Lock()
	r.starts++
	r.mu.Unlock()
}

// OnCheckpoint implements Sink.
func (r *Recorder) OnCheckpoint(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// OnCounterChange implements Sink.
func (r *Recorder) OnCounterChange(comparisons, swaps int) {
	r.mu.Lock()
	r.counters = [2]int{comparisons, swaps}
	r.mu.Unlock()
}

// OnComplete implements Sink.
func (r *Recorder) OnComplete(time.Duration) {
	r.mu.Lock()
	r.completes++
	r.mu.Unlock()
}

// OnReset implements Sink.
func (r *Recorder) OnReset() {
	r.mu.Lock()
	r.resets++
	r.mu.Unlock()
}

// OnStatus implements Sink.
func (r *Recorder) OnStatus(msg string) {
	r.mu.Lock()
	r.statuses = append(r.statuses, msg)
	r.mu.Unlock()
}

// Events returns a copy of the recorded checkpoint events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.events)
}

// Statuses returns a copy of the recorded status lines.
func (r *Recorder) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.statuses)
}

// Counters returns the last reported (comparisons, swaps).
func (r *Recorder) Counters() (comparisons, swaps int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counters[0], r.counters[1]
}

// Starts reports the number of OnRunStart callbacks.
func (r *Recorder) Starts() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.starts
}

// Completes reports the number of OnComplete callbacks.
func (r *Recorder) Completes() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.completes
}

// Resets reports the number of OnReset callbacks.
func (r *Recorder) Resets() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resets
}
