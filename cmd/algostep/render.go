package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/event"
)

// renderer prints sink callbacks as text lines. Writes are serialized so the
// command loop and the stdin reader can share the output.
type renderer struct {
	mu    sync.Mutex
	out   io.Writer
	array func() []int

	seq         int
	comparisons int
	swaps       int
}

var _ event.Sink = (*renderer)(nil)

func newRenderer(out io.Writer, array func() []int) *renderer {
	return &renderer{out: out, array: array}
}

func (r *renderer) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) OnRunStart(topic, algorithm string) {
	name := algorithm
	if e, err := catalog.Lookup(topic, algorithm); err == nil {
		name = e.Info.Name
	}
	r.mu.Lock()
	r.seq, r.comparisons, r.swaps = 0, 0, 0
	r.mu.Unlock()
	r.printf("running %s (%s/%s)\n", name, topic, algorithm)
}

func (r *renderer) OnCheckpoint(ev event.Event) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	// Array-level events show the buffer as of this checkpoint.
	if ev.Target == event.Buffer && r.array != nil {
		r.printf("%5d  %-40s %v\n", seq, ev, r.array())

		return
	}
	r.printf("%5d  %s\n", seq, ev)
}

func (r *renderer) OnCounterChange(comparisons, swaps int) {
	r.mu.Lock()
	r.comparisons, r.swaps = comparisons, swaps
	r.mu.Unlock()
}

func (r *renderer) OnComplete(elapsed time.Duration) {
	r.mu.Lock()
	c, s := r.comparisons, r.swaps
	r.mu.Unlock()
	r.printf("complete in %s: %d comparisons, %d swaps\n", elapsed.Round(time.Millisecond), c, s)
}

func (r *renderer) OnReset() {
	r.mu.Lock()
	r.seq, r.comparisons, r.swaps = 0, 0, 0
	r.mu.Unlock()
	r.printf("reset\n")
}

func (r *renderer) OnStatus(msg string) {
	r.printf("status: %s\n", msg)
}
