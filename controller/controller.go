package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/logging"
	"github.com/katalvlaran/algostep/metrics"
	"github.com/katalvlaran/algostep/stepper"
)

var (
	// ErrAlreadyRunning is returned by a second concurrent call to Run.
	ErrAlreadyRunning = errors.New("controller: command loop already running")

	// ErrQueueFull is logged when a request is dropped.
	ErrQueueFull = errors.New("controller: command queue full")
)

// Status messages sent to the sink.
const (
	StatusPaused      = "Paused"
	StatusRunFailed   = "Error occurred during visualization"
	StatusBadSize     = "Buffer size rejected"
	StatusRegenFailed = "Could not generate a new buffer"
)

type cmdKind uint8

const (
	cmdStart cmdKind = iota
	cmdPause
	cmdStep
	cmdReset
	cmdSelect
	cmdSpeed
	cmdSize
	cmdRegenerate
	cmdSync
)

func (k cmdKind) String() string {
	return [...]string{"start", "pause", "step", "reset", "select", "speed", "size", "regenerate", "sync"}[k]
}

type command struct {
	kind      cmdKind
	topic     string
	algorithm string
	speed     time.Duration
	size      int
	reply     chan struct{}
}

// Controller runs one algorithm at a time over a buffer and paces its
// checkpoints. All run state is owned by the goroutine executing Run; the
// request methods only enqueue, so they are safe to call from any goroutine,
// sink callbacks included.
type Controller struct {
	log      logr.Logger
	sink     event.Sink
	source   builder.Source
	resolver Resolver
	metrics  Metrics
	clock    clock.Clock
	cmdCh    chan command
	running  atomic.Bool

	// Owned by the command loop.
	topic     string
	algorithm string
	speed     time.Duration
	size      int
	mode      Mode
	buf       *builder.Buffer
	co        *stepper.Coroutine
	runID     uuid.UUID
	counters  stepper.Counters
	startedAt time.Time
	elapsed   time.Duration
	outcome   string
	fault     error

	mu   sync.RWMutex
	snap Snapshot
}

// New builds a Controller and draws its first buffer from the source.
func New(opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == nil {
		o.Source = builder.NewGenerator()
	}
	if o.Sink == nil {
		o.Sink = event.Hooks{}
	}
	if o.Size < 0 {
		return nil, fmt.Errorf("controller: size %d: %w", o.Size, builder.ErrBadSize)
	}

	c := &Controller{
		log:       o.Logger.WithName("controller"),
		sink:      o.Sink,
		source:    o.Source,
		resolver:  o.Resolver,
		metrics:   o.Metrics,
		clock:     o.Clock,
		cmdCh:     make(chan command, o.QueueSize),
		topic:     o.Topic,
		algorithm: o.Algorithm,
		speed:     o.Speed,
		size:      o.Size,
	}
	buf, err := c.source.Next(c.size)
	if err != nil {
		return nil, fmt.Errorf("controller: initial buffer: %w", err)
	}
	c.buf = buf
	c.publish()

	return c, nil
}

// Start plays the selected algorithm continuously. It begins a new run when
// idle or complete, resumes a paused or stepping run, and is ignored while
// already playing.
func (c *Controller) Start() { c.enqueue(command{kind: cmdStart}) }

// Pause parks a playing run at its current checkpoint.
func (c *Controller) Pause() { c.enqueue(command{kind: cmdPause}) }

// Step advances exactly one checkpoint, beginning a run if none is active.
func (c *Controller) Step() { c.enqueue(command{kind: cmdStep}) }

// Reset cancels the active run and regenerates the buffer.
func (c *Controller) Reset() { c.enqueue(command{kind: cmdReset}) }

// Regenerate replaces the buffer with a fresh one. It implies Reset.
func (c *Controller) Regenerate() { c.enqueue(command{kind: cmdRegenerate}) }

// Select chooses the algorithm for the next run. It implies Reset.
// An unknown selection surfaces as a ConfigurationFault on the next Start or Step.
func (c *Controller) Select(topic, algorithm string) {
	c.enqueue(command{kind: cmdSelect, topic: topic, algorithm: algorithm})
}

// SetSpeed changes the continuous pacing from the next checkpoint on.
// Zero disables pacing; negative values are ignored.
func (c *Controller) SetSpeed(d time.Duration) { c.enqueue(command{kind: cmdSpeed, speed: d}) }

// SetBufferSize requests buffers of n elements. It implies Reset.
func (c *Controller) SetBufferSize(n int) { c.enqueue(command{kind: cmdSize, size: n}) }

// Flush blocks until every request enqueued before it has been handled.
func (c *Controller) Flush(ctx context.Context) error {
	reply := make(chan struct{})
	select {
	case c.cmdCh <- command{kind: cmdSync, reply: reply}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the state published at the last checkpoint boundary.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	s := c.snap.clone()
	c.mu.RUnlock()
	if s.Mode.Active() {
		s.Elapsed = c.clock.Since(s.StartedAt)
	}

	return s
}

func (c *Controller) enqueue(cmd command) {
	select {
	case c.cmdCh <- cmd:
	default:
		c.metrics.CommandDropped()
		c.log.Error(ErrQueueFull, "Dropping command", "command", cmd.kind.String())
	}
}

// Run executes the command loop until ctx is done. The active run, if any,
// is cancelled on return.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer c.running.Store(false)
	defer c.cancelRun()

	c.log.V(logging.DEFAULT).Info("Command loop started", "topic", c.topic, "algorithm", c.algorithm, "speed", c.speed)
	for {
		if c.mode == ModeContinuous {
			if !c.pace(ctx) {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-c.cmdCh:
			c.handle(cmd)
		}
	}
}

// pace waits one Speed interval while serving commands, then advances the
// run if it is still playing. It reports false once ctx is done.
func (c *Controller) pace(ctx context.Context) bool {
	if c.speed <= 0 {
		select {
		case <-ctx.Done():
			return false
		case cmd := <-c.cmdCh:
			c.handle(cmd)
		default:
			c.advance()
		}

		return true
	}

	t := c.clock.NewTimer(c.speed)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case cmd := <-c.cmdCh:
			c.handle(cmd)
			if c.mode != ModeContinuous {
				return true
			}
		case <-t.C():
			c.advance()

			return true
		}
	}
}

func (c *Controller) handle(cmd command) {
	c.log.V(logging.DEBUG).Info("Handling command", "command", cmd.kind.String(), "mode", c.mode.String())
	switch cmd.kind {
	case cmdStart:
		switch c.mode {
		case ModeIdle, ModeComplete:
			c.begin(ModeContinuous)
		case ModePaused, ModeStep:
			c.mode = ModeContinuous
			c.advance()
		}
	case cmdPause:
		if c.mode == ModeContinuous {
			c.mode = ModePaused
			c.publish()
			c.sink.OnStatus(StatusPaused)
		}
	case cmdStep:
		if c.mode.Active() {
			c.mode = ModeStep
			c.advance()
		} else {
			c.begin(ModeStep)
		}
	case cmdReset, cmdRegenerate:
		c.reset(nil)
	case cmdSelect:
		c.topic, c.algorithm = cmd.topic, cmd.algorithm
		c.log.V(logging.VERBOSE).Info("Selection changed", "topic", c.topic, "algorithm", c.algorithm)
		c.reset(nil)
	case cmdSpeed:
		if cmd.speed >= 0 {
			c.speed = cmd.speed
			c.publish()
		}
	case cmdSize:
		buf, err := c.source.Next(cmd.size)
		if err != nil {
			c.log.Error(err, "Rejecting buffer size", "size", cmd.size)
			c.sink.OnStatus(StatusBadSize)

			return
		}
		c.size = cmd.size
		c.reset(buf)
	case cmdSync:
		close(cmd.reply)
	}
}

// begin starts a new run in mode and advances it to its first checkpoint.
func (c *Controller) begin(mode Mode) {
	b, err := c.resolver(c.topic, c.algorithm)
	if err != nil {
		c.fail(&ConfigurationFault{Topic: c.topic, Algorithm: c.algorithm, Err: err})

		return
	}
	proc, err := b.Bind(c.buf)
	if err != nil {
		c.fail(&ConfigurationFault{Topic: c.topic, Algorithm: c.algorithm, Err: err})

		return
	}

	c.runID = uuid.New()
	c.counters = stepper.Counters{}
	c.startedAt = c.clock.Now()
	c.elapsed = 0
	c.outcome = ""
	c.fault = nil
	c.buf.Outcome = ""
	c.mode = mode
	c.co = stepper.Start(proc, stepper.Hooks{OnCompare: c.onCounter, OnSwap: c.onCounter})

	c.log.V(logging.DEFAULT).Info("Run started", "run", c.runID, "topic", c.topic, "algorithm", c.algorithm, "mode", mode.String())
	c.metrics.RunStarted(c.topic, c.algorithm)
	c.sink.OnRunStart(c.topic, c.algorithm)
	c.advance()
}

// onCounter runs on the coroutine while the loop is blocked in Resume.
func (c *Controller) onCounter(int) {
	c.counters = c.co.Counters()
	c.sink.OnCounterChange(c.counters.Comparisons, c.counters.Swaps)
}

// advance releases the pending suspension and runs to the next checkpoint.
func (c *Controller) advance() {
	if c.co == nil {
		return
	}
	ev, ok, err := c.resume()
	if err != nil {
		c.fail(&AlgorithmFault{RunID: c.runID, Topic: c.topic, Algorithm: c.algorithm, Err: err})

		return
	}
	if !ok {
		c.finish()

		return
	}

	c.metrics.Checkpoint(c.topic, c.algorithm)
	c.publish()
	if v := c.log.V(logging.TRACE); v.Enabled() {
		v.Info("Checkpoint", "run", c.runID, "event", ev.String())
	}
	c.sink.OnCheckpoint(ev)
}

func (c *Controller) resume() (ev event.Event, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	ev, ok = c.co.Resume()

	return ev, ok, nil
}

// finish handles a body that returned.
func (c *Controller) finish() {
	if err := c.co.Err(); err != nil {
		c.fail(&AlgorithmFault{RunID: c.runID, Topic: c.topic, Algorithm: c.algorithm, Err: err})

		return
	}

	c.co = nil
	c.mode = ModeComplete
	c.elapsed = c.clock.Since(c.startedAt)
	c.outcome = c.buf.Outcome
	c.publish()

	c.log.V(logging.DEFAULT).Info("Run complete", "run", c.runID, "elapsed", c.elapsed,
		"comparisons", c.counters.Comparisons, "swaps", c.counters.Swaps, "outcome", c.outcome)
	c.metrics.RunCompleted(c.topic, c.algorithm, c.elapsed)
	c.sink.OnComplete(c.elapsed)
	if c.outcome != "" {
		c.sink.OnStatus(c.outcome)
	}
}

// fail reports a fault and forces a reset.
func (c *Controller) fail(err error) {
	kind, msg := metrics.FaultAlgorithm, StatusRunFailed
	var cf *ConfigurationFault
	if errors.As(err, &cf) {
		kind = metrics.FaultConfiguration
		msg = fmt.Sprintf("Cannot run %s/%s: %v", cf.Topic, cf.Algorithm, cf.Err)
	}

	c.log.Error(err, "Run failed", "topic", c.topic, "algorithm", c.algorithm, "kind", kind)
	c.metrics.Fault(kind)
	c.sink.OnStatus(msg)
	c.reset(nil)
	c.fault = err
	c.publish()
}

// reset cancels the active run and installs buf, or a fresh buffer when nil.
func (c *Controller) reset(buf *builder.Buffer) {
	c.cancelRun()
	if buf == nil {
		var err error
		if buf, err = c.source.Next(c.size); err != nil {
			c.log.Error(err, "Buffer regeneration failed, keeping the current buffer", "size", c.size)
			c.sink.OnStatus(StatusRegenFailed)
			buf = c.buf
		}
	}
	c.buf = buf
	c.buf.Outcome = ""

	c.mode = ModeIdle
	c.runID = uuid.Nil
	c.counters = stepper.Counters{}
	c.startedAt = time.Time{}
	c.elapsed = 0
	c.outcome = ""
	c.fault = nil
	c.publish()

	c.log.V(logging.VERBOSE).Info("Reset", "topic", c.topic, "algorithm", c.algorithm, "size", len(c.buf.Array))
	c.sink.OnReset()
}

// cancelRun unwinds the active coroutine, if any.
func (c *Controller) cancelRun() {
	co := c.co
	if co == nil {
		return
	}
	c.co = nil
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.Error(fmt.Errorf("%w: %v", ErrPanicked, r), "Algorithm panicked while unwinding", "run", c.runID)
			}
		}()
		co.Cancel()
	}()
	if err := co.Err(); err != nil && !errors.Is(err, stepper.ErrCancelled) {
		c.log.V(logging.DEBUG).Info("Cancelled run returned an error", "run", c.runID, "err", err)
	}
}

func (c *Controller) publish() {
	s := Snapshot{
		RunID:     c.runID,
		Topic:     c.topic,
		Algorithm: c.algorithm,
		Mode:      c.mode,
		Speed:     c.speed,
		Size:      c.size,
		Counters:  c.counters,
		StartedAt: c.startedAt,
		Elapsed:   c.elapsed,
		Array:     slices.Clone(c.buf.Array),
		Outcome:   c.outcome,
		Fault:     c.fault,
	}
	c.mu.Lock()
	c.snap = s
	c.mu.Unlock()
}
