package controller

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/stepper"
)

// Mode is the state of the current run.
type Mode uint8

const (
	// ModeIdle means no run exists; the buffer is fresh.
	ModeIdle Mode = iota
	// ModeContinuous advances one checkpoint per Speed interval.
	ModeContinuous
	// ModeStep advances one checkpoint per Step request.
	ModeStep
	// ModePaused parks the run at its current checkpoint.
	ModePaused
	// ModeComplete means the last run returned normally.
	ModeComplete
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeContinuous:
		return "continuous"
	case ModeStep:
		return "step"
	case ModePaused:
		return "paused"
	case ModeComplete:
		return "complete"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Active reports whether a run is in flight.
func (m Mode) Active() bool {
	return m == ModeContinuous || m == ModeStep || m == ModePaused
}

// Snapshot is a copy of the controller state taken at a checkpoint boundary.
type Snapshot struct {
	RunID     uuid.UUID
	Topic     string
	Algorithm string
	Mode      Mode
	Speed     time.Duration
	Size      int
	Counters  stepper.Counters
	StartedAt time.Time
	Elapsed   time.Duration
	// Array is the buffer array as of the last checkpoint.
	Array []int
	// Outcome is the summary of the last completed run.
	Outcome string
	// Fault is the last fault, cleared when a new run starts.
	Fault error
}

func (s Snapshot) clone() Snapshot {
	s.Array = slices.Clone(s.Array)

	return s
}

// ErrPanicked marks an AlgorithmFault raised by a panic inside the algorithm.
var ErrPanicked = errors.New("controller: algorithm panicked")

// ConfigurationFault reports a selection that could not be turned into a run:
// unknown topic or algorithm, or a buffer lacking the required input.
type ConfigurationFault struct {
	Topic     string
	Algorithm string
	Err       error
}

func (f *ConfigurationFault) Error() string {
	return fmt.Sprintf("configuration fault for %s/%s: %v", f.Topic, f.Algorithm, f.Err)
}

func (f *ConfigurationFault) Unwrap() error { return f.Err }

// AlgorithmFault reports a run that failed after it started.
type AlgorithmFault struct {
	RunID     uuid.UUID
	Topic     string
	Algorithm string
	Err       error
}

func (f *AlgorithmFault) Error() string {
	return fmt.Sprintf("algorithm fault in %s/%s (run %s): %v", f.Topic, f.Algorithm, f.RunID, f.Err)
}

func (f *AlgorithmFault) Unwrap() error { return f.Err }

// Binder turns a buffer into a runnable procedure. catalog.Entry implements it.
type Binder interface {
	Bind(buf *builder.Buffer) (stepper.Procedure, error)
}

// Resolver maps a selection to its Binder.
type Resolver func(topic, algorithm string) (Binder, error)

// CatalogResolver resolves selections through catalog.Lookup.
func CatalogResolver(topic, algorithm string) (Binder, error) {
	e, err := catalog.Lookup(topic, algorithm)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Metrics receives run accounting. *metrics.Recorder implements it.
type Metrics interface {
	RunStarted(topic, algorithm string)
	RunCompleted(topic, algorithm string, elapsed time.Duration)
	Checkpoint(topic, algorithm string)
	Fault(kind string)
	CommandDropped()
}

type noopMetrics struct{}

func (noopMetrics) RunStarted(string, string) {}
func (noopMetrics) RunCompleted(string, string, time.Duration) {}
func (noopMetrics) Checkpoint(string, string) {}
func (noopMetrics) Fault(string) {}
func (noopMetrics) CommandDropped() {}
