// Package metrics exposes prometheus collectors for controller runs.
//
// Collectors live on a Recorder rather than in package globals so each
// controller, and each test, registers them on its own Registerer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace prefixes every metric name.
	Namespace = "algostep"

	// Fault kinds used as the "kind" label.
	FaultConfiguration = "configuration"
	FaultAlgorithm     = "algorithm"
)

var (
	// RunLabels identify the algorithm a sample belongs to.
	RunLabels = []string{"topic", "algorithm"}

	// RunDurationBuckets span quick unpaced runs up to slow animated ones.
	RunDurationBuckets = []float64{
		0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600,
	}
)

// Recorder owns the run collectors. Its methods are safe for concurrent use.
type Recorder struct {
	runsStarted   *prometheus.CounterVec
	runsCompleted *prometheus.CounterVec
	checkpoints   *prometheus.CounterVec
	faults        *prometheus.CounterVec
	dropped       prometheus.Counter
	runDuration   *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_started_total",
			Help:      "Number of runs started, by topic and algorithm.",
		}, RunLabels),
		runsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_completed_total",
			Help:      "Number of runs that returned normally, by topic and algorithm.",
		}, RunLabels),
		checkpoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "checkpoints_total",
			Help:      "Number of checkpoints delivered to the sink, by topic and algorithm.",
		}, RunLabels),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "faults_total",
			Help:      "Number of faults that forced a reset, by kind.",
		}, []string{"kind"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "commands_dropped_total",
			Help:      "Number of controller commands dropped because the queue was full.",
		}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time from run start to normal completion, pauses included.",
			Buckets:   RunDurationBuckets,
		}, RunLabels),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustNewRecorder is NewRecorder that panics on a registration error.
func MustNewRecorder(reg prometheus.Registerer) *Recorder {
	r, err := NewRecorder(reg)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{r.runsStarted, r.runsCompleted, r.checkpoints, r.faults, r.dropped, r.runDuration}
}

// RunStarted counts a new run.
func (r *Recorder) RunStarted(topic, algorithm string) {
	r.runsStarted.WithLabelValues(topic, algorithm).Inc()
}

// RunCompleted counts a normal completion and observes its duration.
func (r *Recorder) RunCompleted(topic, algorithm string, elapsed time.Duration) {
	r.runsCompleted.WithLabelValues(topic, algorithm).Inc()
	r.runDuration.WithLabelValues(topic, algorithm).Observe(elapsed.Seconds())
}

// Checkpoint counts one delivered checkpoint.
func (r *Recorder) Checkpoint(topic, algorithm string) {
	r.checkpoints.WithLabelValues(topic, algorithm).Inc()
}

// Fault counts a fault of the given kind.
func (r *Recorder) Fault(kind string) {
	r.faults.WithLabelValues(kind).Inc()
}

// CommandDropped counts a command lost to a full queue.
func (r *Recorder) CommandDropped() {
	r.dropped.Inc()
}
