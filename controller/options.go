package controller

import (
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/event"
)

// Defaults.
const (
	DefaultSpeed     = 100 * time.Millisecond
	DefaultTopic     = catalog.TopicSorting
	DefaultAlgorithm = "bubble"
	// DefaultQueueSize bounds the number of pending commands.
	DefaultQueueSize = 256
)

// Options configures a Controller.
type Options struct {
	Topic     string
	Algorithm string
	Speed     time.Duration
	Size      int
	QueueSize int
	Source    builder.Source
	Sink      event.Sink
	Resolver  Resolver
	Metrics   Metrics
	Logger    logr.Logger
	Clock     clock.Clock
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions selects sorting/bubble at DefaultSpeed on a default Generator,
// with no sink, no metrics, a discarding logger and the real clock.
func DefaultOptions() Options {
	return Options{
		Topic:     DefaultTopic,
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Size:      builder.DefaultSize,
		QueueSize: DefaultQueueSize,
		Resolver:  CatalogResolver,
		Metrics:   noopMetrics{},
		Logger:    logr.Discard(),
		Clock:     clock.RealClock{},
	}
}

// WithSelection sets the initial (topic, algorithm).
func WithSelection(topic, algorithm string) Option {
	return func(o *Options) { o.Topic, o.Algorithm = topic, algorithm }
}

// WithSpeed sets the pause between checkpoints in continuous mode; 0 disables pacing.
func WithSpeed(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Speed = d
		}
	}
}

// WithSize sets the requested buffer size.
func WithSize(n int) Option {
	return func(o *Options) { o.Size = n }
}

// WithQueueSize bounds the command queue.
func WithQueueSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.QueueSize = n
		}
	}
}

// WithSource sets where buffers come from.
func WithSource(src builder.Source) Option {
	return func(o *Options) { o.Source = src }
}

// WithSink sets the event sink.
func WithSink(s event.Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithResolver replaces catalog lookups.
func WithResolver(r Resolver) Option {
	return func(o *Options) {
		if r != nil {
			o.Resolver = r
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithClock sets the clock used for pacing and timing.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}
