package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/controller"
	"github.com/katalvlaran/algostep/logging"
)

// Run modes.
const (
	ModeContinuous = "continuous"
	ModeStep       = "step"
)

// DefaultSeed is the generator seed when --seed is not given.
const DefaultSeed = 1

// Options contains the command-line configuration.
type Options struct {
	//
	// Selection and input.
	//
	Topic     string        // Catalog topic.
	Algorithm string        // Algorithm id within Topic.
	Speed     time.Duration // Pause between checkpoints in continuous mode.
	Size      int           // Requested buffer size.
	Seed      uint64        // Generator seed.
	Scenario  string        // YAML scenario pinning the buffer; overrides Seed and Size.
	//
	// Interaction.
	//
	Mode        string // continuous or step.
	Interactive bool   // Read commands from stdin.
	//
	// Diagnostics.
	//
	MetricsAddr  string // Serve /metrics on this address when set.
	LogVerbosity int    // Number for the log level verbosity.
	LogFormat    string // text or json.
}

// NewOptions returns Options initialized with default values.
func NewOptions() *Options {
	return &Options{
		Topic:        controller.DefaultTopic,
		Algorithm:    controller.DefaultAlgorithm,
		Speed:        controller.DefaultSpeed,
		Size:         builder.DefaultSize,
		Seed:         DefaultSeed,
		Mode:         ModeContinuous,
		LogVerbosity: logging.DEFAULT,
		LogFormat:    logging.FormatText,
	}
}

// AddFlags binds the Options fields to command-line flags on fs.
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}
	fs.StringVar(&opts.Topic, "topic", opts.Topic,
		"Algorithm topic: sorting, search, trees, graphs or dp.")
	fs.StringVar(&opts.Algorithm, "algorithm", opts.Algorithm,
		"Algorithm id within the topic (see the 'list' command).")
	fs.DurationVar(&opts.Speed, "speed", opts.Speed,
		"Pause between checkpoints in continuous mode; 0 runs unpaced.")
	fs.IntVar(&opts.Size, "size", opts.Size,
		"Number of array elements to generate.")
	fs.Uint64Var(&opts.Seed, "seed", opts.Seed,
		"Seed for buffer generation.")
	fs.StringVar(&opts.Scenario, "scenario", opts.Scenario,
		"YAML file pinning the input buffer.")
	fs.StringVar(&opts.Mode, "mode", opts.Mode,
		"continuous, or step to advance one checkpoint per line of stdin.")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", opts.Interactive,
		"Read control commands from stdin.")
	fs.StringVar(&opts.MetricsAddr, "metrics-addr", opts.MetricsAddr,
		"Address for the prometheus /metrics endpoint, e.g. :9090. Disabled when empty.")
	fs.IntVarP(&opts.LogVerbosity, "v", "v", opts.LogVerbosity,
		"Number for the log level verbosity.")
	fs.StringVar(&opts.LogFormat, "log-format", opts.LogFormat,
		"Log encoding: text or json.")
}

// Validate checks the Options for invalid or conflicting values.
func (opts *Options) Validate() error {
	var errs []error
	if _, err := catalog.Lookup(opts.Topic, opts.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("invalid selection %s/%s: %w", opts.Topic, opts.Algorithm, err))
	}
	if opts.Speed < 0 {
		errs = append(errs, fmt.Errorf("invalid value %s for flag %q: must be >= 0", opts.Speed, "speed"))
	}
	if opts.Scenario == "" && (opts.Size < builder.MinSize || opts.Size > builder.MaxSize) {
		errs = append(errs, fmt.Errorf("invalid value %d for flag %q: must be between %d and %d",
			opts.Size, "size", builder.MinSize, builder.MaxSize))
	}
	if opts.Mode != ModeContinuous && opts.Mode != ModeStep {
		errs = append(errs, fmt.Errorf("invalid value %q for flag %q: must be %s or %s",
			opts.Mode, "mode", ModeContinuous, ModeStep))
	}
	if opts.LogVerbosity < 0 {
		errs = append(errs, fmt.Errorf("invalid value %d for flag %q: must be >= 0", opts.LogVerbosity, "v"))
	}
	if opts.LogFormat != logging.FormatText && opts.LogFormat != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("invalid value %q for flag %q: %w", opts.LogFormat, "log-format", logging.ErrUnknownFormat))
	}

	return errors.Join(errs...)
}

// source builds the buffer source the options describe.
func (opts *Options) source() (builder.Source, error) {
	if opts.Scenario == "" {
		return builder.NewGenerator(builder.WithSeed(opts.Seed), builder.WithSize(opts.Size)), nil
	}
	s, err := builder.LoadScenario(opts.Scenario)
	if err != nil {
		return nil, err
	}
	buf, err := s.Buffer()
	if err != nil {
		return nil, err
	}

	return builder.NewFixed(buf), nil
}
