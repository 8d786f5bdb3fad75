package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/logging"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Topic", opts.Topic, "sorting"},
		{"Algorithm", opts.Algorithm, "bubble"},
		{"Speed", opts.Speed, 100 * time.Millisecond},
		{"Size", opts.Size, 20},
		{"Seed", opts.Seed, uint64(DefaultSeed)},
		{"Mode", opts.Mode, ModeContinuous},
		{"Interactive", opts.Interactive, false},
		{"LogVerbosity", opts.LogVerbosity, logging.DEFAULT},
		{"LogFormat", opts.LogFormat, logging.FormatText},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("NewOptions().%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	assert.NoError(t, opts.Validate())
}

func TestAddFlagsOverridesDefaults(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.AddFlags(fs)

	args := []string{
		"--topic", "graphs",
		"--algorithm", "dijkstra",
		"--speed", "250ms",
		"--size", "12",
		"--seed", "99",
		"--mode", "step",
		"-i",
		"--metrics-addr", ":9090",
		"-v", "4",
		"--log-format", "json",
	}
	require.NoError(t, fs.Parse(args))

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Topic", opts.Topic, "graphs"},
		{"Algorithm", opts.Algorithm, "dijkstra"},
		{"Speed", opts.Speed, 250 * time.Millisecond},
		{"Size", opts.Size, 12},
		{"Seed", opts.Seed, uint64(99)},
		{"Mode", opts.Mode, ModeStep},
		{"Interactive", opts.Interactive, true},
		{"MetricsAddr", opts.MetricsAddr, ":9090"},
		{"LogVerbosity", opts.LogVerbosity, 4},
		{"LogFormat", opts.LogFormat, "json"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("After parse, opts.%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		is     error
	}{
		{name: "defaults are valid", mutate: func(*Options) {}},
		{name: "unknown topic", mutate: func(o *Options) { o.Topic = "music" }, is: catalog.ErrUnknownTopic},
		{name: "unknown algorithm", mutate: func(o *Options) { o.Algorithm = "sleep" }, is: catalog.ErrUnknownAlgorithm},
		{name: "negative speed", mutate: func(o *Options) { o.Speed = -time.Millisecond }},
		{name: "size zero", mutate: func(o *Options) { o.Size = 0 }},
		{name: "bad mode", mutate: func(o *Options) { o.Mode = "fast" }},
		{name: "negative verbosity", mutate: func(o *Options) { o.LogVerbosity = -1 }},
		{name: "bad log format", mutate: func(o *Options) { o.LogFormat = "xml" }, is: logging.ErrUnknownFormat},
		{name: "scenario ignores size", mutate: func(o *Options) { o.Size = 0; o.Scenario = "x.yaml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewOptions()
			tt.mutate(opts)
			err := opts.Validate()
			switch {
			case tt.name == "defaults are valid" || tt.name == "scenario ignores size":
				assert.NoError(t, err)
			case tt.is != nil:
				assert.ErrorIs(t, err, tt.is)
			default:
				assert.Error(t, err)
			}
		})
	}
}
