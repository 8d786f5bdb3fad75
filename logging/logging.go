// Package logging builds the logr.Logger used across algostep.
//
// Everything in the module logs through the logr interface; the backend is zap
// bridged with zapr. Verbosity follows the usual logr convention: V(0) always
// prints, higher levels are opt-in via the --v flag of the CLI.
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr.Logger.V.
const (
	DEFAULT = 2
	VERBOSE = 3
	DEBUG   = 4
	TRACE   = 5
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates a format other than FormatText or FormatJSON.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Options configures New.
type Options struct {
	// Verbosity enables logr levels up to and including this value.
	Verbosity int
	// Format is FormatText (console encoder) or FormatJSON.
	Format string
	// OutputPaths are zap sink URLs; empty means stderr.
	OutputPaths []string
}

// DefaultOptions logs V(DEFAULT) and below as text to stderr.
func DefaultOptions() Options {
	return Options{Verbosity: DEFAULT, Format: FormatText}
}

// New returns a zap-backed logr.Logger and a flush func to defer.
func New(opts Options) (logr.Logger, func(), error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case FormatText, "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	default:
		return logr.Discard(), func() {}, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if opts.Verbosity < 0 {
		opts.Verbosity = 0
	}
	// logr V(n) maps to zap level -n.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-opts.Verbosity))
	cfg.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

// NewTestLogger creates a development logger with every level enabled,
// writing to stderr.
func NewTestLogger() logr.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.Level(-TRACE),
	)

	return zapr.NewLogger(zap.New(core, zap.AddCaller(), zap.Development()))
}
