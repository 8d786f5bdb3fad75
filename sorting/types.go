// Package sorting implements the instrumented comparison and counting sorts.
//
// Every function sorts its slice in place in ascending order and suspends
// through the supplied *stepper.Handle after each unit of work:
//
//	compare   - event.Compared on the two positions examined
//	swap      - event.Swapped once two positions have been exchanged
//	write     - event.Written when a single position is overwritten
//	highlight - pivots, running minima and the sorted region
//
// Comparisons are counted per evaluated comparison; swaps are counted per
// exchange and, for the shifting/merging sorts, per element write.
//
// When a run is cancelled each sort returns stepper.ErrCancelled and leaves the
// slice a permutation of its input: swaps happen before their checkpoint,
// insertion sort writes its held key back, and merge/counting finish their
// pending writes without suspending.
//
// A nil handle runs the sort to completion without suspending.
package sorting

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors.
var (
	// ErrNegativeValue is returned by counting sort for keys below zero.
	ErrNegativeValue = errors.New("sorting: counting sort requires non-negative keys")

	// ErrDomainTooLarge is returned by counting sort when the largest key exceeds MaxKey.
	ErrDomainTooLarge = errors.New("sorting: key domain too large for counting sort")

	// ErrPassLimit is returned by bogo sort when MaxPasses shuffles did not sort the input.
	ErrPassLimit = errors.New("sorting: pass limit reached")

	// ErrNilKey is returned by CountingBy when no key function is supplied.
	ErrNilKey = errors.New("sorting: nil key function")
)

// DefaultMaxKey bounds the counting sort domain.
const DefaultMaxKey = 1 << 16

// Options configure the sorts. Only the fields relevant to a sort are read.
type Options struct {
	// EarlyExit stops bubble sort after a pass without swaps.
	EarlyExit bool

	// Rand drives bogo sort shuffles. Nil means a fixed-seed PCG source.
	Rand *rand.Rand

	// MaxPasses caps bogo sort shuffles; 0 means unbounded.
	MaxPasses int

	// MaxKey is the largest key counting sort accepts.
	MaxKey int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns early exit on, an unbounded bogo sort and DefaultMaxKey.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
		MaxKey:    DefaultMaxKey,
	}
}

// WithEarlyExit toggles the bubble sort swapped-flag shortcut.
func WithEarlyExit(on bool) Option {
	return func(o *Options) { o.EarlyExit = on }
}

// WithRand sets the shuffle source for bogo sort.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed is WithRand over a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithMaxPasses caps the number of bogo sort shuffles.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxPasses = n
		}
	}
}

// WithMaxKey sets the counting sort domain bound. Non-positive values are ignored.
func WithMaxKey(k int) Option {
	return func(o *Options) {
		if k > 0 {
			o.MaxKey = k
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// defaultRand is the shuffle source used when none is configured.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
