package search

import (
	"errors"
	"runtime"
)

// Sentinel errors for Solve.
var (
	// ErrUnsolvable is returned when the sample itself is contradictory: some
	// trace is labeled both positive and negative, so no formula could ever
	// be consistent with it.
	ErrUnsolvable = errors.New("search: sample is unsolvable")

	// ErrSearchExhausted is returned when Options.SizeCap is set and no
	// consistent formula was found at or below it.
	ErrSearchExhausted = errors.New("search: exhausted size cap without a match")
)

// DefaultThreshold is the formula size at which Solve switches from serial
// to parallel search.
const DefaultThreshold = 6

// Options configures Solve.
type Options struct {
	// Threshold is the size at which search switches from the serial,
	// deterministic mode to the parallel, worker-pool mode. Default 6.
	Threshold int

	// SizeCap, if positive, bounds the largest formula size Solve will try
	// before giving up with ErrSearchExhausted. Zero means unbounded.
	SizeCap int

	// Workers caps the number of goroutines used in parallel mode. Default
	// runtime.GOMAXPROCS(0).
	Workers int

	// OnSizeStart, if set, is called once per size before that size's
	// skeletons are generated — an observability hook in the same spirit as
	// bfs.Options's OnEnqueue/OnVisit callbacks.
	OnSizeStart func(size int)
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns an Options populated with Solve's defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		SizeCap:     0,
		Workers:     runtime.GOMAXPROCS(0),
		OnSizeStart: func(int) {},
	}
}

// WithThreshold overrides the serial/parallel switchover size.
func WithThreshold(n int) Option {
	return func(o *Options) { o.Threshold = n }
}

// WithSizeCap bounds the largest size Solve will attempt.
func WithSizeCap(n int) Option {
	return func(o *Options) { o.SizeCap = n }
}

// WithWorkers caps the parallel worker-pool size.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithOnSizeStart registers a callback invoked at the start of each size.
func WithOnSizeStart(fn func(size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSizeStart = fn
		}
	}
}
