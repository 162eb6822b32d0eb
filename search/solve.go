package search

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ltlsynth/generate"
	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/katalvlaran/ltlsynth/sample"
	"github.com/katalvlaran/ltlsynth/skeleton"
)

// errFound is returned internally by a parallel worker that located a
// consistent formula, to cancel its siblings through the errgroup's shared
// context without treating the cancellation as a real failure.
var errFound = errors.New("search: worker found a consistent formula")

// Solve returns the smallest LTL formula consistent with s: it satisfies
// every positive trace and no negative trace. Search proceeds by skeleton
// size (one per leaf plus one per unary operator, as counted by package
// skeleton), switching from serial to parallel mode at Options.Threshold.
// "Smallest" is in that measure; the returned formula's Size() (leaf
// count) can be lower than the skeleton size at which it was found.
//
// Returns ErrUnsolvable if s itself is contradictory, or ErrSearchExhausted
// if Options.SizeCap is set and no match was found at or below it.
func Solve(s *sample.Sample, opts ...Option) (*ltl.Formula, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !s.IsSolvable() {
		return nil, ErrUnsolvable
	}

	atoms := generate.Atoms(s.VarsUsed())

	for size := 1; o.SizeCap <= 0 || size <= o.SizeCap; size++ {
		o.OnSizeStart(size)
		sks := skeleton.Generate(size)

		var (
			f   *ltl.Formula
			err error
		)
		if size < o.Threshold {
			f = solveSerial(sks, atoms, s)
		} else {
			f, err = solveParallel(sks, atoms, s, o.Workers)
		}
		if err != nil {
			return nil, err
		}
		if f != nil {
			return f, nil
		}
	}

	return nil, ErrSearchExhausted
}

// solveSerial scans every candidate across sks and returns the consistent
// formula that is least under ltl.Less, or nil if none is consistent.
// Generation order does not follow ltl.Less, so the whole size is scanned;
// candidates that are not below the current best skip the consistency check.
func solveSerial(sks []*skeleton.Skeleton, atoms generate.Atoms, s *sample.Sample) *ltl.Formula {
	var best *ltl.Formula
	for _, sk := range sks {
		for f := range generate.Formulae(sk, atoms) {
			if (best == nil || ltl.Less(f, best)) && sample.IsConsistent(s, f) {
				best = f
			}
		}
	}
	return best
}

// solveParallel runs one goroutine per skeleton, capped at workers
// concurrently, and returns the first consistent formula any of them finds.
// Siblings are cancelled via the errgroup's shared context as soon as one
// succeeds; which formula wins is unspecified when more than one skeleton
// admits a match at this size.
func solveParallel(sks []*skeleton.Skeleton, atoms generate.Atoms, s *sample.Sample, workers int) (*ltl.Formula, error) {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	var winner atomic.Pointer[ltl.Formula]

	for _, sk := range sks {
		sk := sk
		g.Go(func() error {
			for f := range generate.Formulae(sk, atoms) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if sample.IsConsistent(s, f) {
					winner.Store(f)
					return errFound
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if f := winner.Load(); f != nil {
		return f, nil
	}
	if err != nil && !errors.Is(err, errFound) && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return nil, nil
}
