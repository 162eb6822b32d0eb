package sample

import (
	"errors"

	"github.com/katalvlaran/ltlsynth/trace"
)

// ErrContradictsSample is returned by AddPositive/AddNegative when the
// trace already appears in the opposite-labeled set.
var ErrContradictsSample = errors.New("sample: trace contradicts existing label")

// Sample holds the positive and negative traces a learned formula must be
// consistent with. The zero value is ready to use.
type Sample struct {
	positive []trace.Trace
	negative []trace.Trace
}

// New returns an empty Sample.
func New() *Sample {
	return &Sample{}
}

// Positives returns the sample's positive traces. The returned slice aliases
// internal storage; callers must not mutate it — the sample is read-only
// during search.
func (s *Sample) Positives() []trace.Trace { return s.positive }

// Negatives returns the sample's negative traces, under the same aliasing
// contract as Positives.
func (s *Sample) Negatives() []trace.Trace { return s.negative }
