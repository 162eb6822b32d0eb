package sample

import (
	"sort"

	"github.com/katalvlaran/ltlsynth/trace"
)

// AddPositive appends t to the positive set. Fails with ErrContradictsSample
// if t already appears among the negative traces; duplicates within the
// positive set itself are tolerated.
func (s *Sample) AddPositive(t trace.Trace) error {
	if containsTrace(s.negative, t) {
		return ErrContradictsSample
	}
	s.positive = append(s.positive, t)
	return nil
}

// AddNegative appends t to the negative set. Fails with ErrContradictsSample
// if t already appears among the positive traces; duplicates within the
// negative set itself are tolerated.
func (s *Sample) AddNegative(t trace.Trace) error {
	if containsTrace(s.positive, t) {
		return ErrContradictsSample
	}
	s.negative = append(s.negative, t)
	return nil
}

// IsSolvable reports whether the sample admits any consistent deterministic
// formula: it does unless some trace appears in both the positive and
// negative sets, in which case no formula (being a function of the trace)
// could possibly satisfy both labels.
func (s *Sample) IsSolvable() bool {
	for _, p := range s.positive {
		if containsTrace(s.negative, p) {
			return false
		}
	}
	return true
}

// TimeLength returns the maximum trace length across both sets, 0 if the
// sample is empty.
func (s *Sample) TimeLength() int {
	max := 0
	for _, t := range s.positive {
		if len(t) > max {
			max = len(t)
		}
	}
	for _, t := range s.negative {
		if len(t) > max {
			max = len(t)
		}
	}
	return max
}

// VarsUsed returns the sorted, deduplicated indices of propositional
// variables that appear in any trace of the sample, bounding how far atom
// generation needs to range.
func (s *Sample) VarsUsed() []int {
	seen := map[int]struct{}{}
	record := func(traces []trace.Trace) {
		for _, t := range traces {
			for _, val := range t {
				for i := range val {
					seen[i] = struct{}{}
				}
			}
		}
	}
	record(s.positive)
	record(s.negative)

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// containsTrace reports whether t appears (by value) in traces.
func containsTrace(traces []trace.Trace, t trace.Trace) bool {
	for _, candidate := range traces {
		if tracesEqual(candidate, t) {
			return true
		}
	}
	return false
}

func tracesEqual(a, b trace.Trace) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
