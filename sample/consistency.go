package sample

import (
	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/katalvlaran/ltlsynth/trace"
)

// IsConsistent reports whether f satisfies every positive trace and no
// negative trace in s. The positive and negative checks are interleaved
// (round-robin across both sets) so a falsifying trace on either side is
// found as early as possible regardless of which side is exhausted first.
func IsConsistent(s *Sample, f *ltl.Formula) bool {
	pos, neg := s.positive, s.negative
	n := len(pos)
	if len(neg) > n {
		n = len(neg)
	}
	for i := 0; i < n; i++ {
		if i < len(pos) && !trace.Eval(f, pos[i]) {
			return false
		}
		if i < len(neg) && trace.Eval(f, neg[i]) {
			return false
		}
	}
	return true
}
