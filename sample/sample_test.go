package sample_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/katalvlaran/ltlsynth/sample"
	"github.com/katalvlaran/ltlsynth/trace"
	"github.com/stretchr/testify/require"
)

func TestAddContradictionIsRejected(t *testing.T) {
	s := sample.New()
	tr := trace.Trace{{true, true}}
	require.NoError(t, s.AddPositive(tr))
	require.ErrorIs(t, s.AddNegative(tr), sample.ErrContradictsSample)

	s2 := sample.New()
	require.NoError(t, s2.AddNegative(tr))
	require.ErrorIs(t, s2.AddPositive(tr), sample.ErrContradictsSample)
}

func TestAddDuplicateWithinSetIsTolerated(t *testing.T) {
	s := sample.New()
	tr := trace.Trace{{true}}
	require.NoError(t, s.AddPositive(tr))
	require.NoError(t, s.AddPositive(tr))
	require.Len(t, s.Positives(), 2)
}

func TestIsSolvable(t *testing.T) {
	s := sample.New()
	tr := trace.Trace{{true}}
	require.NoError(t, s.AddPositive(tr))
	require.True(t, s.IsSolvable())
}

func TestTimeLength(t *testing.T) {
	s := sample.New()
	require.NoError(t, s.AddPositive(trace.Trace{{true}, {false}}))
	require.NoError(t, s.AddNegative(trace.Trace{{true}, {false}, {true}}))
	require.Equal(t, 3, s.TimeLength())
}

func TestVarsUsed(t *testing.T) {
	s := sample.New()
	require.NoError(t, s.AddPositive(trace.Trace{{true, false, true}}))
	require.Equal(t, []int{0, 1, 2}, s.VarsUsed())
}

func TestIsConsistentInterleaves(t *testing.T) {
	s := sample.New()
	require.NoError(t, s.AddPositive(trace.Trace{{true, true}}))
	require.NoError(t, s.AddNegative(trace.Trace{{false, true}}))
	require.NoError(t, s.AddNegative(trace.Trace{{true, false}}))
	require.NoError(t, s.AddNegative(trace.Trace{{false, false}}))

	formula := ltl.And(ltl.Atom(0), ltl.Atom(1))
	require.True(t, sample.IsConsistent(s, formula))

	notConsistent := ltl.Or(ltl.Atom(0), ltl.Atom(1))
	require.False(t, sample.IsConsistent(s, notConsistent))
}
