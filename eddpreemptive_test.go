package schedlib_test

import (
	"testing"

	"github.com/katalvlaran/schedlib"
	"github.com/stretchr/testify/require"
)

func TestEDDPreemptive_SevenJobInstance(t *testing.T) {
	p, r, d := sevenJobInstance()
	s, err := schedlib.EDDPreemptive(p, r, d)
	require.NoError(t, err)

	want := []schedlib.JobRun{
		{Start: 0, Job: 5, Duration: 6},
		{Start: 10, Job: 0, Duration: 5},
		{Start: 15, Job: 1, Duration: 5},
		{Start: 20, Job: 3, Duration: 4},
		{Start: 24, Job: 1, Duration: 1},
		{Start: 25, Job: 2, Duration: 7},
		{Start: 32, Job: 6, Duration: 1},
		{Start: 33, Job: 4, Duration: 3},
	}
	require.Equal(t, want, s.Runs)
}

func TestEDDPreemptive_LowerBoundsNonPreemptiveOptimum(t *testing.T) {
	p, r, d := sevenJobInstance()
	preemptive, err := schedlib.EDDPreemptive(p, r, d)
	require.NoError(t, err)
	preemptiveL, err := preemptive.MaxLateness(d)
	require.NoError(t, err)

	exact, err := schedlib.Carlier(p, r, d)
	require.NoError(t, err)
	exactL, err := exact.MaxLateness(d)
	require.NoError(t, err)

	require.LessOrEqual(t, preemptiveL, exactL)
}

func TestEDDPreemptive_Empty(t *testing.T) {
	s, err := schedlib.EDDPreemptive(nil, nil, nil)
	require.NoError(t, err)
	require.Empty(t, s.Runs)
}

func TestEDDPreemptive_LengthMismatch(t *testing.T) {
	_, err := schedlib.EDDPreemptive([]schedlib.Time{1}, []schedlib.Time{0}, []schedlib.Time{1, 2})
	require.ErrorIs(t, err, schedlib.ErrLengthMismatch)
}
