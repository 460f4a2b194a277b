package score

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromScore(t *testing.T) {
	t.Run("no usable information", func(t *testing.T) {
		_, ok := FromScore(NoInfo())
		require.False(t, ok, "no info should not resolve")
		_, ok = FromScore(Ancestor())
		require.False(t, ok, "the ancestor marker should not resolve")
	})

	t.Run("ties", func(t *testing.T) {
		d, ok := FromScore(GuaranteedTie())
		require.True(t, ok)
		require.Equal(t, GuaranteedDeterminedTie(), d)
		require.True(t, d.IsGuaranteedTie())

		d, ok = FromScore(Tie(3))
		require.True(t, ok)
		require.Equal(t, DeterminedTie(3), d)
		require.False(t, d.IsGuaranteedTie())
	})

	t.Run("fully determined outcomes", func(t *testing.T) {
		d, ok := FromScore(OptimalWin(4))
		require.True(t, ok)
		require.Equal(t, DeterminedWin(4), d)

		d, ok = FromScore(OptimalLose(8))
		require.True(t, ok)
		require.Equal(t, DeterminedLose(8), d)

		d, ok = FromScore(Win(1))
		require.True(t, ok, "a win in one move cannot be beaten")
		require.Equal(t, DeterminedWin(1), d)
	})

	t.Run("outcomes with a gap", func(t *testing.T) {
		_, ok := FromScore(Win(5))
		require.False(t, ok, "a faster win may exist")
		_, ok = FromScore(Lose(6))
		require.False(t, ok, "a faster loss may exist")
		_, ok = FromScore(New(true, 2, 5))
		require.False(t, ok, "depths 3 and 4 are undetermined")
	})
}

func TestTruncated(t *testing.T) {
	require.Equal(t, DeterminedWin(3), DeterminedWin(3).Truncated(5), "win within depth is kept")
	require.Equal(t, DeterminedWin(5), DeterminedWin(5).Truncated(5), "win at depth is kept")
	require.Equal(t, DeterminedTie(4), DeterminedWin(5).Truncated(4), "win beyond depth degrades to a tie")
	require.Equal(t, DeterminedTie(2), DeterminedLose(7).Truncated(2), "loss beyond depth degrades to a tie")
	require.Equal(t, DeterminedTie(6), GuaranteedDeterminedTie().Truncated(6))
	require.Equal(t, DeterminedTie(3), DeterminedTie(3).Truncated(6))
	require.Equal(t, DeterminedTie(2), DeterminedTie(3).Truncated(2))
	require.Equal(t, DeterminedWin(1), DeterminedWin(1).Truncated(0), "depth 0 leaves the score as is")
	require.Equal(t, DeterminedTie(3), DeterminedTie(3).Truncated(0))
}

func TestDeterminedString(t *testing.T) {
	require.Equal(t, "[cur:4]", DeterminedWin(4).String())
	require.Equal(t, "[oth:2]", DeterminedLose(2).String())
	require.Equal(t, "[tie]", GuaranteedDeterminedTie().String())
	require.Equal(t, "[tie:7]", DeterminedTie(7).String())
}
