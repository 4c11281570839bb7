package minimax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurn(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, NoTurn, NoTurn.Opponent())
}

func TestSignedEvaluator(t *testing.T) {
	eval := SignedEvaluator{}

	t.Run("player 1 maximizes", func(t *testing.T) {
		require.True(t, eval.Better(Player1, Win1, Draw))
		require.False(t, eval.Better(Player1, Draw, Draw), "Equal values are not better")
		require.True(t, eval.Better(Player1, Win2, eval.Worst(Player1)))
		require.True(t, eval.Proven(Player1, Win1))
		require.False(t, eval.Proven(Player1, Draw))
	})

	t.Run("player 2 minimizes", func(t *testing.T) {
		require.True(t, eval.Better(Player2, Win2, Draw))
		require.False(t, eval.Better(Player2, Win1, Draw))
		require.True(t, eval.Better(Player2, Win1, eval.Worst(Player2)))
		require.True(t, eval.Proven(Player2, Win2))
		require.False(t, eval.Proven(Player2, Win1))
	})
}

func TestScorePairEvaluator(t *testing.T) {
	eval := ScorePairEvaluator{}
	a := ScorePair{30, 10}
	b := ScorePair{20, 25}

	require.True(t, eval.Better(Player1, a, b))
	require.False(t, eval.Better(Player2, a, b))
	require.True(t, eval.Better(Player2, b, a))
	require.True(t, eval.Better(Player2, ScorePair{0, 0}, eval.Worst(Player2)))
	require.False(t, eval.Proven(Player1, ScorePair{1 << 40, 0}), "Unbounded outcomes are never proven")
}
