package minimax_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-minimax/pkg/games/coins"
	"github.com/IlikeChooros/go-minimax/pkg/games/ghost"
	"github.com/IlikeChooros/go-minimax/pkg/games/ttt"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func solveTtt(p *ttt.Position) minimax.Result[ttt.Move, minimax.Score] {
	return minimax.Solve[ttt.Move, minimax.Score](p, minimax.SignedEvaluator{})
}

func playTtt(t *testing.T, p *ttt.Position, moves ...ttt.Move) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, p.ApplyMove(m))
	}
}

func TestSolveEmptyGrid(t *testing.T) {
	p := ttt.NewPosition()
	result := solveTtt(p)

	require.True(t, result.HasMove)
	require.Equal(t, minimax.Draw, result.Value, "Optimal play on an empty grid should end in a draw")
	require.Equal(t, 0, p.History(), "Search should leave the position as it was")
	require.Equal(t, minimax.Player1, p.Turn())
}

func TestSolveIsDeterministic(t *testing.T) {
	p := ttt.NewPosition()
	first := solveTtt(p)

	for i := 0; i < 5; i++ {
		require.Equal(t, first, solveTtt(p))
	}
}

func TestSolveGrid(t *testing.T) {
	t.Run("cross takes the immediate win", func(t *testing.T) {
		p := ttt.NewPosition()
		playTtt(t, p, ttt.Move{Row: 0, Col: 0}, ttt.Move{Row: 1, Col: 0}, ttt.Move{Row: 0, Col: 1}, ttt.Move{Row: 1, Col: 1})

		result := solveTtt(p)
		require.Equal(t, minimax.Win1, result.Value)
		require.Equal(t, ttt.Move{Row: 0, Col: 2}, result.Move)
	})

	t.Run("circle takes the immediate win", func(t *testing.T) {
		p := ttt.NewPosition()
		playTtt(t, p, ttt.Move{Row: 0, Col: 0}, ttt.Move{Row: 1, Col: 0}, ttt.Move{Row: 0, Col: 1}, ttt.Move{Row: 1, Col: 1}, ttt.Move{Row: 2, Col: 2})

		result := solveTtt(p)
		require.Equal(t, minimax.Win2, result.Value)
		require.Equal(t, ttt.Move{Row: 0, Col: 2}, result.Move, "Taking the corner builds a double threat and comes first in order")
	})

	t.Run("terminal position has no move", func(t *testing.T) {
		p := ttt.NewPosition()
		playTtt(t, p, ttt.Move{Row: 0, Col: 0}, ttt.Move{Row: 1, Col: 0}, ttt.Move{Row: 0, Col: 1}, ttt.Move{Row: 1, Col: 1}, ttt.Move{Row: 0, Col: 2})

		result := solveTtt(p)
		require.False(t, result.HasMove)
		require.Equal(t, minimax.Win1, result.Value)
	})
}

// Independent dynamic programming solution: both players maximize their own
// total, and the total is fixed, so it's the classic 'optimal strategy' recurrence
func bruteForceCoins(values []int) int {
	var best func(i, j, sum int) int
	best = func(i, j, sum int) int {
		if i > j {
			return 0
		}
		left := values[i] + (sum - values[i] - best(i+1, j, sum-values[i]))
		right := values[j] + (sum - values[j] - best(i, j-1, sum-values[j]))
		return max(left, right)
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	return best(0, len(values)-1, sum)
}

func TestSolveCoins(t *testing.T) {
	t.Run("10 20 15", func(t *testing.T) {
		g := coins.NewGame([]int{10, 20, 15})
		result := minimax.Solve[coins.Move, minimax.ScorePair](g, minimax.ScorePairEvaluator{})

		require.Equal(t, minimax.ScorePair{25, 20}, result.Value)
		require.Equal(t, coins.Left, result.Move, "Both moves score 25, the first one in order is kept")
		require.Equal(t, 0, g.History())
	})

	t.Run("matches brute force", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for n := 0; n <= 8; n++ {
			for k := 0; k < 20; k++ {
				values := make([]int, n)
				for i := range values {
					values[i] = r.Intn(50)
				}
				require.Equal(t, bruteForceCoins(values), coins.FirstPlayerBest(values), "coins %v", values)
			}
		}
	})
}

var ghostWords = []string{"cat", "chirp", "dark", "dog", "donate", "donut"}

func TestSolveGhost(t *testing.T) {
	g, err := ghost.NewGame(ghostWords)
	require.NoError(t, err)

	for _, c := range "donu" {
		require.NoError(t, g.ApplyMove(ghost.Move(c)))
	}

	_, terminal := g.Value()
	require.False(t, terminal)
	require.Equal(t, minimax.Player1, g.Turn())
	require.Equal(t, []ghost.Move{'t'}, g.LegalMoves())

	result := minimax.Solve[ghost.Move, minimax.Score](g, minimax.SignedEvaluator{})
	require.Equal(t, minimax.Win2, result.Value, "Player 1 is forced to complete 'donut'")
	require.Equal(t, ghost.Move('t'), result.Move)
	require.Equal(t, "donu", g.Word())

	require.NoError(t, g.ApplyMove('t'))
	value, terminal := g.Value()
	require.True(t, terminal)
	require.Equal(t, minimax.Win2, value)
}

func TestPrincipalVariation(t *testing.T) {
	g := coins.NewGame([]int{10, 20, 15})
	pv, value := minimax.PrincipalVariation[coins.Move, minimax.ScorePair](g, minimax.ScorePairEvaluator{})

	require.Equal(t, []coins.Move{coins.Left, coins.Left, coins.Left}, pv)
	require.Equal(t, minimax.ScorePair{25, 20}, value)
	require.Equal(t, 0, g.History())
	require.Equal(t, []int{10, 20, 15}, g.Remaining())
}

// Game which refuses its own legal moves
type brokenGame struct {
	applied int
}

func (b *brokenGame) LegalMoves() []int           { return []int{1} }
func (b *brokenGame) ApplyMove(int) error         { return minimax.ErrIllegalMove }
func (b *brokenGame) UndoMove() error             { return minimax.ErrEmptyHistory }
func (b *brokenGame) Value() (minimax.Score, bool) { return minimax.Draw, false }
func (b *brokenGame) Turn() minimax.Turn          { return minimax.Player1 }
func (b *brokenGame) History() int                { return b.applied }

// Game which forgets to undo
type leakyGame struct {
	history int
}

func (l *leakyGame) LegalMoves() []int {
	if l.history > 0 {
		return nil
	}
	return []int{1}
}
func (l *leakyGame) ApplyMove(int) error { l.history++; return nil }
func (l *leakyGame) UndoMove() error     { return nil }
func (l *leakyGame) Value() (minimax.Score, bool) {
	return minimax.Draw, l.history > 0
}
func (l *leakyGame) Turn() minimax.Turn { return minimax.Player1 }
func (l *leakyGame) History() int       { return l.history }

func TestSolveContractViolations(t *testing.T) {
	t.Run("rejected legal move", func(t *testing.T) {
		require.Panics(t, func() {
			minimax.Solve[int, minimax.Score](&brokenGame{}, minimax.SignedEvaluator{})
		})
	})

	t.Run("unbalanced history", func(t *testing.T) {
		require.Panics(t, func() {
			minimax.Solve[int, minimax.Score](&leakyGame{}, minimax.SignedEvaluator{})
		})
	})
}
