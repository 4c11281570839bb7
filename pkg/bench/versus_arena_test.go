package bench

import (
	"bytes"
	"context"
		"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-minimax/pkg/games/coins"
	"github.com/IlikeChooros/go-minimax/pkg/games/ttt"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/player"
)

type tttPlayer = player.Player[ttt.Move, minimax.Score]

func minimaxTtt(int) tttPlayer {
	return player.NewMinimax[ttt.Move, minimax.Score](minimax.SignedEvaluator{})
}

func randomTtt(id int) tttPlayer {
	return player.NewRandomWithSeed[ttt.Move, minimax.Score](uint64(100 + id))
}

// Counts the callbacks, to check every game is reported
type countingListener struct {
	mu       sync.Mutex
	moves    int
	games    int
	workers  int
	summary  VersusSummaryInfo
	maxMoves int
}

func (l *countingListener) OnMoveMade(info VersusWorkerInfo[ttt.Move]) {
	l.mu.Lock()
	l.moves++
	l.mu.Unlock()
}

func (l *countingListener) OnFinishedGame(info VersusWorkerInfo[ttt.Move]) {
	l.mu.Lock()
	l.games++
	l.maxMoves = max(l.maxMoves, info.GameMoveNum)
	l.mu.Unlock()
}

func (l *countingListener) OnFinishedWork(VersusWorkerInfo[ttt.Move]) {
	l.mu.Lock()
	l.workers++
	l.mu.Unlock()
}

func (l *countingListener) Summary(info VersusSummaryInfo) {
	l.summary = info
}

func TestVersusArena(t *testing.T) {
	t.Run("optimal players draw", func(t *testing.T) {
		pos := ttt.NewPosition()
		arena := NewVersusArena[ttt.Move, minimax.Score](pos, SignedJudge, minimaxTtt, minimaxTtt).
			Setup(DefaultConfig().SetGames(6).SetWorkers(3).SetSwapSeats(true).SetSeed(7))

		listener := &countingListener{}
		summary, err := arena.Run(listener)
		require.NoError(t, err)

		require.Equal(t, 6, summary.TotalGames)
		require.Equal(t, 6, summary.Draws)
		require.Equal(t, 3, summary.Workers)
		require.Equal(t, summary, listener.summary)
		require.Equal(t, 6, listener.games)
		require.Equal(t, 3, listener.workers)
		require.Equal(t, 6*9, listener.moves, "Drawn games fill the board")
		require.Equal(t, 0, pos.History(), "Workers play on clones")
	})

	t.Run("optimal player never loses", func(t *testing.T) {
		arena := NewVersusArena[ttt.Move, minimax.Score](ttt.NewPosition(), SignedJudge, minimaxTtt, randomTtt).
			WithNames("minimax", "random").
			Setup(DefaultConfig().SetGames(20).SetWorkers(4).SetSwapSeats(true).SetSeed(1))

		summary, err := arena.Run(nil)
		require.NoError(t, err)

		require.Equal(t, 20, summary.TotalGames)
		require.Equal(t, 0, summary.P2Wins)
		require.Equal(t, summary.P1Wins+summary.P2Wins, summary.FirstToMoveWins+summary.SecondToMoveWins)
		require.Equal(t, "minimax", summary.P1Name)
		require.Equal(t, "random", summary.P2Name)
	})

	t.Run("coins without seat swap", func(t *testing.T) {
		mm := func(int) player.Player[coins.Move, minimax.ScorePair] {
			return player.NewMinimax[coins.Move, minimax.ScorePair](minimax.ScorePairEvaluator{})
		}
		arena := NewVersusArena[coins.Move, minimax.ScorePair](coins.NewGame([]int{10, 20, 15}), ScorePairJudge, mm, mm).
			Setup(DefaultConfig().SetGames(4))

		summary, err := arena.Run(DefaultListener[coins.Move]{})
		require.NoError(t, err)

		// 25 to 20 every time
		require.Equal(t, 4, summary.P1Wins)
		require.Equal(t, 4, summary.FirstToMoveWins)
	})

	t.Run("player errors stop the worker", func(t *testing.T) {
		failing := func(int) tttPlayer {
			return player.NewHuman[ttt.Move, minimax.Score](strings.NewReader(""), io.Discard, ttt.ParseMove)
		}
		pos := ttt.NewPosition()
		arena := NewVersusArena[ttt.Move, minimax.Score](pos, SignedJudge, minimaxTtt, failing).
			Setup(DefaultConfig().SetGames(4).SetWorkers(2))

		summary, err := arena.Run(nil)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 0, summary.TotalGames)
		require.Equal(t, 0, pos.History())
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		arena := NewVersusArena[ttt.Move, minimax.Score](ttt.NewPosition(), SignedJudge, randomTtt, randomTtt).
			WithContext(ctx).
			Setup(DefaultConfig().SetGames(10))

		summary, err := arena.Run(nil)
		require.NoError(t, err)
		require.Equal(t, 0, summary.TotalGames)
	})
}

func TestPlayGameRestoresPosition(t *testing.T) {
	pos := ttt.NewPosition()
	require.NoError(t, pos.ApplyMove(ttt.Move{Row: 1, Col: 1}))

	seats := [2]tttPlayer{randomTtt(0), randomTtt(1)}
	moves, winner, err := playGame[ttt.Move, minimax.Score](pos, seats, SignedJudge, DefaultListener[ttt.Move]{}, VersusWorkerInfo[ttt.Move]{})
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	require.LessOrEqual(t, len(moves), 8)
	require.Contains(t, []minimax.Turn{minimax.NoTurn, minimax.Player1, minimax.Player2}, winner)

	require.Equal(t, 1, pos.History())
	require.Equal(t, ttt.Cross, pos.At(1, 1))

	broken := player.Func[ttt.Move, minimax.Score](func(minimax.GameState[ttt.Move, minimax.Score]) (ttt.Move, error) {
		return ttt.Move{Row: 1, Col: 1}, nil
	})
	_, _, err = playGame[ttt.Move, minimax.Score](pos, [2]tttPlayer{broken, broken}, SignedJudge, DefaultListener[ttt.Move]{}, VersusWorkerInfo[ttt.Move]{})
	require.ErrorIs(t, err, minimax.ErrIllegalMove)
	require.Equal(t, 1, pos.History())
}

func TestStats(t *testing.T) {
	var stats VersusArenaStats

	require.Equal(t, VersusPl1Win, stats.add(minimax.Player1, minimax.Player1))
	require.Equal(t, VersusPl1Win, stats.add(minimax.Player2, minimax.Player2))
	require.Equal(t, VersusPl2Win, stats.add(minimax.Player1, minimax.Player2))
	require.Equal(t, VersusDraw, stats.add(minimax.NoTurn, minimax.Player1))

	require.Equal(t, 4, stats.Total())
	require.Equal(t, 2, stats.P1Wins())
	require.Equal(t, 1, stats.P2Wins())
	require.Equal(t, 1, stats.Draws())
	require.Equal(t, 2, stats.FirstToMoveWins())
	require.Equal(t, 1, stats.SecondToMoveWins())
}

func TestJudges(t *testing.T) {
	require.Equal(t, minimax.Player1, SignedJudge(minimax.Win1))
	require.Equal(t, minimax.Player2, SignedJudge(minimax.Win2))
	require.Equal(t, minimax.NoTurn, SignedJudge(minimax.Draw))

	require.Equal(t, minimax.Player1, ScorePairJudge(minimax.ScorePair{25, 20}))
	require.Equal(t, minimax.Player2, ScorePairJudge(minimax.ScorePair{1, 2}))
	require.Equal(t, minimax.NoTurn, ScorePairJudge(minimax.ScorePair{3, 3}))
}

func TestConfig(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, DefaultGames, c.Games)
	require.Equal(t, DefaultWorkers, c.Workers)

	c.SetGames(-5).SetWorkers(0).SetSeed(9)
	require.Equal(t, 0, c.Games)
	require.Equal(t, 1, c.Workers)
	require.Contains(t, c.String(), `"Seed":9`)
}

func TestTermListener(t *testing.T) {
	out := &bytes.Buffer{}
	listener := NewTermListener[ttt.Move](out)
	listener.ShowPv = true

	arena := NewVersusArena[ttt.Move, minimax.Score](ttt.NewPosition(), SignedJudge, minimaxTtt, minimaxTtt).
		WithNames("first", "second").
		Setup(DefaultConfig().SetGames(2))

	_, err := arena.Run(listener)
	require.NoError(t, err)

	text := out.String()
	require.Equal(t, 2, strings.Count(text, "after 9 moves"))
	require.Contains(t, text, "[worker 0] done: 2 games, p1=0 p2=0 draws=2")
	require.Contains(t, text, "Summary")
	require.Contains(t, text, "first:")
	require.Contains(t, text, "second:")
}
