package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player 1 won"
	case VersusPl2Win:
		return "player 2 won"
	}
	return "draw"
}

// Maps a terminal value to the seat that won, minimax.NoTurn meaning a draw
type Judge[V any] func(V) minimax.Turn

// Winner of a zero-sum game
func SignedJudge(v minimax.Score) minimax.Turn {
	switch {
	case v > minimax.Draw:
		return minimax.Player1
	case v < minimax.Draw:
		return minimax.Player2
	}
	return minimax.NoTurn
}

// Whoever collected more, equal scores are a draw
func ScorePairJudge(v minimax.ScorePair) minimax.Turn {
	switch {
	case v[0] > v[1]:
		return minimax.Player1
	case v[0] < v[1]:
		return minimax.Player2
	}
	return minimax.NoTurn
}

type VersusArenaStats struct {
	p1Wins           atomic.Uint32
	p2Wins           atomic.Uint32
	draws            atomic.Uint32
	firstToMoveWins  atomic.Uint32
	secondToMoveWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstToMoveWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondToMoveWins.Load())
}

// Count the game, 'p1Seat' is the turn the arena's player 1 played as
func (vas *VersusArenaStats) add(winner minimax.Turn, p1Seat minimax.Turn) VersusMatchResult {
	switch winner {
	case minimax.NoTurn:
		vas.draws.Add(1)
		return VersusDraw
	case minimax.Player1:
		vas.firstToMoveWins.Add(1)
	default:
		vas.secondToMoveWins.Add(1)
	}

	if winner == p1Seat {
		vas.p1Wins.Add(1)
		return VersusPl1Win
	}
	vas.p2Wins.Add(1)
	return VersusPl2Win
}

type VersusWorkerInfo[T minimax.MoveLike] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []T
	Result        VersusMatchResult
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}
