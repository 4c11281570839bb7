package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/player"
)

/*
Arena benchmark subpackage, plays a series of games between two players
on clones of the starting position, and counts the results.
*/

// Starting position of the arena games, each worker plays on its own clone
type PositionLike[T minimax.MoveLike, V any, P any] interface {
	minimax.GameState[T, V]
	minimax.Cloner[P]
}

// Creates a fresh player for a worker, players usually aren't safe for concurrent use
type PlayerFactory[T minimax.MoveLike, V any] func(workerID int) player.Player[T, V]

type VersusArena[T minimax.MoveLike, V any, P PositionLike[T, V, P]] struct {
	VersusArenaStats
	Player1  PlayerFactory[T, V]
	Player2  PlayerFactory[T, V]
	P1Name   string
	P2Name   string
	Judge    Judge[V]
	Config   *Config
	Position P
	wg       sync.WaitGroup
	errMu    sync.Mutex
	errs     []error
	ctx      context.Context
}

func NewVersusArena[T minimax.MoveLike, V any, P PositionLike[T, V, P]](
	position P, judge Judge[V], p1, p2 PlayerFactory[T, V],
) *VersusArena[T, V, P] {
	return &VersusArena[T, V, P]{
		Player1:  p1,
		Player2:  p2,
		P1Name:   "player 1",
		P2Name:   "player 2",
		Judge:    judge,
		Config:   DefaultConfig(),
		Position: position,
		ctx:      context.Background(),
	}
}

func (va *VersusArena[T, V, P]) WithContext(ctx context.Context) *VersusArena[T, V, P] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[T, V, P]) WithNames(p1, p2 string) *VersusArena[T, V, P] {
	va.P1Name, va.P2Name = p1, p2
	return va
}

func (va *VersusArena[T, V, P]) Setup(config *Config) *VersusArena[T, V, P] {
	va.Config = config
	return va
}

// Start equally distributed work between worker goroutines, to wait for the result call Wait
func (va *VersusArena[T, V, P]) Start(listener ListenerLike[T]) {
	if listener == nil {
		listener = DefaultListener[T]{}
	}

	workers := max(1, va.Config.Workers)
	nGames := va.Config.Games / workers
	rest := va.Config.Games % workers

	log.Debug().Str("config", va.Config.String()).Msg("starting arena")

	for id := 0; id < workers; id++ {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		va.wg.Add(1)
		go va.worker(id, nGames+delta, listener, va.Player1(id), va.Player2(id))
	}
}

// Wait for all workers to finish, returns errors reported by the players or the positions
func (va *VersusArena[T, V, P]) Wait() error {
	va.wg.Wait()

	va.errMu.Lock()
	defer va.errMu.Unlock()
	return errors.Join(va.errs...)
}

// Start and Wait, the summary is passed to the listener
func (va *VersusArena[T, V, P]) Run(listener ListenerLike[T]) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = DefaultListener[T]{}
	}

	va.Start(listener)
	err := va.Wait()

	summary := va.Summary()
	listener.Summary(summary)
	return summary, err
}

func (va *VersusArena[T, V, P]) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          max(1, va.Config.Workers),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

func (va *VersusArena[T, V, P]) fail(err error) {
	va.errMu.Lock()
	va.errs = append(va.errs, err)
	va.errMu.Unlock()
}

func (va *VersusArena[T, V, P]) worker(id, nGames int, listener ListenerLike[T], p1, p2 player.Player[T, V]) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(va.Config.Seed + uint64(id)))
	gamePos := va.Position.Clone()
	info := VersusWorkerInfo[T]{WorkerID: id, NGames: nGames}

Loop:
	for i := 0; i < nGames; i++ {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		p1Seat := minimax.Player1
		if va.Config.SwapSeats && r.Intn(2) == 1 {
			p1Seat = minimax.Player2
		}

		var seats [2]player.Player[T, V]
		seats[p1Seat-1] = p1
		seats[p1Seat.Opponent()-1] = p2

		moves, winner, err := playGame(gamePos, seats, va.Judge, listener, info)
		if err != nil {
			va.fail(fmt.Errorf("worker %d, game %d: %w", id, i+1, err))
			break
		}

		info.Result = va.add(winner, p1Seat)
		switch info.Result {
		case VersusPl1Win:
			info.P1Wins++
		case VersusPl2Win:
			info.P2Wins++
		default:
			info.Draws++
		}

		info.FinishedGames = i + 1
		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnFinishedGame(info)
	}

	info.Moves = nil
	info.GameMoveNum = 0
	listener.OnFinishedWork(info)
}

// Play one game to the end and restore the position, returns the played moves and the winning seat
func playGame[T minimax.MoveLike, V any, P PositionLike[T, V, P]](
	gamePos P, seats [2]player.Player[T, V], judge Judge[V], listener ListenerLike[T], info VersusWorkerInfo[T],
) ([]T, minimax.Turn, error) {
	moves := make([]T, 0, 16)

	// Undo all moves, even if the game was interrupted
	defer func() {
		for range moves {
			_ = gamePos.UndoMove()
		}
	}()

	for {
		value, terminal := gamePos.Value()
		if terminal {
			return append([]T(nil), moves...), judge(value), nil
		}

		m, err := seats[gamePos.Turn()-1].NextMove(gamePos)
		if err != nil {
			return nil, minimax.NoTurn, err
		}
		if err := gamePos.ApplyMove(m); err != nil {
			return nil, minimax.NoTurn, err
		}
		moves = append(moves, m)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)
	}
}
