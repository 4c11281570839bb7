package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Receives the arena progress, the methods are called by multiple workers
// at the same time, so implementations have to synchronize themselves
type ListenerLike[T minimax.MoveLike] interface {
	OnMoveMade(info VersusWorkerInfo[T])
	OnFinishedGame(info VersusWorkerInfo[T])
	OnFinishedWork(info VersusWorkerInfo[T])
	Summary(info VersusSummaryInfo)
}

type DefaultListener[T minimax.MoveLike] struct{}

func (DefaultListener[T]) OnMoveMade(VersusWorkerInfo[T])     {}
func (DefaultListener[T]) OnFinishedGame(VersusWorkerInfo[T]) {}
func (DefaultListener[T]) OnFinishedWork(VersusWorkerInfo[T]) {}
func (DefaultListener[T]) Summary(VersusSummaryInfo)          {}

// Forwards every event to all of the listeners, in order
type Listeners[T minimax.MoveLike] []ListenerLike[T]

func (ls Listeners[T]) OnMoveMade(info VersusWorkerInfo[T]) {
	for _, l := range ls {
		l.OnMoveMade(info)
	}
}

func (ls Listeners[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	for _, l := range ls {
		l.OnFinishedGame(info)
	}
}

func (ls Listeners[T]) OnFinishedWork(info VersusWorkerInfo[T]) {
	for _, l := range ls {
		l.OnFinishedWork(info)
	}
}

func (ls Listeners[T]) Summary(info VersusSummaryInfo) {
	for _, l := range ls {
		l.Summary(info)
	}
}

// Prints a colored line after every game and the summary at the end
type TermListener[T minimax.MoveLike] struct {
	mu     sync.Mutex
	out    *termenv.Output
	ShowPv bool // print the moves of each game
}

func NewTermListener[T minimax.MoveLike](w io.Writer) *TermListener[T] {
	return &TermListener[T]{out: termenv.NewOutput(w)}
}

func (l *TermListener[T]) colored(s string, color string) termenv.Style {
	return l.out.String(s).Foreground(l.out.Color(color))
}

func (l *TermListener[T]) resultStyle(r VersusMatchResult) termenv.Style {
	switch r {
	case VersusPl1Win:
		return l.colored(r.String(), "2")
	case VersusPl2Win:
		return l.colored(r.String(), "1")
	}
	return l.colored(r.String(), "3")
}

func (l *TermListener[T]) OnMoveMade(VersusWorkerInfo[T]) {}

func (l *TermListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[worker %d] game %d/%d: %s after %d moves",
		info.WorkerID, info.FinishedGames, info.NGames, l.resultStyle(info.Result), info.GameMoveNum)
	if l.ShowPv {
		fmt.Fprintf(l.out, " %v", info.Moves)
	}
	fmt.Fprintln(l.out)
}

func (l *TermListener[T]) OnFinishedWork(info VersusWorkerInfo[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[worker %d] done: %d games, p1=%d p2=%d draws=%d\n",
		info.WorkerID, info.FinishedGames, info.P1Wins, info.P2Wins, info.Draws)
}

func (l *TermListener[T]) Summary(info VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.out, l.out.String("Summary").Bold())
	fmt.Fprintf(l.out, "  games:            %d (%d workers)\n", info.TotalGames, info.Workers)
	fmt.Fprintf(l.out, "  %-17s %s\n", info.P1Name+":", l.colored(fmt.Sprint(info.P1Wins), "2"))
	fmt.Fprintf(l.out, "  %-17s %s\n", info.P2Name+":", l.colored(fmt.Sprint(info.P2Wins), "1"))
	fmt.Fprintf(l.out, "  draws:            %s\n", l.colored(fmt.Sprint(info.Draws), "3"))
	fmt.Fprintf(l.out, "  first/second to move wins: %d/%d\n", info.FirstToMoveWins, info.SecondToMoveWins)
}
