package player

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Instrumentation of a single NextMove call of the minimax player
type Report[T minimax.MoveLike, V any] struct {
	Turn    minimax.Turn
	Move    T
	Value   V
	Nodes   int // moves applied during the search
	Elapsed time.Duration
}

// Listener function callback, will receive the report after each search
type ListenerFunc[T minimax.MoveLike, V any] func(Report[T, V])

type Listener[T minimax.MoveLike, V any] struct {
	onSearch ListenerFunc[T, V]
}

func NewListener[T minimax.MoveLike, V any]() Listener[T, V] {
	return Listener[T, V]{}
}

// Attach new callback, called after every finished search
func (listener *Listener[T, V]) OnSearch(onSearch ListenerFunc[T, V]) *Listener[T, V] {
	listener.onSearch = onSearch
	return listener
}

func (listener *Listener[T, V]) invoke(report Report[T, V]) {
	if listener.onSearch != nil {
		listener.onSearch(report)
	}
}
