package player

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Wraps the state and counts the applied moves, so the search itself stays free of counters
type countingState[T minimax.MoveLike, V any] struct {
	minimax.GameState[T, V]
	nodes int
}

func (c *countingState[T, V]) ApplyMove(m T) error {
	if err := c.GameState.ApplyMove(m); err != nil {
		return err
	}
	c.nodes++
	return nil
}

// Optimal player, runs a full minimax search on every move
type Minimax[T minimax.MoveLike, V any] struct {
	eval     minimax.Evaluator[V]
	listener Listener[T, V]
	timer    *_Timer
	last     Report[T, V]
}

func NewMinimax[T minimax.MoveLike, V any](eval minimax.Evaluator[V]) *Minimax[T, V] {
	return &Minimax[T, V]{
		eval:     eval,
		listener: NewListener[T, V](),
		timer:    _NewTimer(),
	}
}

func (m *Minimax[T, V]) SetListener(listener Listener[T, V]) {
	m.listener = listener
}

// Report of the most recent search
func (m *Minimax[T, V]) LastReport() Report[T, V] {
	return m.last
}

func (m *Minimax[T, V]) NextMove(state minimax.GameState[T, V]) (T, error) {
	counter := &countingState[T, V]{GameState: state}

	m.timer.Reset()
	result := minimax.Solve[T, V](counter, m.eval)
	elapsed := m.timer.Elapsed()

	if !result.HasMove {
		var zero T
		return zero, ErrNoMoves
	}

	m.last = Report[T, V]{
		Turn:    state.Turn(),
		Move:    result.Move,
		Value:   result.Value,
		Nodes:   counter.nodes,
		Elapsed: elapsed,
	}

	log.Debug().
		Stringer("turn", m.last.Turn).
		Str("move", fmt.Sprint(result.Move)).
		Str("value", fmt.Sprint(result.Value)).
		Int("nodes", counter.nodes).
		Dur("elapsed", elapsed).
		Msg("minimax search")

	m.listener.invoke(m.last)
	return result.Move, nil
}
