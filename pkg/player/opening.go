package player

import (
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Weaker version of an inner player: its first move is picked at random
// among the candidates (for example the moves which don't lose immediately),
// every next move comes from the inner player.
type Opening[T minimax.MoveLike, V any] struct {
	inner      Player[T, V]
	candidates func(minimax.GameState[T, V]) []T
	random     *Random[T, V]
}

func NewOpening[T minimax.MoveLike, V any](inner Player[T, V], candidates func(minimax.GameState[T, V]) []T) *Opening[T, V] {
	return &Opening[T, V]{
		inner:      inner,
		candidates: candidates,
		random:     NewRandom[T, V](),
	}
}

func (o *Opening[T, V]) NextMove(state minimax.GameState[T, V]) (T, error) {
	// Both players make their first move in the first 2 plies
	if state.History() < 2 {
		if moves := o.candidates(state); len(moves) > 0 {
			return o.random.choose(moves)
		}
	}
	return o.inner.NextMove(state)
}
