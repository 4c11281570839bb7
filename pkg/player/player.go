package player

import (
	"errors"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var ErrNoMoves = errors.New("player: no legal moves")

// Anything that can pick the next move in a position: a search, a dice or a person.
// Implementations must leave the state as they found it
type Player[T minimax.MoveLike, V any] interface {
	NextMove(state minimax.GameState[T, V]) (T, error)
}

// Adapter to allow the use of ordinary functions as players
type Func[T minimax.MoveLike, V any] func(state minimax.GameState[T, V]) (T, error)

func (f Func[T, V]) NextMove(state minimax.GameState[T, V]) (T, error) {
	return f(state)
}
