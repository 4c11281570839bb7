package player

import (
	"golang.org/x/exp/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Picks uniformly at random among the legal moves.
// Not safe for concurrent use, give each goroutine its own player
type Random[T minimax.MoveLike, V any] struct {
	rand *rand.Rand
}

// Seeded with SeedGeneratorFn
func NewRandom[T minimax.MoveLike, V any]() *Random[T, V] {
	return NewRandomWithSeed[T, V](SeedGeneratorFn())
}

func NewRandomWithSeed[T minimax.MoveLike, V any](seed uint64) *Random[T, V] {
	return &Random[T, V]{rand: rand.New(rand.NewSource(seed))}
}

func (r *Random[T, V]) NextMove(state minimax.GameState[T, V]) (T, error) {
	return r.choose(state.LegalMoves())
}

func (r *Random[T, V]) choose(moves []T) (T, error) {
	if len(moves) == 0 {
		var zero T
		return zero, ErrNoMoves
	}
	return moves[r.rand.Intn(len(moves))], nil
}
