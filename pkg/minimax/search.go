package minimax

import "fmt"

// Outcome of a search, Move is valid only if HasMove is set
// (the position was not terminal and had at least one legal move)
type Result[T MoveLike, V any] struct {
	Value   V
	Move    T
	HasMove bool
}

// Exact minimax search of the whole game tree below 'state'.
//
// The state is borrowed for the duration of the call: every applied move is undone
// before returning, so the caller gets back the position it passed in.
// Children are visited in LegalMoves() order and only a strictly better value
// replaces the current best, meaning the first optimal move is the one returned.
// Once the evaluator reports a value as proven for the mover, the remaining moves are skipped.
//
// Panics if the game rejects one of its own legal moves, or the history
// depth after the search doesn't match the one before it.
func Solve[T MoveLike, V any](state GameState[T, V], eval Evaluator[V]) Result[T, V] {
	depth := state.History()
	result := solve(state, eval)

	if d := state.History(); d != depth {
		panic(fmt.Sprintf("[minimax] Solve: history depth is %d after the search, expected %d", d, depth))
	}
	return result
}

func solve[T MoveLike, V any](state GameState[T, V], eval Evaluator[V]) Result[T, V] {
	if v, terminal := state.Value(); terminal {
		return Result[T, V]{Value: v}
	}

	mover := state.Turn()
	best := Result[T, V]{Value: eval.Worst(mover)}

	for _, move := range state.LegalMoves() {
		if err := state.ApplyMove(move); err != nil {
			panic(fmt.Sprintf("[minimax] solve: legal move %v was rejected: %v", move, err))
		}

		child := solve(state, eval)

		if err := state.UndoMove(); err != nil {
			panic(fmt.Sprintf("[minimax] solve: couldn't undo move %v: %v", move, err))
		}

		if !best.HasMove || eval.Better(mover, child.Value, best.Value) {
			best.Value = child.Value
			best.Move = move
			best.HasMove = true
		}

		// Can't do any better than that
		if eval.Proven(mover, best.Value) {
			break
		}
	}

	return best
}

// Get the principal variation (ie. the sequence of optimal moves)
// from the current position until the game ends, along with the final value.
// The state is restored before returning
func PrincipalVariation[T MoveLike, V any](state GameState[T, V], eval Evaluator[V]) ([]T, V) {
	pv := make([]T, 0, 8)

	for {
		result := Solve(state, eval)
		if !result.HasMove {
			break
		}
		if err := state.ApplyMove(result.Move); err != nil {
			panic(fmt.Sprintf("[minimax] PrincipalVariation: best move %v was rejected: %v", result.Move, err))
		}
		pv = append(pv, result.Move)
	}

	value, _ := state.Value()
	for range pv {
		if err := state.UndoMove(); err != nil {
			panic(fmt.Sprintf("[minimax] PrincipalVariation: couldn't undo: %v", err))
		}
	}

	return pv, value
}
