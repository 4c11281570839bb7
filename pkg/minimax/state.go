package minimax

// GameState is the reversible position contract every game implements.
// A single instance is mutated in place by the search: ApplyMove pushes
// enough information to reverse the move, UndoMove pops it.
type GameState[T MoveLike, V any] interface {
	// Every move allowed in the current position, always in the same order.
	// Empty when the position is terminal
	LegalMoves() []T
	// Play the move and pass the turn. Returns ErrIllegalMove or ErrTerminalState
	// (wrapped) without touching the state, if the move can't be played
	ApplyMove(T) error
	// Reverse the most recently applied move, ErrEmptyHistory if there is none
	UndoMove() error
	// Terminal value of the position, the bool is false while the game is in progress
	Value() (V, bool)
	// Participant to move
	Turn() Turn
	// Number of applied moves, that were not undone yet
	History() int
}

// Explicit duplication, without any mutable memory shared with the source.
// Not needed by the depth-first search, used by callers which want to
// explore two branches at the same time
type Cloner[S any] interface {
	Clone() S
}
