package minimax

import "errors"

var (
	// The move is not in the current LegalMoves() list
	ErrIllegalMove = errors.New("illegal move")
	// UndoMove was called without any applied move left to reverse
	ErrEmptyHistory = errors.New("empty history")
	// A move was requested on a position that already has a terminal value
	ErrTerminalState = errors.New("terminal state")
)
