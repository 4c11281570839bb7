package ttt

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
)

// 3x3 grid game position, cross (player 1) always starts
type Position struct {
	board     [9]Piece
	bitboards [2]uint16
	history   []Move
}

var _ minimax.GameState[Move, minimax.Score] = (*Position)(nil)

func NewPosition() *Position {
	return &Position{
		history: make([]Move, 0, 9),
	}
}

// Derived from the number of pieces on the board, so it flips exactly once per move/undo
func (p *Position) Turn() minimax.Turn {
	if len(p.history)%2 == 0 {
		return minimax.Player1
	}
	return minimax.Player2
}

func (p *Position) History() int {
	return len(p.history)
}

// Piece on given cell
func (p *Position) At(row, col uint8) Piece {
	return p.board[Move{row, col}.index()]
}

func (p *Position) LegalMoves() []Move {
	if p.IsTerminated() {
		return nil
	}

	moves := make([]Move, 0, 9-len(p.history))
	free := uint(fullBoard ^ (p.bitboards[0] | p.bitboards[1]))
	for free != 0 {
		moves = append(moves, moveFromIndex(uint8(bits.TrailingZeros(free))))
		free &= free - 1
	}
	return moves
}

func (p *Position) ApplyMove(mv Move) error {
	if p.IsTerminated() {
		return fmt.Errorf("ttt: move %v: %w", mv, minimax.ErrTerminalState)
	}
	if !mv.valid() {
		return fmt.Errorf("ttt: move %v is off the board: %w", mv, minimax.ErrIllegalMove)
	}
	idx := mv.index()
	if p.board[idx] != None {
		return fmt.Errorf("ttt: cell %v is occupied: %w", mv, minimax.ErrIllegalMove)
	}

	bbIdx, piece := _bitboardCrossIdx, Cross
	if p.Turn() == minimax.Player2 {
		bbIdx, piece = _bitboardCircleIdx, Circle
	}

	p.bitboards[bbIdx] |= 1 << idx
	p.board[idx] = piece
	p.history = append(p.history, mv)
	return nil
}

func (p *Position) UndoMove() error {
	if len(p.history) == 0 {
		return fmt.Errorf("ttt: undo: %w", minimax.ErrEmptyHistory)
	}

	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	// Turn now points to the player who made the move
	bbIdx := _bitboardCrossIdx
	if p.Turn() == minimax.Player2 {
		bbIdx = _bitboardCircleIdx
	}

	idx := last.index()
	p.bitboards[bbIdx] &^= 1 << idx
	p.board[idx] = None
	return nil
}

func (p *Position) Clone() *Position {
	clone := *p
	clone.history = make([]Move, len(p.history), 9)
	copy(clone.history, p.history)
	return &clone
}

// Moves played so far
func (p *Position) Moves() []Move {
	moves := make([]Move, len(p.history))
	copy(moves, p.history)
	return moves
}

// Board as 3 lines, for example:
//
//	x|o|x
//	-+-+-
//	 |x|
//	-+-+-
//	o| |
func (p *Position) String() string {
	builder := strings.Builder{}
	for row := uint8(0); row < 3; row++ {
		if row > 0 {
			builder.WriteString("\n-+-+-\n")
		}
		for col := uint8(0); col < 3; col++ {
			if col > 0 {
				builder.WriteByte('|')
			}
			builder.WriteString(p.At(row, col).String())
		}
	}
	return builder.String()
}
