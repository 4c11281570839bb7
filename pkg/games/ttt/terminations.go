package ttt

import "github.com/IlikeChooros/go-minimax/pkg/minimax"

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "circle won"
	case TerminationCrossWon:
		return "cross won"
	case TerminationDraw:
		return "draw"
	}
	return "in progress"
}

const fullBoard uint16 = 0b111111111

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

func hasLine(bb uint16) bool {
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Evaluate the termination of the board, only the player who moved last can have a line,
// since the game stops right after the first one is completed
func (p *Position) Termination() Termination {
	crossbb := p.bitboards[_bitboardCrossIdx]
	circlebb := p.bitboards[_bitboardCircleIdx]

	if hasLine(crossbb) {
		return TerminationCrossWon
	}
	if hasLine(circlebb) {
		return TerminationCircleWon
	}
	if crossbb|circlebb == fullBoard {
		return TerminationDraw
	}
	return TerminationNone
}

func (p *Position) IsTerminated() bool {
	return p.Termination() != TerminationNone
}

// Terminal value from the cross (player 1) perspective
func (p *Position) Value() (minimax.Score, bool) {
	switch p.Termination() {
	case TerminationCrossWon:
		return minimax.Win1, true
	case TerminationCircleWon:
		return minimax.Win2, true
	case TerminationDraw:
		return minimax.Draw, true
	}
	return minimax.Draw, false
}
