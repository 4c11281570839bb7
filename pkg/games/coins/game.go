package coins

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Take the first (Left) or the last (Right) remaining coin
type Move bool

const (
	Left  Move = true
	Right Move = false
)

func (m Move) String() string {
	if m == Left {
		return "left"
	}
	return "right"
}

// Parse "l", "left", "r" or "right" (case insensitive)
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return Right, fmt.Errorf("coins: expected 'left' or 'right', got %q", s)
}

// Row of coins, each turn the mover takes the first or the last one
// and adds its value to his own score. Remaining coins are coins[start:end]
type Game struct {
	coins  []int
	start  int
	end    int
	scores minimax.ScorePair
	undo   []Move
}

var _ minimax.GameState[Move, minimax.ScorePair] = (*Game)(nil)

// The slice is copied, so the caller may reuse it
func NewGame(values []int) *Game {
	coins := make([]int, len(values))
	copy(coins, values)
	return &Game{
		coins: coins,
		start: 0,
		end:   len(coins),
		undo:  make([]Move, 0, len(coins)),
	}
}

func (g *Game) Turn() minimax.Turn {
	if len(g.undo)%2 == 0 {
		return minimax.Player1
	}
	return minimax.Player2
}

func (g *Game) History() int {
	return len(g.undo)
}

func (g *Game) LegalMoves() []Move {
	if g.start == g.end {
		return nil
	}
	return []Move{Left, Right}
}

func (g *Game) ApplyMove(m Move) error {
	if g.start == g.end {
		return fmt.Errorf("coins: take %v: %w", m, minimax.ErrTerminalState)
	}

	var value int
	if m == Left {
		value = g.coins[g.start]
		g.start++
	} else {
		value = g.coins[g.end-1]
		g.end--
	}

	g.scores[g.Turn()-1] += value
	g.undo = append(g.undo, m)
	return nil
}

func (g *Game) UndoMove() error {
	if len(g.undo) == 0 {
		return fmt.Errorf("coins: undo: %w", minimax.ErrEmptyHistory)
	}

	m := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]

	var value int
	if m == Left {
		g.start--
		value = g.coins[g.start]
	} else {
		g.end++
		value = g.coins[g.end-1]
	}

	// Turn is back to the player who took the coin
	g.scores[g.Turn()-1] -= value
	return nil
}

// Final scores, once no coins remain
func (g *Game) Value() (minimax.ScorePair, bool) {
	return g.scores, g.start == g.end
}

// Running scores of both players
func (g *Game) Scores() minimax.ScorePair {
	return g.scores
}

// Coins still on the table, in order
func (g *Game) Remaining() []int {
	remaining := make([]int, g.end-g.start)
	copy(remaining, g.coins[g.start:g.end])
	return remaining
}

// The coin values are never modified, so they can be shared
func (g *Game) Clone() *Game {
	clone := *g
	clone.undo = make([]Move, len(g.undo), cap(g.undo))
	copy(clone.undo, g.undo)
	return &clone
}

func (g *Game) String() string {
	return fmt.Sprintf("coins=%v scores=%v turn=%v", g.Remaining(), g.scores, g.Turn())
}

// Maximum amount the first player can collect, if both players play optimally
func FirstPlayerBest(values []int) int {
	result := minimax.Solve[Move, minimax.ScorePair](NewGame(values), minimax.ScorePairEvaluator{})
	return result.Value.Of(minimax.Player1)
}
