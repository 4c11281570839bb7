package ghost

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var ErrUnsorted = errors.New("ghost: dictionary is not sorted")

// Single lowercase letter appended to the word
type Move byte

func (m Move) String() string {
	return string(rune(m))
}

// Parse a single letter 'a'-'z', surrounding whitespace is ignored
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || !isLetter(s[0]) {
		return 0, fmt.Errorf("ghost: expected a single letter a-z, got %q", s)
	}
	return Move(s[0]), nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if !isLetter(w[i]) {
			return false
		}
	}
	return true
}

// Players take turns appending a letter to the word. A player loses if after his move
// the word is in the dictionary, or no dictionary word starts with it.
//
// Words still consistent with the current word are words[lo:hi+1], the range is narrowed
// with 2 binary searches per move, and the previous bounds are kept on the undo stack,
// since they can't be recomputed from the narrowed range.
type Game struct {
	words []string
	lo    int
	hi    int
	word  []byte
	undo  [][2]int
}

var _ minimax.GameState[Move, minimax.Score] = (*Game)(nil)

// Words with characters outside 'a'-'z' are skipped, the rest must be sorted
// by byte value (not locale-aware), otherwise ErrUnsorted is returned.
// Filtering out one letter words is up to the caller
func NewGame(dictionary []string) (*Game, error) {
	words := make([]string, 0, len(dictionary))
	for _, w := range dictionary {
		if isWord(w) {
			words = append(words, w)
		}
	}

	if !slices.IsSorted(words) {
		return nil, ErrUnsorted
	}

	return &Game{
		words: words,
		lo:    0,
		hi:    len(words) - 1,
		word:  make([]byte, 0, 16),
		undo:  make([][2]int, 0, 16),
	}, nil
}

// Index of the first word in [from, to], which has a letter >= c at the current position
func (g *Game) lowerBound(c byte, from, to int) int {
	n := len(g.word)
	for from <= to {
		mid := from + (to-from)/2
		if w := g.words[mid]; len(w) <= n || w[n] < c {
			from = mid + 1
		} else {
			to = mid - 1
		}
	}
	return from
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

// Current word
func (g *Game) Word() string {
	return string(g.word)
}

// Dictionary words which start with the current word
func (g *Game) Remaining() []string {
	if g.lo > g.hi {
		return nil
	}
	return slices.Clone(g.words[g.lo : g.hi+1])
}

// There are no draws, the player to move wins once the previous move
// completed a word or left no word possible
func (g *Game) Value() (minimax.Score, bool) {
	if g.lo > g.hi || g.words[g.lo] == string(g.word) {
		if g.Turn() == minimax.Player1 {
			return minimax.Win1, true
		}
		return minimax.Win2, true
	}
	return minimax.Draw, false
}

// Every letter that continues at least one dictionary word, in alphabetical order
func (g *Game) LegalMoves() []Move {
	if _, terminal := g.Value(); terminal {
		return nil
	}

	var seen [26]bool
	n := len(g.word)
	for i := g.lo; i <= g.hi; i++ {
		if len(g.words[i]) > n {
			seen[g.words[i][n]-'a'] = true
		}
	}

	moves := make([]Move, 0, 4)
	for i, ok := range seen {
		if ok {
			moves = append(moves, Move('a'+i))
		}
	}
	return moves
}

func (g *Game) ApplyMove(m Move) error {
	if _, terminal := g.Value(); terminal {
		return fmt.Errorf("ghost: letter %v: %w", m, minimax.ErrTerminalState)
	}

	c := byte(m)
	if !isLetter(c) {
		return fmt.Errorf("ghost: %q is not a letter: %w", c, minimax.ErrIllegalMove)
	}

	lower := g.lowerBound(c, g.lo, g.hi)
	upper := g.lowerBound(c+1, g.lo, g.hi)
	if lower >= upper {
		return fmt.Errorf("ghost: no word starts with %q: %w", g.Word()+m.String(), minimax.ErrIllegalMove)
	}

	g.undo = append(g.undo, [2]int{g.lo, g.hi})
	g.lo, g.hi = lower, upper-1
	g.word = append(g.word, c)
	return nil
}

func (g *Game) UndoMove() error {
	if len(g.undo) == 0 {
		return fmt.Errorf("ghost: undo: %w", minimax.ErrEmptyHistory)
	}

	bounds := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	g.lo, g.hi = bounds[0], bounds[1]
	g.word = g.word[:len(g.word)-1]
	return nil
}

// The dictionary is shared, it is never modified
func (g *Game) Clone() *Game {
	clone := *g
	clone.word = slices.Clone(g.word)
	clone.undo = slices.Clone(g.undo)
	return &clone
}

func (g *Game) String() string {
	return fmt.Sprintf("word=%q turn=%v remaining=%d", g.Word(), g.Turn(), max(0, g.hi-g.lo+1))
}

// Legal moves, after which the game goes on (the mover doesn't lose immediately)
func SafeMoves(g minimax.GameState[Move, minimax.Score]) []Move {
	moves := g.LegalMoves()
	safe := make([]Move, 0, len(moves))
	for _, m := range moves {
		if err := g.ApplyMove(m); err != nil {
			continue
		}
		if _, terminal := g.Value(); !terminal {
			safe = append(safe, m)
		}
		_ = g.UndoMove()
	}
	return safe
}
