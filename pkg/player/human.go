package player

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Reads moves line by line. Input that doesn't parse, or isn't a legal move,
// is rejected and the player is asked again
type Human[T minimax.MoveLike, V any] struct {
	in     *bufio.Scanner
	out    io.Writer
	parse  func(string) (T, error)
	render func(minimax.GameState[T, V]) string
}

// Prompts are written to 'out', which may be io.Discard
func NewHuman[T minimax.MoveLike, V any](in io.Reader, out io.Writer, parse func(string) (T, error)) *Human[T, V] {
	return &Human[T, V]{
		in:    bufio.NewScanner(in),
		out:   out,
		parse: parse,
	}
}

// Print the position before asking for the move
func (h *Human[T, V]) SetRender(render func(minimax.GameState[T, V]) string) *Human[T, V] {
	h.render = render
	return h
}

// Returns the reader's error (io.EOF, if the input simply ended) when no move could be read
func (h *Human[T, V]) NextMove(state minimax.GameState[T, V]) (T, error) {
	var zero T
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return zero, ErrNoMoves
	}

	if h.render != nil {
		fmt.Fprintln(h.out, h.render(state))
	}

	for {
		fmt.Fprintf(h.out, "%v to move, legal moves: %v\n> ", state.Turn(), moves)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return zero, err
			}
			return zero, io.EOF
		}

		line := h.in.Text()
		move, err := h.parse(line)
		if err != nil {
			log.Debug().Err(err).Str("input", line).Msg("rejected input")
			fmt.Fprintln(h.out, err)
			continue
		}

		if !slices.Contains(moves, move) {
			log.Debug().Str("input", line).Msg("rejected illegal move")
			fmt.Fprintf(h.out, "%v is not a legal move\n", move)
			continue
		}

		return move, nil
	}
}
