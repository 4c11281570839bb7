package ttt

import (
	"fmt"
	"strconv"
	"strings"
)

type Piece uint8

const (
	None   Piece = 0
	Cross  Piece = 1
	Circle Piece = 2
)

func (p Piece) String() string {
	switch p {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return " "
}

// Cell coordinates, both in range [0, 2]
type Move struct {
	Row uint8
	Col uint8
}

func (m Move) index() uint8 {
	return m.Row*3 + m.Col
}

func (m Move) valid() bool {
	return m.Row < 3 && m.Col < 3
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}

func moveFromIndex(idx uint8) Move {
	return Move{Row: idx / 3, Col: idx % 3}
}

// Parse move in "<row> <col>" format, both 0-based
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("ttt: expected '<row> <col>', got %q", s)
	}

	var coords [2]uint8
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return Move{}, fmt.Errorf("ttt: invalid coordinate %q: %w", field, err)
		}
		coords[i] = uint8(v)
	}

	m := Move{Row: coords[0], Col: coords[1]}
	if !m.valid() {
		return Move{}, fmt.Errorf("ttt: move %q is off the board", s)
	}
	return m, nil
}
