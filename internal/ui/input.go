package ui

import (
	"fmt"
	"strings"

	"github.com/michaelkrisper/gochess/internal/board"
)

// ParseMove parses a move entered as "e2 e4" or "e2e4" into a pair of
// squares.
func ParseMove(s string) (from, to board.Square, err error) {
	s = strings.ToLower(strings.TrimSpace(s))

	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return board.NoSquare, board.NoSquare, fmt.Errorf("cannot parse move %q", s)
	}

	from, err = board.ParseSquare(fields[0])
	if err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	to, err = board.ParseSquare(fields[1])
	if err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	return from, to, nil
}

// ParsePromotion maps a one-letter answer to a promotion piece type.
// Returns NoPieceType for anything else, which callers re-ask on.
func ParsePromotion(s string) board.PieceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "queen":
		return board.Queen
	case "r", "rook":
		return board.Rook
	case "b", "bishop":
		return board.Bishop
	case "n", "knight":
		return board.Knight
	default:
		return board.NoPieceType
	}
}
