// Package game implements the turn-sequencing state machine on top of
// the board rules: it applies requested moves, tracks draw counters and
// classifies check, checkmate, stalemate and the draw conditions.
package game

import (
	"errors"

	"github.com/michaelkrisper/gochess/internal/board"
)

// ErrGameOver rejects move requests once a terminal status is reached.
var ErrGameOver = errors.New("game is over")

// Status is the game state machine's current state.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

// Terminal returns true if no further moves are accepted.
func (s Status) Terminal() bool {
	return s != InProgress
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by threefold repetition"
	case DrawByFiftyMove:
		return "draw by fifty-move rule"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// Game holds the authoritative position and sequences turns. One move
// is fully validated, applied and classified before the next is
// accepted; the only blocking operation is the promotion callback.
type Game struct {
	pos     *board.Position
	players [2]*Player
	promote board.PromotionFunc

	status Status
	winner board.Color

	// seen maps canonical position keys to occurrence counts for the
	// threefold repetition rule. Grows until the game ends.
	seen map[uint64]int
}

// NewGame creates a game in the standard starting position. promote is
// consulted synchronously whenever a pawn reaches the last rank and
// must not be nil.
func NewGame(promote board.PromotionFunc) *Game {
	g := &Game{
		pos:     board.NewPosition(),
		players: newPlayers(),
		promote: promote,
		winner:  board.NoColor,
		seen:    make(map[uint64]int),
	}
	g.classify()
	return g
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Info   board.MoveInfo
	Check  bool // opponent is now in check
	Status Status
}

// Move requests the move from from to to for the side to move. On
// rejection the game state is unchanged and the error is one of the
// board sentinel errors or ErrGameOver.
func (g *Game) Move(from, to board.Square) (MoveResult, error) {
	if g.status.Terminal() {
		return MoveResult{Status: g.status}, ErrGameOver
	}

	info, err := g.pos.ApplyIfLegal(from, to, g.promote)
	if err != nil {
		return MoveResult{Status: g.status}, err
	}

	g.classify()

	res := MoveResult{Info: info, Status: g.status}
	res.Check = g.pos.InCheck(g.pos.SideToMove)
	return res, nil
}

// classify records the current position and resolves the state machine
// for the side to move: repetition, fifty-move rule, insufficient
// material, then checkmate or stalemate if no legal move exists.
func (g *Game) classify() {
	key := g.pos.Key()
	g.seen[key]++

	switch {
	case g.seen[key] >= 3:
		g.status = DrawByRepetition
	case g.pos.HalfMoveClock >= 100:
		g.status = DrawByFiftyMove
	case g.insufficientMaterial():
		g.status = DrawByInsufficientMaterial
	case !g.pos.HasAnyLegalMove(g.pos.SideToMove):
		if g.pos.InCheck(g.pos.SideToMove) {
			g.status = Checkmate
			g.winner = g.pos.SideToMove.Other()
		} else {
			g.status = Stalemate
		}
	default:
		g.status = InProgress
	}
}

// insufficientMaterial returns true when no pawn, rook or queen is on
// the board and fewer than two minor pieces remain in total.
func (g *Game) insufficientMaterial() bool {
	for _, c := range [2]board.Color{board.White, board.Black} {
		if g.pos.Count(board.Pawn, c) > 0 ||
			g.pos.Count(board.Rook, c) > 0 ||
			g.pos.Count(board.Queen, c) > 0 {
			return false
		}
	}

	minors := g.pos.Count(board.Knight, board.White) +
		g.pos.Count(board.Bishop, board.White) +
		g.pos.Count(board.Knight, board.Black) +
		g.pos.Count(board.Bishop, board.Black)
	return minors < 2
}

// Status returns the current state machine state.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning player after checkmate, nil otherwise.
func (g *Game) Winner() *Player {
	if g.status != Checkmate {
		return nil
	}
	return g.players[g.winner]
}

// SideToMove returns the color whose move is requested next.
func (g *Game) SideToMove() board.Color {
	return g.pos.SideToMove
}

// InCheck returns true if the side to move is currently in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck(g.pos.SideToMove)
}

// PieceAt exposes the square occupant for rendering. The returned
// piece is a copy.
func (g *Game) PieceAt(sq board.Square) board.Piece {
	return g.pos.PieceAt(sq)
}

// HalfMoveClock returns the fifty-move rule counter.
func (g *Game) HalfMoveClock() int {
	return g.pos.HalfMoveClock
}
