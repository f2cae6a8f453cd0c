package game

import (
	"fmt"

	"github.com/michaelkrisper/gochess/internal/board"
)

// Snapshot is the opaque export of a game for persistence: the board
// occupants plus the scalar fields legality depends on. Importing a
// snapshot reproduces identical legality decisions; the repetition
// history is reset on import.
type Snapshot struct {
	Pieces        []PieceState `json:"pieces"`
	SideToMove    uint8        `json:"side_to_move"`
	EnPassant     uint8        `json:"en_passant"`
	HalfMoveClock int          `json:"half_move_clock"`
}

// PieceState is one occupied square in a Snapshot.
type PieceState struct {
	Square uint8 `json:"square"`
	Type   uint8 `json:"type"`
	Color  uint8 `json:"color"`
	Moved  bool  `json:"moved"`
}

// Snapshot exports the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		SideToMove:    uint8(g.pos.SideToMove),
		EnPassant:     uint8(g.pos.EnPassant),
		HalfMoveClock: g.pos.HalfMoveClock,
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		pc := g.pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		snap.Pieces = append(snap.Pieces, PieceState{
			Square: uint8(sq),
			Type:   uint8(pc.Type),
			Color:  uint8(pc.Color),
			Moved:  pc.Moved,
		})
	}
	return snap
}

// Restore builds a game from a previously exported snapshot. promote
// must not be nil. The snapshot is validated before any state is built;
// a malformed snapshot is rejected without side effects.
func Restore(snap Snapshot, promote board.PromotionFunc) (*Game, error) {
	pos := board.NewEmptyPosition()

	for _, ps := range snap.Pieces {
		sq := board.Square(ps.Square)
		if !sq.IsValid() {
			return nil, fmt.Errorf("snapshot: invalid square %d", ps.Square)
		}
		if !pos.IsEmpty(sq) {
			return nil, fmt.Errorf("snapshot: square %s occupied twice", sq)
		}
		if board.PieceType(ps.Type) >= board.NoPieceType {
			return nil, fmt.Errorf("snapshot: invalid piece type %d", ps.Type)
		}
		if board.Color(ps.Color) >= board.NoColor {
			return nil, fmt.Errorf("snapshot: invalid color %d", ps.Color)
		}
		pos.Put(sq, board.Piece{
			Type:  board.PieceType(ps.Type),
			Color: board.Color(ps.Color),
			Moved: ps.Moved,
		})
	}

	for _, c := range [2]board.Color{board.White, board.Black} {
		if pos.KingSquare(c) == board.NoSquare {
			return nil, fmt.Errorf("snapshot: %s has no king", c)
		}
	}

	if board.Color(snap.SideToMove) >= board.NoColor {
		return nil, fmt.Errorf("snapshot: invalid side to move %d", snap.SideToMove)
	}
	pos.SideToMove = board.Color(snap.SideToMove)

	ep := board.Square(snap.EnPassant)
	if ep != board.NoSquare {
		if !ep.IsValid() || !pos.IsEmpty(ep) {
			return nil, fmt.Errorf("snapshot: invalid en passant target %d", snap.EnPassant)
		}
	}
	pos.EnPassant = ep

	if snap.HalfMoveClock < 0 {
		return nil, fmt.Errorf("snapshot: negative half-move clock")
	}
	pos.HalfMoveClock = snap.HalfMoveClock

	g := &Game{
		pos:     pos,
		players: newPlayers(),
		promote: promote,
		winner:  board.NoColor,
		seen:    make(map[uint64]int),
	}
	g.classify()
	return g, nil
}
