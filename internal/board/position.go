package board

import "fmt"

// Position represents a complete chess position: the mailbox board plus
// the scalar state the rules depend on. It is owned by the game layer;
// rule queries receive it by reference and never retain a copy.
type Position struct {
	squares [64]Piece

	SideToMove Color

	// EnPassant is the capture target square set immediately after a
	// pawn double-step, valid for exactly one following move.
	// NoSquare if none.
	EnPassant Square

	// HalfMoveClock counts moves since the last capture or pawn move,
	// for the fifty-move rule.
	HalfMoveClock int
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	p := NewEmptyPosition()

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.Put(NewSquare(file, 0), NewPiece(backRank[file], White))
		p.Put(NewSquare(file, 1), NewPiece(Pawn, White))
		p.Put(NewSquare(file, 6), NewPiece(Pawn, Black))
		p.Put(NewSquare(file, 7), NewPiece(backRank[file], Black))
	}

	return p
}

// NewEmptyPosition creates a position with an empty board, White to
// move. Used by snapshot import and tests.
func NewEmptyPosition() *Position {
	p := &Position{
		SideToMove: White,
		EnPassant:  NoSquare,
	}
	for sq := A1; sq <= H8; sq++ {
		p.squares[sq] = NoPiece
	}
	return p
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.squares[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.squares[sq].IsEmpty()
}

// Put places a piece on a square, replacing any occupant.
func (p *Position) Put(sq Square, pc Piece) {
	p.squares[sq] = pc
}

// remove clears a square and returns its previous occupant.
func (p *Position) remove(sq Square) Piece {
	pc := p.squares[sq]
	p.squares[sq] = NoPiece
	return pc
}

// move transfers the occupant of from to to, returning any captured
// piece. Does not touch Moved flags or any scalar state.
func (p *Position) move(from, to Square) Piece {
	captured := p.squares[to]
	p.squares[to] = p.squares[from]
	p.squares[from] = NoPiece
	return captured
}

// KingSquare locates the king of the given color, or NoSquare if the
// board has none (only possible on hand-built test positions).
func (p *Position) KingSquare(c Color) Square {
	for sq := A1; sq <= H8; sq++ {
		pc := p.squares[sq]
		if pc.Type == King && pc.Color == c {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of pieces of the given type and color.
func (p *Position) Count(pt PieceType, c Color) int {
	n := 0
	for sq := A1; sq <= H8; sq++ {
		pc := p.squares[sq]
		if pc.Type == pt && pc.Color == c {
			n++
		}
	}
	return n
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			s += p.squares[NewSquare(file, rank)].String() + " "
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	return s
}
