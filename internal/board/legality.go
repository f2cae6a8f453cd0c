package board

// PromotionFunc supplies the replacement piece type when a pawn reaches
// the last rank. It is called synchronously and re-asked until it
// returns one of Queen, Rook, Bishop or Knight.
type PromotionFunc func() PieceType

// MoveInfo describes a committed move.
type MoveInfo struct {
	Captured  bool
	PawnMove  bool
	Castled   bool
	EnPassant bool
	Promoted  PieceType // NoPieceType unless the move promoted
}

// ApplyIfLegal validates and commits a move for the side to move. On
// any rejection the position is left exactly as it was. choose must be
// non-nil; it is only consulted when the move promotes.
func (p *Position) ApplyIfLegal(from, to Square, choose PromotionFunc) (MoveInfo, error) {
	info := MoveInfo{Promoted: NoPieceType}

	if !from.IsValid() || !to.IsValid() {
		return info, ErrInvalidSquare
	}

	pc := p.squares[from]
	if pc.IsEmpty() {
		return info, ErrNoPiece
	}
	if pc.Color != p.SideToMove {
		return info, ErrNotYourPiece
	}

	if !p.pseudoLegal(from, to, false) {
		return info, ErrIllegalMove
	}
	if p.wouldLeaveKingInCheck(from, to) {
		return info, ErrSelfCheck
	}

	info.PawnMove = pc.Type == Pawn

	// En passant removes the pawn beside the origin, not the one on
	// the destination (which is empty).
	if pc.Type == Pawn && to == p.EnPassant && p.squares[to].IsEmpty() {
		p.remove(NewSquare(to.File(), from.Rank()))
		info.Captured = true
		info.EnPassant = true
	}

	if captured := p.move(from, to); !captured.IsEmpty() {
		info.Captured = true
	}
	pc.Moved = true
	p.squares[to] = pc

	// Castling: relocate the rook beside the king's new square.
	if pc.Type == King && absInt(to.File()-from.File()) == 2 {
		rookFrom := NewSquare(0, from.Rank())
		rookTo := NewSquare(3, from.Rank())
		if to.File() > from.File() {
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		}
		rook := p.squares[rookFrom]
		p.move(rookFrom, rookTo)
		rook.Moved = true
		p.squares[rookTo] = rook
		info.Castled = true
	}

	// The en-passant target is valid for exactly one move.
	p.EnPassant = NoSquare
	if pc.Type == Pawn && absInt(to.Rank()-from.Rank()) == 2 {
		p.EnPassant = from.Offset(0, pc.Color.Direction())
	}

	// Promotion: replace the pawn with the chosen piece. The choice is
	// a closed enumeration, so an invalid answer is re-requested.
	if pc.Type == Pawn && to.RelativeRank(pc.Color) == 7 {
		kind := choose()
		for !kind.IsPromotionChoice() {
			kind = choose()
		}
		p.squares[to] = Piece{Type: kind, Color: pc.Color, Moved: true}
		info.Promoted = kind
	}

	if info.PawnMove || info.Captured {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	p.SideToMove = p.SideToMove.Other()

	return info, nil
}

// wouldLeaveKingInCheck simulates the move and tests whether the
// mover's own king ends up attacked. The simulation is reverted on
// every path, including the en-passant victim removal.
func (p *Position) wouldLeaveKingInCheck(from, to Square) bool {
	pc := p.squares[from]

	victimSq := NoSquare
	var victim Piece
	if pc.Type == Pawn && to == p.EnPassant && p.squares[to].IsEmpty() {
		victimSq = NewSquare(to.File(), from.Rank())
		victim = p.remove(victimSq)
	}

	captured := p.move(from, to)
	inCheck := p.InCheck(pc.Color)

	p.squares[from] = pc
	p.squares[to] = captured
	if victimSq != NoSquare {
		p.squares[victimSq] = victim
	}

	return inCheck
}

// HasAnyLegalMove reports whether the given color has at least one
// legal move. Candidate moves are probed in simulate mode and run
// through the same simulate-and-revert king-safety test; the scan
// short-circuits on the first hit. Castling being excluded by simulate
// mode loses nothing: whenever castling is legal, the plain king step
// onto the passed square is legal too.
func (p *Position) HasAnyLegalMove(c Color) bool {
	for from := A1; from <= H8; from++ {
		if pc := p.squares[from]; pc.IsEmpty() || pc.Color != c {
			continue
		}
		for to := A1; to <= H8; to++ {
			if p.pseudoLegal(from, to, true) && !p.wouldLeaveKingInCheck(from, to) {
				return true
			}
		}
	}
	return false
}
