package board

type delta struct{ df, dr int }

var (
	knightDeltas = [8]delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	rookDeltas   = [4]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDeltas = [4]delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// pseudoLegal reports whether moving from from to to obeys the piece's
// movement geometry and blocking rules, ignoring whether the move would
// leave the mover's own king in check.
//
// With simulate set, castling is not considered a king move. Attack
// probing always runs in simulate mode, which breaks the mutual
// recursion between castling eligibility and attack detection.
func (p *Position) pseudoLegal(from, to Square, simulate bool) bool {
	if from == to {
		return false
	}

	pc := p.squares[from]
	if pc.IsEmpty() {
		return false
	}

	target := p.squares[to]
	if !target.IsEmpty() && target.Color == pc.Color {
		return false
	}

	switch pc.Type {
	case Pawn:
		return p.pawnReaches(pc, from, to)
	case Knight:
		for _, d := range knightDeltas {
			if from.Offset(d.df, d.dr) == to {
				return true
			}
		}
		return false
	case Bishop:
		return p.rayReaches(from, to, bishopDeltas)
	case Rook:
		return p.rayReaches(from, to, rookDeltas)
	case Queen:
		return p.rayReaches(from, to, rookDeltas) || p.rayReaches(from, to, bishopDeltas)
	case King:
		df := absInt(to.File() - from.File())
		dr := absInt(to.Rank() - from.Rank())
		if df <= 1 && dr <= 1 {
			return true
		}
		if !simulate && dr == 0 && df == 2 {
			return p.castlingLegal(pc, from, to)
		}
		return false
	default:
		return false
	}
}

// rayReaches walks each ray outward from from until blocked. The scan
// stops at the first occupied square: reaching to exactly there is a
// capture (the own-color case was excluded by the caller), any occupied
// square strictly before to kills the ray.
func (p *Position) rayReaches(from, to Square, rays [4]delta) bool {
	for _, d := range rays {
		for i := 1; i < 8; i++ {
			sq := from.Offset(d.df*i, d.dr*i)
			if sq == NoSquare {
				break
			}
			if sq == to {
				return true
			}
			if !p.squares[sq].IsEmpty() {
				break
			}
		}
	}
	return false
}

// pawnReaches checks the four disjoint pawn cases: single step, double
// step from the start rank, diagonal capture and en passant.
func (p *Position) pawnReaches(pc Piece, from, to Square) bool {
	dir := pc.Color.Direction()
	target := p.squares[to]

	// Single forward step to an empty square.
	if to == from.Offset(0, dir) && target.IsEmpty() {
		return true
	}

	// Double step: pawn unmoved, destination and the square stepped
	// over both empty.
	if !pc.Moved && to == from.Offset(0, 2*dir) && target.IsEmpty() {
		if mid := from.Offset(0, dir); mid != NoSquare && p.squares[mid].IsEmpty() {
			return true
		}
	}

	// Diagonal forward, one square to either side.
	if to == from.Offset(-1, dir) || to == from.Offset(1, dir) {
		if !target.IsEmpty() && target.Color != pc.Color {
			return true
		}
		// En passant: the target square is empty, the captured pawn
		// stands beside the origin.
		if to == p.EnPassant && target.IsEmpty() {
			return true
		}
	}

	return false
}

// castlingLegal checks castling eligibility for a king two-step toward
// the given destination: king and rook unmoved, the squares strictly
// between them empty, and the king neither in check nor passing through
// or landing on an attacked square.
func (p *Position) castlingLegal(king Piece, from, to Square) bool {
	if king.Moved {
		return false
	}

	step := 1
	rookFrom := NewSquare(7, from.Rank())
	if to.File() < from.File() {
		step = -1
		rookFrom = NewSquare(0, from.Rank())
	}

	rook := p.squares[rookFrom]
	if rook.Type != Rook || rook.Color != king.Color || rook.Moved {
		return false
	}

	for f := from.File() + step; f != rookFrom.File(); f += step {
		if !p.squares[NewSquare(f, from.Rank())].IsEmpty() {
			return false
		}
	}

	them := king.Color.Other()
	passed := from.Offset(step, 0)
	if p.IsSquareAttacked(from, them) ||
		p.IsSquareAttacked(passed, them) ||
		p.IsSquareAttacked(to, them) {
		return false
	}

	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
