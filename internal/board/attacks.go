package board

// IsSquareAttacked returns true if the square is attacked by any piece
// of the given color. Each candidate attacker is probed pseudo-legally
// in simulate mode, so castling is never evaluated during the probe.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	for from := A1; from <= H8; from++ {
		pc := p.squares[from]
		if pc.IsEmpty() || pc.Color != by {
			continue
		}
		if p.pseudoLegal(from, sq, true) {
			return true
		}
	}
	return false
}

// InCheck returns true if the given color's king is attacked by the
// opponent.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}
