package board

import "testing"

func TestNewPositionSetup(t *testing.T) {
	p := NewPosition()

	if p.SideToMove != White {
		t.Error("white moves first")
	}
	if p.EnPassant != NoSquare {
		t.Error("no en-passant target at the start")
	}
	if got := p.KingSquare(White); got != E1 {
		t.Errorf("white king on %s, want e1", got)
	}
	if got := p.KingSquare(Black); got != E8 {
		t.Errorf("black king on %s, want e8", got)
	}
	if got := p.Count(Pawn, White); got != 8 {
		t.Errorf("%d white pawns, want 8", got)
	}
	for _, sq := range []Square{A1, H1, A8, H8} {
		if pc := p.PieceAt(sq); pc.Type != Rook {
			t.Errorf("%s holds %v, want rook", sq, pc)
		}
	}
	for sq := A3; sq <= H6; sq++ {
		if !p.IsEmpty(sq) {
			t.Errorf("%s should be empty", sq)
		}
	}
}

func TestKey(t *testing.T) {
	if NewPosition().Key() != NewPosition().Key() {
		t.Error("identical positions must hash identically")
	}

	p := NewPosition()
	base := p.Key()

	p.SideToMove = Black
	if p.Key() == base {
		t.Error("side to move must be part of the key")
	}
	p.SideToMove = White

	p.EnPassant = E3
	if p.Key() == base {
		t.Error("en-passant target must be part of the key")
	}
	p.EnPassant = NoSquare

	// Moved flags (and with them castling eligibility) are not hashed:
	// positions that repeat after pieces have shuttled back still match.
	p.Put(H1, Piece{Type: Rook, Color: White, Moved: true})
	if p.Key() != base {
		t.Error("moved flags must not change the key")
	}

	p.HalfMoveClock = 42
	if p.Key() != base {
		t.Error("the half-move clock must not change the key")
	}
}
