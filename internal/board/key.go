package board

import "github.com/cespare/xxhash/v2"

// Key returns the canonical position hash used for repetition
// detection: the 64 square occupants, the side to move and the
// en-passant target. Castling rights are not part of the key, so two
// positions differing only in castling eligibility hash the same.
func (p *Position) Key() uint64 {
	var buf [66]byte
	for sq := A1; sq <= H8; sq++ {
		pc := p.squares[sq]
		if pc.IsEmpty() {
			buf[sq] = 12
		} else {
			buf[sq] = byte(int(pc.Type) + int(pc.Color)*6)
		}
	}
	buf[64] = byte(p.SideToMove)
	buf[65] = byte(p.EnPassant)
	return xxhash.Sum64(buf[:])
}
