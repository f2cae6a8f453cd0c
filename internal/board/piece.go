package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// Direction returns the rank direction the color's pawns advance in:
// +1 for White, -1 for Black.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// IsPromotionChoice returns true if the type is a valid promotion
// replacement for a pawn.
func (pt PieceType) IsPromotionChoice() bool {
	switch pt {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Piece is an occupant of a board square. The zero value is the empty
// square. Moved gates the pawn double-step and castling eligibility; it
// is only consulted for pawns, rooks and kings but tracked uniformly.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

// NoPiece is the empty square occupant.
var NoPiece = Piece{Type: NoPieceType, Color: NoColor}

// NewPiece creates an unmoved piece of the given type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece{Type: pt, Color: c}
}

// IsEmpty returns true if the piece denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type >= NoPieceType
}

// String returns a one-letter code for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[int(p.Type)+int(p.Color)*6])
}

// GlyphSet selects how pieces are displayed. It is a construction-time
// configuration value, not a process-wide flag.
type GlyphSet uint8

const (
	// SymbolGlyphs renders pieces as Unicode chess symbols.
	SymbolGlyphs GlyphSet = iota
	// LetterGlyphs renders pieces as single letters.
	LetterGlyphs
)

var (
	symbolGlyphs = [6]string{"♟", "♞", "♝", "♜", "♛", "♚"}
	letterGlyphs = [6]string{"B", "S", "L", "T", "D", "K"}
)

// Glyph returns the display glyph for the piece under the given set.
func (p Piece) Glyph(gs GlyphSet) string {
	if p.IsEmpty() {
		return " "
	}
	if gs == LetterGlyphs {
		return letterGlyphs[p.Type]
	}
	return symbolGlyphs[p.Type]
}
