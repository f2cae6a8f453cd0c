// Package ui renders the board to a terminal and parses move input. It
// contains no rules logic.
package ui

import (
	"strings"

	"github.com/michaelkrisper/gochess/internal/board"
	"github.com/michaelkrisper/gochess/internal/game"
)

const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiBlue    = "\x1b[34m"
	ansiWhiteBG = "\x1b[47m"
)

// Renderer draws a game's board as text. Glyphs and color output are
// configured at construction.
type Renderer struct {
	glyphs board.GlyphSet
	color  bool
}

// NewRenderer creates a renderer. With color set, pieces are tinted and
// dark squares get a contrasting background via ANSI escapes.
func NewRenderer(glyphs board.GlyphSet, color bool) *Renderer {
	return &Renderer{glyphs: glyphs, color: color}
}

// Render returns the board with rank 8 at the top.
func (r *Renderer) Render(g *game.Game) string {
	var b strings.Builder

	b.WriteString("    a  b  c  d  e  f  g  h\n")
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(' ')
		b.WriteByte(byte('1' + rank))
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			b.WriteString(r.tile(sq, g.PieceAt(sq)))
		}
		if r.color {
			b.WriteString(ansiReset)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) tile(sq board.Square, pc board.Piece) string {
	glyph := pc.Glyph(r.glyphs)
	if !r.color {
		return " " + glyph + " "
	}

	var b strings.Builder
	b.WriteString(ansiReset)
	if (sq.Rank()+sq.File())%2 == 0 {
		b.WriteString(ansiWhiteBG)
	}
	b.WriteByte(' ')
	if !pc.IsEmpty() {
		if pc.Color == board.Black {
			b.WriteString(ansiRed)
		} else {
			b.WriteString(ansiBlue)
		}
	}
	b.WriteString(glyph)
	b.WriteString(ansiReset)
	if (sq.Rank()+sq.File())%2 == 0 {
		b.WriteString(ansiWhiteBG)
	}
	b.WriteByte(' ')
	b.WriteString(ansiReset)
	return b.String()
}
