package game

import "github.com/michaelkrisper/gochess/internal/board"

// Player identifies one side of the game. Name may be changed at any
// time; Color and Direction are fixed at creation and stable for the
// game's lifetime.
type Player struct {
	Name      string
	Color     board.Color
	Direction int // rank direction the player's pawns advance in
}

func newPlayers() [2]*Player {
	return [2]*Player{
		{Name: "White", Color: board.White, Direction: board.White.Direction()},
		{Name: "Black", Color: board.Black, Direction: board.Black.Direction()},
	}
}

// Player returns the player of the given color.
func (g *Game) Player(c board.Color) *Player {
	if c >= board.NoColor {
		return nil
	}
	return g.players[c]
}

// SetName renames the player of the given color.
func (g *Game) SetName(c board.Color, name string) {
	if p := g.Player(c); p != nil {
		p.Name = name
	}
}
