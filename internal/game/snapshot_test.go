package game

import (
	"testing"

	"github.com/michaelkrisper/gochess/internal/board"
	"github.com/michaelkrisper/gochess/internal/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewGame(chooseQueen)
	playMoves(t, g, [][2]board.Square{
		{board.E2, board.E4},
		{board.A7, board.A6},
		{board.E4, board.E5},
		{board.D7, board.D5},
	})

	restored, err := Restore(g.Snapshot(), chooseQueen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, restored.Snapshot(), g.Snapshot())
	testutil.AssertEqual(t, restored.SideToMove(), board.White)

	// The en-passant window survives the round trip: the same capture
	// is legal in both games and leads to identical states.
	res1 := playMoves(t, g, [][2]board.Square{{board.E5, board.D6}})
	res2 := playMoves(t, restored, [][2]board.Square{{board.E5, board.D6}})
	testutil.AssertTrue(t, res1.Info.EnPassant, "original game should capture en passant")
	testutil.AssertTrue(t, res2.Info.EnPassant, "restored game should capture en passant")
	testutil.AssertEqual(t, restored.Snapshot(), g.Snapshot())
}

func TestSnapshotRejectedMoveParity(t *testing.T) {
	g := NewGame(chooseQueen)
	playMoves(t, g, [][2]board.Square{{board.E2, board.E4}, {board.E7, board.E5}})

	restored, err := Restore(g.Snapshot(), chooseQueen)
	testutil.AssertNoError(t, err)

	_, err1 := g.Move(board.F1, board.B5)
	_, err2 := restored.Move(board.F1, board.B5)
	testutil.AssertNoError(t, err1)
	testutil.AssertNoError(t, err2)

	// The bishop on b5 pins the d7 pawn against the king.
	_, err1 = g.Move(board.D7, board.D6)
	_, err2 = restored.Move(board.D7, board.D6)
	testutil.AssertErrorIs(t, err1, board.ErrSelfCheck)
	testutil.AssertErrorIs(t, err2, board.ErrSelfCheck)
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	kings := func() []PieceState {
		return []PieceState{
			{Square: uint8(board.E1), Type: uint8(board.King), Color: uint8(board.White)},
			{Square: uint8(board.E8), Type: uint8(board.King), Color: uint8(board.Black)},
		}
	}

	cases := []struct {
		name string
		snap Snapshot
	}{
		{"MissingKing", Snapshot{
			Pieces: []PieceState{
				{Square: uint8(board.E1), Type: uint8(board.King), Color: uint8(board.White)},
			},
			EnPassant: uint8(board.NoSquare),
		}},
		{"SquareOccupiedTwice", Snapshot{
			Pieces: append(kings(), PieceState{
				Square: uint8(board.E1), Type: uint8(board.Rook), Color: uint8(board.White),
			}),
			EnPassant: uint8(board.NoSquare),
		}},
		{"InvalidSquare", Snapshot{
			Pieces: append(kings(), PieceState{
				Square: 99, Type: uint8(board.Rook), Color: uint8(board.White),
			}),
			EnPassant: uint8(board.NoSquare),
		}},
		{"InvalidPieceType", Snapshot{
			Pieces: append(kings(), PieceState{
				Square: uint8(board.A1), Type: 42, Color: uint8(board.White),
			}),
			EnPassant: uint8(board.NoSquare),
		}},
		{"InvalidSideToMove", Snapshot{
			Pieces:     kings(),
			SideToMove: 7,
			EnPassant:  uint8(board.NoSquare),
		}},
		{"EnPassantOnOccupiedSquare", Snapshot{
			Pieces:    kings(),
			EnPassant: uint8(board.E1),
		}},
		{"NegativeClock", Snapshot{
			Pieces:        kings(),
			EnPassant:     uint8(board.NoSquare),
			HalfMoveClock: -1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Restore(tc.snap, chooseQueen); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRestoreResetsRepetitionHistory(t *testing.T) {
	g := NewGame(chooseQueen)
	shuffle := [][2]board.Square{
		{board.G1, board.F3}, {board.G8, board.F6},
		{board.F3, board.G1}, {board.F6, board.G8},
	}
	playMoves(t, g, shuffle)

	// The start position has now occurred twice. Restoring forgets
	// that: the restored game needs two full recurrences of its own.
	restored, err := Restore(g.Snapshot(), chooseQueen)
	testutil.AssertNoError(t, err)

	res := playMoves(t, restored, shuffle)
	testutil.AssertEqual(t, res.Status, InProgress)

	res = playMoves(t, restored, shuffle)
	testutil.AssertEqual(t, res.Status, DrawByRepetition)
}
