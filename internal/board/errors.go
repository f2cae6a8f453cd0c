package board

import "errors"

// Move rejection errors. All are recoverable: the position is unchanged
// and the caller may retry with a different request.
var (
	ErrInvalidSquare = errors.New("square out of bounds")
	ErrNoPiece       = errors.New("no piece on origin square")
	ErrNotYourPiece  = errors.New("piece belongs to the opponent")
	ErrIllegalMove   = errors.New("move not allowed for this piece")
	ErrSelfCheck     = errors.New("move would leave own king in check")
)
