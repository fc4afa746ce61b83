package grid

import "errors"

var (
	// Board dimensions or a cell value are not valid for a 2048 board
	ErrInvalidBoardState = errors.New("invalid board state")

	// NewTile was called on a full board, a caller contract violation
	ErrNoEmptyCell = errors.New("no empty cell")

	// No direction changes the board, the normal end of a game
	ErrNoLegalMoves = errors.New("no legal moves")
)
