package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidWinLength = errors.New("win length must be between 1 and board size")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellEmpty        = errors.New("cell is empty")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidOpening   = errors.New("invalid opening move")
	ErrInvalidConfig    = errors.New("invalid config")
)
