package apperror

import "errors"

var (
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidColumn = errors.New("invalid column index")
	ErrGameFinished  = errors.New("game is already finished")
	ErrInputClosed   = errors.New("input closed")
	ErrUnknownAgent  = errors.New("unknown agent kind")
	ErrUnknownPiece  = errors.New("unknown piece")
)
