package apperror

import "errors"

var (
	ErrOutOfRange        = errors.New("coordinate is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrInvalidMoveFormat = errors.New("move must be two integers: row column")
	ErrInputClosed       = errors.New("input closed before the game finished")
)

// IsRecoverable reports whether err is a rejected move the player can retry.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidMoveFormat)
}
