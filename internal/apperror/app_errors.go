package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidPiece      = errors.New("invalid piece")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrContractViolation = errors.New("move source proposed an illegal move")
	ErrCorruptState      = errors.New("game state is inconsistent")
	ErrQuit              = errors.New("player quit the game")
)

// IsIllegalMove reports whether err is a recoverable illegal move attempt.
func IsIllegalMove(err error) bool {
	return errors.Is(err, ErrInvalidCell) || errors.Is(err, ErrCellOccupied)
}
