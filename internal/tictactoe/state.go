package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Phase uint8

const (
	AwaitingMove Phase = iota
	Finished
)

func (that Phase) String() string {
	if that == Finished {
		return "finished"
	}
	return "awaiting move"
}

// State is the complete state of one game. It is a value: Step returns a new
// State and never modifies the one it was given.
type State struct {
	Board  entity.Board
	Pieces [2]entity.Cell
	Turn   entity.Seat
}

// NewState starts a game where SeatA holds pieceA. X always moves first.
func NewState(pieceA entity.Cell) (State, error) {
	if !pieceA.IsPiece() {
		return State{}, fmt.Errorf("%w: %s", apperror.ErrInvalidPiece, pieceA)
	}

	state := State{
		Pieces: [2]entity.Cell{pieceA, pieceA.Opponent()},
		Turn:   entity.SeatA,
	}
	if pieceA != entity.X {
		state.Turn = entity.SeatB
	}

	return state, nil
}

// Outcome evaluates the board.
func (that State) Outcome() entity.Outcome {
	return entity.Evaluate(that.Board)
}

func (that State) Phase() Phase {
	if that.Outcome().IsTerminal() {
		return Finished
	}
	return AwaitingMove
}

// Piece returns the piece held by seat.
func (that State) Piece(seat entity.Seat) entity.Cell {
	return that.Pieces[seat]
}

// ActivePiece returns the piece of the seat on turn.
func (that State) ActivePiece() entity.Cell {
	return that.Pieces[that.Turn]
}

// SeatOf returns the seat holding piece.
func (that State) SeatOf(piece entity.Cell) entity.Seat {
	if that.Pieces[entity.SeatB] == piece {
		return entity.SeatB
	}
	return entity.SeatA
}

// MoveCount returns the number of placed pieces.
func (that State) MoveCount() int {
	return entity.BoardSize - that.Board.Count(entity.Empty)
}

// Validate checks that the state could have been reached by legal play.
func (that State) Validate() error {
	a, b := that.Pieces[entity.SeatA], that.Pieces[entity.SeatB]
	if !a.IsPiece() || b != a.Opponent() {
		return fmt.Errorf("%w: seats hold %s and %s", apperror.ErrCorruptState, a, b)
	}

	if that.Turn != entity.SeatA && that.Turn != entity.SeatB {
		return fmt.Errorf("%w: unknown seat %d", apperror.ErrCorruptState, that.Turn)
	}

	for i, cell := range that.Board {
		if cell != entity.Empty && !cell.IsPiece() {
			return fmt.Errorf("%w: cell %d holds %d", apperror.ErrCorruptState, i, cell)
		}
	}

	xs, os := that.Board.Count(entity.X), that.Board.Count(entity.O)
	if xs != os && xs != os+1 {
		return fmt.Errorf("%w: %d X and %d O", apperror.ErrCorruptState, xs, os)
	}

	expected := entity.X
	if xs > os {
		expected = entity.O
	}
	if that.Phase() == AwaitingMove && that.ActivePiece() != expected {
		return fmt.Errorf("%w: %s on turn, expected %s", apperror.ErrCorruptState, that.ActivePiece(), expected)
	}

	return nil
}

// Snapshot converts the state into a storable game.
func (that State) Snapshot(id string) *entity.Game {
	return &entity.Game{
		ID:     id,
		Board:  that.Board,
		Pieces: that.Pieces,
		Turn:   that.Turn,
	}
}

// FromSnapshot restores and validates a stored game.
func FromSnapshot(game *entity.Game) (State, error) {
	state := State{
		Board:  game.Board,
		Pieces: game.Pieces,
		Turn:   game.Turn,
	}

	if err := state.Validate(); err != nil {
		return State{}, err
	}

	return state, nil
}
