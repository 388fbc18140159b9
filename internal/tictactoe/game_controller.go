package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
)

// Step applies a move for the seat on turn and returns the next state.
// On error the returned state is the one passed in.
func Step(state State, cell int) (State, error) {
	if state.Phase() == Finished {
		return state, apperror.ErrGameFinished
	}

	next := state
	if err := next.Board.Place(cell, next.ActivePiece()); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	if next.Phase() == AwaitingMove {
		next.Turn = state.Turn.Other()
	}

	return next, nil
}

// Play is Step for a move submitted by a specific seat.
func Play(state State, seat entity.Seat, cell int) (State, error) {
	if state.Phase() == Finished {
		return state, apperror.ErrGameFinished
	}

	if state.Turn != seat {
		return state, apperror.ErrNotYourTurn
	}

	return Step(state, cell)
}

// Observer is told about every move the controller applies or rejects.
type Observer interface {
	MoveApplied(ctx context.Context, state State, seat entity.Seat, cell int)
	MoveRejected(ctx context.Context, state State, seat entity.Seat, cell int, err error)
}

type noopObserver struct{}

func (noopObserver) MoveApplied(context.Context, State, entity.Seat, int)         {}
func (noopObserver) MoveRejected(context.Context, State, entity.Seat, int, error) {}

// Controller alternates the two seats until the game is finished.
type Controller struct {
	logger   *slog.Logger
	seats    [2]player.Source
	observer Observer
}

func NewController(logger *slog.Logger, seats [2]player.Source, observer Observer) *Controller {
	if observer == nil {
		observer = noopObserver{}
	}

	return &Controller{
		logger:   logger.With("component", "controller"),
		seats:    seats,
		observer: observer,
	}
}

// Run plays state to the end. It returns the last state reached together with
// any error that stopped the game early.
func (that *Controller) Run(ctx context.Context, state State) (State, error) {
	for state.Phase() == AwaitingMove {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		next, err := that.Turn(ctx, state)
		if err != nil {
			return state, err
		}

		state = next
	}

	that.logger.Info("game finished", "outcome", state.Outcome().String(), "moves", state.MoveCount())

	return state, nil
}

// Turn asks the seat on turn for a move until a legal one is applied.
// Rejected human moves do not consume the turn.
func (that *Controller) Turn(ctx context.Context, state State) (State, error) {
	log := that.logger.With("method", "Turn")

	if state.Phase() == Finished {
		return state, apperror.ErrGameFinished
	}

	seat := state.Turn
	source := that.seats[seat]

	for {
		cell, err := source.ChooseMove(ctx, state.Board, state.ActivePiece())
		if err != nil {
			return state, fmt.Errorf("seat %s failed to choose a move: %w", seat, err)
		}

		next, err := Play(state, seat, cell)
		if err == nil {
			log.Debug("move applied", "seat", seat.String(), "piece", state.ActivePiece().String(), "cell", cell)
			that.observer.MoveApplied(ctx, next, seat, cell)

			return next, nil
		}

		if source.Kind() != player.Human || !apperror.IsIllegalMove(err) {
			log.Error("move source broke its contract", "seat", seat.String(), "kind", source.Kind().String(), "cell", cell, "error", err)

			return state, fmt.Errorf("%w: seat %s chose cell %d: %w", apperror.ErrContractViolation, seat, cell, err)
		}

		log.Debug("move rejected", "seat", seat.String(), "cell", cell, "error", err)
		that.observer.MoveRejected(ctx, state, seat, cell, err)
	}
}
