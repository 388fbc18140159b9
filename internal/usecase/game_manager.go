package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrUnknownMode = errors.New("unknown game mode")

type Mode uint8

const (
	// Computer is a human against the computer.
	Computer Mode = iota
	// Human is two humans sharing the console.
	Human
	// Auto is the computer playing itself.
	Auto
)

func (that Mode) String() string {
	switch that {
	case Computer:
		return "computer"
	case Human:
		return "human"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("mode(%d)", uint8(that))
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(name string) (Mode, error) {
	for _, mode := range []Mode{Computer, Human, Auto} {
		if mode.String() == name {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Session identifies one game and how its seats are filled.
type Session struct {
	ID   string
	Mode Mode
	// HumanFirst gives the human X in Computer mode.
	HumanFirst bool
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Presenter shows the progress of a game to the players.
type Presenter interface {
	ShowResumed(id string)
	ShowBoard(board entity.Board)
	ShowMove(piece entity.Cell, kind player.Kind, cell int)
	ShowRejected(cell int, err error)
	ShowOutcome(outcome entity.Outcome)
}

type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	presenter Presenter
	input     player.InputReader
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, presenter Presenter, input player.InputReader) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		presenter: presenter,
		input:     input,
	}
}

// Seats returns the move sources for both seats and the piece held by SeatA.
func Seats(session Session, input player.InputReader) ([2]player.Source, entity.Cell, error) {
	switch session.Mode {
	case Computer:
		pieceA := entity.O
		if session.HumanFirst {
			pieceA = entity.X
		}

		return [2]player.Source{player.NewHuman(input), player.NewHeuristic()}, pieceA, nil
	case Human:
		return [2]player.Source{player.NewHuman(input), player.NewHuman(input)}, entity.X, nil
	case Auto:
		return [2]player.Source{player.NewHeuristic(), player.NewHeuristic()}, entity.X, nil
	default:
		return [2]player.Source{}, entity.Empty, fmt.Errorf("%w: %s", ErrUnknownMode, session.Mode)
	}
}

// Play runs the session's game to the end, resuming a stored snapshot when
// there is one. The snapshot is kept when the game stops early and deleted
// once it is finished.
func (that *GameManager) Play(ctx context.Context, session Session) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "session", session.ID, "mode", session.Mode.String())

	seats, pieceA, err := Seats(session, that.input)
	if err != nil {
		return entity.Outcome{}, err
	}

	state, err := that.getOrCreateState(ctx, session.ID, pieceA)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to get game: %w", err)
	}

	that.presenter.ShowBoard(state.Board)

	observer := &sessionObserver{
		logger:    log,
		sessionID: session.ID,
		seats:     seats,
		gameRepo:  that.gameRepo,
		presenter: that.presenter,
	}

	controller := tictactoe.NewController(that.logger, seats, observer)

	final, err := controller.Run(ctx, state)
	if err != nil {
		log.Info("game stopped", "moves", final.MoveCount(), "error", err)

		return entity.Outcome{}, fmt.Errorf("failed to play game: %w", err)
	}

	that.deleteGame(ctx, session.ID)

	outcome := final.Outcome()
	that.presenter.ShowOutcome(outcome)

	log.Info("game over", "outcome", outcome.String())

	return outcome, nil
}

func (that *GameManager) getOrCreateState(ctx context.Context, id string, pieceA entity.Cell) (tictactoe.State, error) {
	log := that.logger.With("method", "getOrCreateState", "session", id)

	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return tictactoe.NewState(pieceA)
	}

	if err != nil {
		return tictactoe.State{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	state, err := restoreState(game, pieceA)
	if err != nil {
		log.Warn("discarding stored game", "error", err)
		that.deleteGame(ctx, id)

		return tictactoe.NewState(pieceA)
	}

	log.Info("game resumed", "moves", state.MoveCount())
	that.presenter.ShowResumed(id)

	return state, nil
}

func restoreState(game *entity.Game, pieceA entity.Cell) (tictactoe.State, error) {
	state, err := tictactoe.FromSnapshot(game)
	if err != nil {
		return tictactoe.State{}, err
	}

	if state.Piece(entity.SeatA) != pieceA {
		return tictactoe.State{}, fmt.Errorf("stored game gives seat A %s, session wants %s", state.Piece(entity.SeatA), pieceA)
	}

	if state.Phase() == tictactoe.Finished {
		return tictactoe.State{}, fmt.Errorf("stored game is already finished: %s", state.Outcome())
	}

	return state, nil
}

func (that *GameManager) deleteGame(ctx context.Context, id string) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}

// sessionObserver saves a snapshot after every move and reports it to the
// presenter.
type sessionObserver struct {
	logger    *slog.Logger
	sessionID string
	seats     [2]player.Source
	gameRepo  gameRepo
	presenter Presenter
}

func (that *sessionObserver) MoveApplied(ctx context.Context, state tictactoe.State, seat entity.Seat, cell int) {
	if err := that.gameRepo.CreateOrUpdate(ctx, state.Snapshot(that.sessionID)); err != nil {
		that.logger.Error("failed to save game", "error", err)
	}

	that.presenter.ShowMove(state.Piece(seat), that.seats[seat].Kind(), cell)
	that.presenter.ShowBoard(state.Board)
}

func (that *sessionObserver) MoveRejected(_ context.Context, _ tictactoe.State, _ entity.Seat, cell int, err error) {
	that.presenter.ShowRejected(cell, err)
}
