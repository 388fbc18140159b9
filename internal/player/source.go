package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrNoInput = errors.New("human seat has no input reader")

// Kind is the closed set of move source variants.
type Kind uint8

const (
	Human Kind = iota
	Heuristic
)

func (that Kind) String() string {
	switch that {
	case Human:
		return "human"
	case Heuristic:
		return "computer"
	default:
		return fmt.Sprintf("kind(%d)", uint8(that))
	}
}

// InputReader supplies the cell chosen by a human. It does not validate the
// cell against the board.
type InputReader interface {
	ReadMove(ctx context.Context, board entity.Board, piece entity.Cell) (int, error)
}

// Source produces the next move for one seat.
type Source struct {
	kind  Kind
	input InputReader
}

func NewHuman(input InputReader) Source {
	return Source{kind: Human, input: input}
}

func NewHeuristic() Source {
	return Source{kind: Heuristic}
}

func (that Source) Kind() Kind {
	return that.kind
}

// ChooseMove returns the cell this source wants to play with piece.
func (that Source) ChooseMove(ctx context.Context, board entity.Board, piece entity.Cell) (int, error) {
	switch that.kind {
	case Human:
		if that.input == nil {
			return 0, ErrNoInput
		}

		cell, err := that.input.ReadMove(ctx, board, piece)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		return cell, nil
	case Heuristic:
		return HeuristicMove(board, piece)
	default:
		return 0, fmt.Errorf("unknown move source %s", that.kind)
	}
}
