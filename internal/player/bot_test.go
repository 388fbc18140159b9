package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	x = entity.X
	o = entity.O
)

func TestHeuristicMove(t *testing.T) {
	tests := []struct {
		name  string
		board entity.Board
		piece entity.Cell
		want  int
	}{
		{
			name:  "Completes its own row",
			board: entity.Board{x, x, 0, o, o, 0, 0, 0, 0},
			piece: x,
			want:  2,
		},
		{
			name:  "Blocks the opponent row",
			board: entity.Board{o, o, 0, x, 0, 0, 0, 0, 0},
			piece: x,
			want:  2,
		},
		{
			name:  "Takes the center on an empty board",
			board: entity.Board{},
			piece: x,
			want:  4,
		},
		{
			name:  "Prefers winning over blocking",
			board: entity.Board{o, o, 0, x, x, 0, 0, 0, 0},
			piece: x,
			want:  5,
		},
		{
			name:  "Picks the lowest winning cell",
			board: entity.Board{o, 0, o, 0, 0, 0, o, 0, 0},
			piece: o,
			want:  1,
		},
		{
			name:  "Blocks a diagonal",
			board: entity.Board{x, 0, 0, 0, x, 0, 0, 0, 0},
			piece: o,
			want:  8,
		},
		{
			name:  "Takes a corner when the center is gone",
			board: entity.Board{0, 0, 0, 0, x, 0, 0, 0, 0},
			piece: o,
			want:  0,
		},
		{
			name:  "Falls back to edges",
			board: entity.Board{x, 0, o, o, x, x, x, 0, o},
			piece: o,
			want:  1,
		},
		{
			name:  "Plays as O",
			board: entity.Board{x, 0, 0, 0, 0, 0, 0, 0, 0},
			piece: o,
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board snapshot
			before := tt.board

			// When: the heuristic chooses a move
			cell, err := HeuristicMove(tt.board, tt.piece)

			// Then: the expected cell is chosen and the board is untouched
			require.NoError(t, err)
			assert.Equal(t, tt.want, cell)
			assert.Equal(t, before, tt.board)
			assert.True(t, tt.board.IsLegal(cell))
		})
	}
}

func TestHeuristicMove_Errors(t *testing.T) {
	t.Run("Full board has no moves", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		_, err := HeuristicMove(board, x)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Empty piece is rejected", func(t *testing.T) {
		_, err := HeuristicMove(entity.Board{}, entity.Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidPiece)
	})
}

func TestHeuristicMove_AlwaysLegal(t *testing.T) {
	// Given: two heuristic players playing out a game
	board := entity.Board{}
	piece := entity.X

	for entity.Evaluate(board).Kind == entity.InProgress {
		// When: each asks for a move
		cell, err := HeuristicMove(board, piece)

		// Then: the cell is always legal
		require.NoError(t, err)
		require.NoError(t, board.Place(cell, piece))
		piece = piece.Opponent()
	}

	// Then: the heuristic never loses to itself
	assert.Equal(t, entity.Tie, entity.Evaluate(board).Kind)
}
