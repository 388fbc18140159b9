package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		assert.Equal(t, Outcome{Kind: InProgress}, Evaluate(Board{}))
	})

	t.Run("Every winning triple wins for X and for O", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, piece := range []Cell{X, O} {
				// Given: a board holding only the triple
				board := Board{}
				for _, i := range combo {
					board[i] = piece
				}

				// When: the board is evaluated
				outcome := Evaluate(board)

				// Then: the piece wins
				assert.Equal(t, WinFor(piece), outcome, "combo %v piece %s", combo, piece)
			}
		}
	})

	t.Run("Fewer than five pieces is always in progress", func(t *testing.T) {
		// Given: every board with at most two X and two O
		var check func(board Board, next int, xs, os int)
		check = func(board Board, next int, xs, os int) {
			if next == BoardSize {
				assert.Equal(t, InProgress, Evaluate(board).Kind, "board %v", board)
				return
			}
			check(board, next+1, xs, os)
			if xs < 2 {
				board[next] = X
				check(board, next+1, xs+1, os)
			}
			if os < 2 {
				board[next] = O
				check(board, next+1, xs, os+1)
			}
		}

		check(Board{}, 0, 0, 0)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: X O X / X O O / O X X
		board := Board{X, O, X, X, O, O, O, X, X}

		// Then: the outcome is a tie
		assert.Equal(t, Outcome{Kind: Tie}, Evaluate(board))
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		// Given: X X X / O O X / O X O
		board := Board{X, X, X, O, O, X, O, X, O}

		assert.Equal(t, WinFor(X), Evaluate(board))
	})

	t.Run("Evaluate is idempotent and does not mutate the board", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := Board{X, O, Empty, Empty, X, Empty, Empty, Empty, O}
		before := board

		// When: the board is evaluated twice
		first := Evaluate(board)
		second := Evaluate(board)

		// Then: both results match and the board is unchanged
		assert.Equal(t, first, second)
		assert.Equal(t, before, board)
	})

	t.Run("Mixed triple does not win", func(t *testing.T) {
		board := Board{X, X, O}

		assert.False(t, Evaluate(board).IsTerminal())
	})
}

func TestOutcome(t *testing.T) {
	assert.True(t, WinFor(O).IsTerminal())
	assert.True(t, Outcome{Kind: Tie}.IsTerminal())
	assert.False(t, Outcome{}.IsTerminal())
	assert.True(t, WinFor(O).IsWinFor(O))
	assert.False(t, WinFor(O).IsWinFor(X))
	assert.Equal(t, "win(X)", WinFor(X).String())
}
