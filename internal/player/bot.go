package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// PreferredCells is the positional order: center, corners, edges.
var PreferredCells = [entity.BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// HeuristicMove picks a cell for piece: win now, else block the opponent,
// else the first free cell of PreferredCells.
func HeuristicMove(board entity.Board, piece entity.Cell) (int, error) {
	if !piece.IsPiece() {
		return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidPiece, piece)
	}

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if cell, ok := findWinningMove(board, availableCells, piece); ok {
		return cell, nil
	}

	if cell, ok := findWinningMove(board, availableCells, piece.Opponent()); ok {
		return cell, nil
	}

	for _, cell := range PreferredCells {
		if board.IsLegal(cell) {
			return cell, nil
		}
	}

	return 0, apperror.ErrNoAvailableMoves
}

// findWinningMove returns the lowest cell where piece would complete a line.
func findWinningMove(board entity.Board, availableCells []int, piece entity.Cell) (int, bool) {
	for _, cell := range availableCells {
		scratch := board
		scratch[cell] = piece

		if entity.Evaluate(scratch).IsWinFor(piece) {
			return cell, true
		}
	}

	return 0, false
}
