package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardSize is the number of cells on the board, addressed 0-8 row-major.
const BoardSize = 9

// Cell is the value held by a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// IsPiece reports whether the cell value is X or O.
func (that Cell) IsPiece() bool {
	return that == X || that == O
}

// Opponent returns the other piece. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	switch that {
	case Empty:
		return []byte(""), nil
	case X, O:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPiece, that)
	}
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "":
		*that = Empty
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, text)
	}

	return nil
}

// Board holds the nine cells of a game. Copying a Board copies every cell.
type Board [BoardSize]Cell

// IsLegal reports whether a piece may be placed at index.
func (that *Board) IsLegal(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == Empty
}

// Place puts value at index. The board is left untouched on error.
func (that *Board) Place(index int, value Cell) error {
	if !value.IsPiece() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPiece, value)
	}

	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = value

	return nil
}

// Reset empties every cell.
func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold value.
func (that *Board) Count(value Cell) int {
	count := 0
	for _, cell := range that {
		if cell == value {
			count++
		}
	}

	return count
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString("\n---------\n")
		}
		for col := range 3 {
			if col > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(that[row*3+col].String())
		}
	}

	return sb.String()
}
