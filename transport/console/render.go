package console

import (
	"errors"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
)

const banner = `Welcome to the ultimate man-machine showdown: Tic-Tac-Toe.
--where human brain is pit against silicon processor.

Make your move known by entering a number, 0 - 8. The number
corresponds to the desired board position, as illustrated:

	0 | 1 | 2
	---------
	3 | 4 | 5
	---------
	6 | 7 | 8

Enter q at any prompt to leave. An unfinished game is kept for later.

Prepare yourself, human. The battle is about to begin.

`

const (
	colorX = "1" // red
	colorO = "4" // blue
)

func (that *Console) ShowBanner() {
	that.printf("%s", banner)
}

// piece renders a mark in its colour.
func (that *Console) piece(piece entity.Cell) string {
	style := that.out.String(piece.String())

	switch piece {
	case entity.X:
		return style.Foreground(that.out.Color(colorX)).Bold().String()
	case entity.O:
		return style.Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return style.String()
	}
}

func (that *Console) ShowResumed(id string) {
	that.printf("Resuming unfinished game %s.\n", id)
}

func (that *Console) ShowBoard(board entity.Board) {
	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, that.piece(board[row*3+col]))
		}
		rows = append(rows, "\t"+strings.Join(cells, " | "))
	}

	that.printf("\n%s\n\n", strings.Join(rows, "\n\t---------\n"))
}

func (that *Console) ShowMove(piece entity.Cell, kind player.Kind, cell int) {
	if kind == player.Heuristic {
		that.printf("%s I shall take square number %d.\n", that.piece(piece), cell)
		return
	}

	that.printf("Fine...\n")
}

func (that *Console) ShowRejected(_ int, err error) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("\nThat square is already occupied, foolish human.\n")
	case errors.Is(err, apperror.ErrInvalidCell):
		that.printf("\nThat square is not on the board.\n")
	default:
		that.printf("\n%s\n", err)
	}
}

func (that *Console) ShowOutcome(outcome entity.Outcome) {
	switch outcome.Kind {
	case entity.Win:
		that.printf("%s's won!\n", that.piece(outcome.Winner))
	case entity.Tie:
		that.printf("It's a tie.\n")
	default:
		that.printf("The game is not over.\n")
	}
}

func (that *Console) ShowSaved(id string) {
	that.printf("Your game is saved. Set session-id to %s to resume it.\n", id)
}
