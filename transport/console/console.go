package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// Console reads answers and moves from a line based input and writes the
// game to a terminal.
type Console struct {
	logger *slog.Logger
	out    *termenv.Output

	lines   chan string
	scanErr error
}

// New starts reading in. Reads block until a line arrives, the input ends or
// the context is done.
func New(logger *slog.Logger, in io.Reader, out *termenv.Output) *Console {
	that := &Console{
		logger: logger.With("component", "console"),
		out:    out,
		lines:  make(chan string),
	}

	go that.scan(in)

	return that
}

// NewOutput wraps w for the colour setting auto, always or never.
func NewOutput(w io.Writer, color string) *termenv.Output {
	switch color {
	case "always":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	case "never":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	default:
		return termenv.NewOutput(w)
	}
}

func (that *Console) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.scanErr = scanner.Err()
	close(that.lines)
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.scanErr != nil {
				return "", fmt.Errorf("failed to read input: %w", that.scanErr)
			}

			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}

// ask prints question and returns the next answer. The end of the input
// counts as quitting.
func (that *Console) ask(ctx context.Context, question string) (string, error) {
	that.printf("%s", question)

	answer, err := that.readLine(ctx)
	if errors.Is(err, io.EOF) {
		that.printf("\n")
		return "", apperror.ErrQuit
	}

	if err != nil {
		return "", err
	}

	if isQuit(answer) {
		return "", apperror.ErrQuit
	}

	return answer, nil
}

func isQuit(answer string) bool {
	answer = strings.ToLower(answer)
	return answer == "q" || answer == "quit"
}

// ReadMove asks for a cell until a number is entered. The number is not
// checked against the board.
func (that *Console) ReadMove(ctx context.Context, _ entity.Board, piece entity.Cell) (int, error) {
	log := that.logger.With("method", "ReadMove")

	for {
		answer, err := that.ask(ctx, fmt.Sprintf("%s Where will you move? (0-8): ", that.piece(piece)))
		if err != nil {
			return 0, err
		}

		cell, err := strconv.Atoi(answer)
		if err != nil {
			log.Debug("not a number", "answer", answer)
			that.printf("Enter a number from 0 to 8, or q to quit.\n")

			continue
		}

		return cell, nil
	}
}

// AskYesNo repeats question until it is answered with y or n.
func (that *Console) AskYesNo(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := that.ask(ctx, question+" (y/n): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// AskFirstMove reports whether the human wants to move first.
func (that *Console) AskFirstMove(ctx context.Context) (bool, error) {
	humanFirst, err := that.AskYesNo(ctx, "Do you require the first move?")
	if err != nil {
		return false, err
	}

	if humanFirst {
		that.printf("\nThen take the first move. You will need it.\n")
	} else {
		that.printf("\nYour bravery will be your undoing... I will go first.\n")
	}

	return humanFirst, nil
}

// AskMode shows the mode menu until a listed mode is picked.
func (that *Console) AskMode(ctx context.Context) (usecase.Mode, error) {
	that.printf("1. Play against the computer\n2. Play against another human\n3. Watch the computer play itself\n")

	for {
		answer, err := that.ask(ctx, "Choose a mode (1-3): ")
		if err != nil {
			return 0, err
		}

		switch answer {
		case "1":
			return usecase.Computer, nil
		case "2":
			return usecase.Human, nil
		case "3":
			return usecase.Auto, nil
		}
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
