package entity

// WinCombos lists every winning triple in evaluation order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type OutcomeKind uint8

const (
	InProgress OutcomeKind = iota
	Win
	Tie
)

// Outcome is the result of a board. Winner is set only for Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner Cell
}

func WinFor(piece Cell) Outcome {
	return Outcome{Kind: Win, Winner: piece}
}

// IsTerminal reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that.Kind != InProgress
}

// IsWinFor reports whether piece won.
func (that Outcome) IsWinFor(piece Cell) bool {
	return that.Kind == Win && that.Winner == piece
}

func (that Outcome) String() string {
	switch that.Kind {
	case Win:
		return "win(" + that.Winner.String() + ")"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// Evaluate derives the outcome of board. The first winning triple in
// WinCombos order decides the winner.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return WinFor(a)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == Empty {
			return Outcome{Kind: InProgress}
		}
	}

	return Outcome{Kind: Tie}
}
