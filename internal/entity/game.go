package entity

// Game is the stored snapshot of an unfinished game. The outcome is never
// stored: it is derived from Board when the snapshot is loaded.
type Game struct {
	ID     string  `json:"id"`
	Board  Board   `json:"board"`
	Pieces [2]Cell `json:"pieces"`
	Turn   Seat    `json:"turn"`
}
