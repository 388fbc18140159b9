package entity

// Seat identifies one of the two participants of a game.
type Seat uint8

const (
	SeatA Seat = iota
	SeatB
)

// Other returns the opposite seat.
func (that Seat) Other() Seat {
	if that == SeatA {
		return SeatB
	}
	return SeatA
}

func (that Seat) String() string {
	if that == SeatA {
		return "A"
	}
	return "B"
}
