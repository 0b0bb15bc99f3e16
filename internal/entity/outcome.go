package entity

// Outcome of a finished game. A zero Winner means the board filled up without a winner.
type Outcome struct {
	Winner Piece
}

func Win(winner Piece) Outcome {
	return Outcome{Winner: winner}
}

func Draw() Outcome {
	return Outcome{Winner: Empty}
}

func (that Outcome) IsDraw() bool {
	return that.Winner == Empty
}

func (that Outcome) String() string {
	if that.IsDraw() {
		return "draw"
	}

	return that.Winner.String() + " wins"
}

// Tally aggregates outcomes of several games.
type Tally struct {
	X     int
	O     int
	Draws int
}

func (that *Tally) Record(outcome Outcome) {
	switch outcome.Winner {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	default:
		that.Draws++
	}
}

func (that Tally) Games() int {
	return that.X + that.O + that.Draws
}
