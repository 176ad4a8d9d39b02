package game

import "fmt"

type OutcomeKind uint8

const (
	OutcomeIncomplete OutcomeKind = iota
	OutcomeWon
	OutcomeDraw
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWon:
		return "Won"
	case OutcomeDraw:
		return "Draw"
	default:
		return "Incomplete"
	}
}

// Outcome of a game after a move. The zero value is an incomplete game.
type Outcome[P Player[P]] struct {
	Kind   OutcomeKind
	Winner P // valid only when Kind == OutcomeWon
}

func WonBy[P Player[P]](winner P) Outcome[P] {
	return Outcome[P]{Kind: OutcomeWon, Winner: winner}
}

func Drawn[P Player[P]]() Outcome[P] {
	return Outcome[P]{Kind: OutcomeDraw}
}

func Ongoing[P Player[P]]() Outcome[P] {
	return Outcome[P]{}
}

// Either won or drawn
func (o Outcome[P]) Terminal() bool {
	return o.Kind != OutcomeIncomplete
}

func (o Outcome[P]) IsDraw() bool {
	return o.Kind == OutcomeDraw
}

// Returns the winner, if there is one
func (o Outcome[P]) IsWon() (P, bool) {
	return o.Winner, o.Kind == OutcomeWon
}

func (o Outcome[P]) String() string {
	if o.Kind == OutcomeWon {
		return fmt.Sprintf("Won(%s)", o.Winner.Key())
	}
	return o.Kind.String()
}

// MoveResult is produced by every applied move
type MoveResult[P Player[P]] struct {
	// Cells whose ownership changed as a side effect of the move, nil if the
	// move reports none. Composed games derive the forced cells from it.
	Changed []Position
	// Player to move next
	Next    P
	Outcome Outcome[P]
}
