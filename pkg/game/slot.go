package game

import "fmt"

type SlotState uint8

const (
	SlotEmpty SlotState = iota
	SlotPlaying
	SlotWon
	SlotDraw
)

func (s SlotState) String() string {
	switch s {
	case SlotPlaying:
		return "Playing"
	case SlotWon:
		return "Won"
	case SlotDraw:
		return "Draw"
	default:
		return "Empty"
	}
}

// Slot holds a sub-game and the state it is in. A finished sub-game stays
// inside for display, but may no longer be mutated through the slot.
// G should be a pointer type, Slot relies on the game mutating in place.
//
// The zero value is an empty slot.
type Slot[G any, P Player[P]] struct {
	state  SlotState
	winner P
	game   G
}

func Playing[G any, P Player[P]](game G) Slot[G, P] {
	return Slot[G, P]{state: SlotPlaying, game: game}
}

func (s Slot[G, P]) State() SlotState {
	return s.state
}

func (s Slot[G, P]) IsPlaying() bool {
	return s.state == SlotPlaying
}

// The held game, whatever the state
func (s Slot[G, P]) Game() G {
	return s.game
}

// Winner of the held game, if it was won
func (s Slot[G, P]) Winner() (P, bool) {
	return s.winner, s.state == SlotWon
}

// Copy of the slot holding another game, used when cloning
func (s Slot[G, P]) WithGame(game G) Slot[G, P] {
	s.game = game
	return s
}

// Record the outcome of the last move made on the held game.
// Only a playing slot can be settled.
func (s *Slot[G, P]) Settle(outcome Outcome[P]) {
	if s.state != SlotPlaying {
		panic(Violation(ErrInvalidMove, "mutating a %s sub-game", s.state))
	}

	switch outcome.Kind {
	case OutcomeWon:
		s.state = SlotWon
		s.winner = outcome.Winner
	case OutcomeDraw:
		s.state = SlotDraw
	}
}

func (s Slot[G, P]) String() string {
	if s.state == SlotWon {
		return fmt.Sprintf("Won(%s)", s.winner.Key())
	}
	return s.state.String()
}
