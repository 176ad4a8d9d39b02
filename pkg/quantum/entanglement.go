package quantum

import (
	"fmt"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Measurement is a classical mark, left behind once a cell collapses.
// The subscript is the move order, lower means earlier.
type Measurement[P game.Player[P]] struct {
	Player    P
	Subscript int
}

func (m Measurement[P]) String() string {
	return fmt.Sprintf("%s%d", m.Player.Key(), m.Subscript)
}

// Entanglement is a quantum mark joining two cells
type Entanglement[P game.Player[P]] struct {
	A, B      game.Position
	Player    P
	Subscript int
}

// Whether the entanglement joins a and b, in any order
func (e Entanglement[P]) Joins(a, b game.Position) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

func (e Entanglement[P]) Touches(pos game.Position) bool {
	return e.A == pos || e.B == pos
}

// Same cells, same player and same subscript
func (e Entanglement[P]) Equal(other Entanglement[P]) bool {
	return e.Joins(other.A, other.B) && e.Subscript == other.Subscript &&
		game.SamePlayer(e.Player, other.Player)
}

// The endpoint that is not pos
func (e Entanglement[P]) Other(pos game.Position) game.Position {
	switch pos {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	panic(game.Violation(game.ErrOutOfBounds, "%s does not touch %v", pos, e))
}

func (e Entanglement[P]) endpoint(first bool) game.Position {
	if first {
		return e.A
	}
	return e.B
}

func (e Entanglement[P]) Measurement() Measurement[P] {
	return Measurement[P]{Player: e.Player, Subscript: e.Subscript}
}

func (e Entanglement[P]) String() string {
	return fmt.Sprintf("%s%d(%s~%s)", e.Player.Key(), e.Subscript, e.A, e.B)
}
