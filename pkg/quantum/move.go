package quantum

import (
	"fmt"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Move is either an Entangle or a Measure
type Move interface {
	fmt.Stringer
	quantumMove()
}

// Entangle places a spooky mark in two distinct cells
type Entangle struct {
	A, B game.Position
}

// Measure resolves the entanglement that closed a cycle,
// collapsing from its first or second endpoint.
type Measure struct {
	First bool
}

func (Entangle) quantumMove() {}
func (Measure) quantumMove()  {}

func (e Entangle) String() string {
	return fmt.Sprintf("%s~%s", e.A, e.B)
}

func (m Measure) String() string {
	if m.First {
		return "!1"
	}
	return "!2"
}
