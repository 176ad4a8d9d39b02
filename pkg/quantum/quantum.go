// Package quantum implements quantum tic tac toe. Players place spooky
// marks in pairs of cells; an entanglement closing a cycle must be measured,
// collapsing every connected cell into a classical mark.
package quantum

import (
	"slices"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/samber/lo"
)

type Game[P game.Player[P]] struct {
	// Classical marks, nil while the cell is unresolved
	marks         [game.Cells]*Measurement[P]
	entanglements []Entanglement[P]
	player        P
	// Player whose turns advance the subscript, the last one to measure
	leader    P
	subscript int
	// Entanglement that closed a cycle, waiting for a measurement
	pending *Entanglement[P]
	outcome game.Outcome[P]
}

func New[P game.Player[P]](player P) *Game[P] {
	return &Game[P]{player: player, leader: player}
}

func Factory[P game.Player[P]]() game.Factory[*Game[P], P] {
	return func(player P, _ game.Position) *Game[P] {
		return New(player)
	}
}

func (g *Game[P]) Apply(move Move) game.MoveResult[P] {
	switch m := move.(type) {
	case Entangle:
		return g.entangle(m)
	case Measure:
		return g.measure(m)
	}
	panic(game.Violation(game.ErrPayloadMismatch, "quantum game expects Entangle or Measure, got %T", move))
}

func (g *Game[P]) entangle(move Entangle) game.MoveResult[P] {
	if !g.IsValid(move) {
		panic(game.Violation(game.ErrInvalidMove, "cannot entangle %v (measuring: %t)", move, g.pending != nil))
	}

	if game.SamePlayer(g.player, g.leader) {
		g.subscript++
	}

	e := Entanglement[P]{A: move.A, B: move.B, Player: g.player, Subscript: g.subscript}
	g.entanglements = append(g.entanglements, e)
	if _, _, closed := g.collapse(e, true); closed {
		g.pending = &e
	}

	g.player = g.player.Next()
	g.outcome = g.checkTermination()
	return game.MoveResult[P]{Next: g.player, Outcome: g.outcome}
}

// The measuring player keeps the turn and leads the subscript from now on
func (g *Game[P]) measure(move Measure) game.MoveResult[P] {
	if !g.IsValid(move) {
		panic(game.Violation(game.ErrInvalidMove, "nothing to measure"))
	}

	resolved, consumed, _ := g.collapse(*g.pending, move.First)
	changed := make([]game.Position, 0, len(resolved))
	for _, r := range resolved {
		mark := r.mark
		g.marks[r.pos.ID()] = &mark
		changed = append(changed, r.pos)
	}

	g.entanglements = lo.Reject(g.entanglements, func(e Entanglement[P], _ int) bool {
		return lo.ContainsBy(consumed, e.Equal)
	})
	g.pending = nil
	g.leader = g.player
	g.outcome = g.checkTermination()
	return game.MoveResult[P]{Changed: changed, Next: g.player, Outcome: g.outcome}
}

func (g *Game[P]) IsValid(move Move) bool {
	if g.outcome.Terminal() {
		return false
	}

	switch m := move.(type) {
	case Entangle:
		return g.pending == nil && g.canEntangle(m.A, m.B)
	case Measure:
		return g.pending != nil
	}
	return false
}

func (g *Game[P]) canEntangle(a, b game.Position) bool {
	return a != b && g.marks[a.ID()] == nil && g.marks[b.ID()] == nil &&
		!lo.ContainsBy(g.entanglements, func(e Entanglement[P]) bool { return e.Joins(a, b) })
}

func (g *Game[P]) entangleMoves() []Move {
	var moves []Move
	for a := range game.Cells {
		for b := a + 1; b < game.Cells; b++ {
			if g.canEntangle(game.FromID(a), game.FromID(b)) {
				moves = append(moves, Entangle{A: game.FromID(a), B: game.FromID(b)})
			}
		}
	}
	return moves
}

// Both measurements while a cycle is pending, every free pair of cells otherwise
func (g *Game[P]) ValidMoves() []Move {
	switch {
	case g.outcome.Terminal():
		return nil
	case g.pending != nil:
		return []Move{Measure{First: true}, Measure{First: false}}
	}
	return g.entangleMoves()
}

func (g *Game[P]) Player() P {
	return g.player
}

func (g *Game[P]) SetPlayer(player P) {
	g.player = player
}

func (g *Game[P]) Clone() *Game[P] {
	c := *g
	c.entanglements = slices.Clone(g.entanglements)
	if g.pending != nil {
		pending := *g.pending
		c.pending = &pending
	}
	return &c
}

// Classical mark of a cell, if it was measured
func (g *Game[P]) Mark(pos game.Position) (Measurement[P], bool) {
	if m := g.marks[pos.ID()]; m != nil {
		return *m, true
	}
	return Measurement[P]{}, false
}

func (g *Game[P]) Entanglements() []Entanglement[P] {
	return slices.Clone(g.entanglements)
}

// Entanglements with an endpoint in pos
func (g *Game[P]) EntanglementsAt(pos game.Position) []Entanglement[P] {
	return lo.Filter(g.entanglements, func(e Entanglement[P], _ int) bool { return e.Touches(pos) })
}

// Entanglement waiting to be measured
func (g *Game[P]) Pending() (Entanglement[P], bool) {
	if g.pending == nil {
		return Entanglement[P]{}, false
	}
	return *g.pending, true
}

func (g *Game[P]) Outcome() game.Outcome[P] {
	return g.outcome
}
