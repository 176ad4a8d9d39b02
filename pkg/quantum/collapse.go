package quantum

import (
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/samber/lo"
)

type resolution[P game.Player[P]] struct {
	pos  game.Position
	mark Measurement[P]
	// Entanglement the cell was reached through
	via Entanglement[P]
}

// Walk the entanglement graph from one endpoint of seed, without going back
// through seed itself. Every cell reached is resolved to the measurement of
// the entanglement it was first reached through, every entanglement walked is
// consumed. closed reports whether the other endpoint of seed was reached,
// that is whether seed closes a cycle.
func (g *Game[P]) collapse(seed Entanglement[P], first bool) (resolved []resolution[P], consumed []Entanglement[P], closed bool) {
	var visited [game.Cells]bool
	stack := []resolution[P]{{pos: seed.endpoint(first), mark: seed.Measurement(), via: seed}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !lo.ContainsBy(consumed, r.via.Equal) {
			consumed = append(consumed, r.via)
		}
		if visited[r.pos.ID()] {
			continue
		}
		visited[r.pos.ID()] = true
		resolved = append(resolved, r)

		for _, e := range g.entanglements {
			if e.Touches(r.pos) && !e.Equal(r.via) {
				stack = append(stack, resolution[P]{pos: e.Other(r.pos), mark: e.Measurement(), via: e})
			}
		}
	}

	closed = visited[seed.endpoint(!first).ID()]
	return
}
