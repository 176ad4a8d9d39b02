package quantum

import (
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/samber/lo"
)

type winningLine[P game.Player[P]] struct {
	player P
	// Highest subscript on the line, when it was completed
	order int
}

// A line of classical marks of the same player wins, the earliest completed
// line taking precedence. Different players completing lines at the same
// order is a draw, as is running out of cell pairs to entangle.
func (g *Game[P]) checkTermination() game.Outcome[P] {
	var lines []winningLine[P]
	for _, line := range game.Lines {
		a, b, c := g.marks[line[0]], g.marks[line[1]], g.marks[line[2]]
		if a == nil || b == nil || c == nil {
			continue
		}
		if !game.SamePlayer(a.Player, b.Player) || !game.SamePlayer(a.Player, c.Player) {
			continue
		}
		lines = append(lines, winningLine[P]{player: a.Player, order: max(a.Subscript, b.Subscript, c.Subscript)})
	}

	if len(lines) > 0 {
		first := lo.MinBy(lines, func(a, b winningLine[P]) bool { return a.order < b.order })
		tied := lo.UniqBy(lo.Filter(lines, func(l winningLine[P], _ int) bool {
			return l.order == first.order
		}), func(l winningLine[P]) string { return l.player.Key() })

		if len(tied) > 1 {
			return game.Drawn[P]()
		}
		return game.WonBy(first.player)
	}

	if g.pending == nil && len(g.entangleMoves()) == 0 {
		return game.Drawn[P]()
	}
	return game.Ongoing[P]()
}
