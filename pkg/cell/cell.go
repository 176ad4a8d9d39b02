// Package cell is the leaf game: a single square a player claims.
package cell

import "github.com/IlikeChooros/go-guttt/pkg/game"

// Claim is the only move of a cell
type Claim struct{}

func (Claim) String() string {
	return ""
}

// Cell is won by the first player to claim it
type Cell[P game.Player[P]] struct {
	player  P
	owner   P
	claimed bool
}

func New[P game.Player[P]](player P) *Cell[P] {
	return &Cell[P]{player: player}
}

func Factory[P game.Player[P]]() game.Factory[*Cell[P], P] {
	return func(player P, _ game.Position) *Cell[P] {
		return New(player)
	}
}

// The player to move claims the cell and wins it
func (c *Cell[P]) Apply(move Claim) game.MoveResult[P] {
	if c.claimed {
		panic(game.Violation(game.ErrInvalidMove, "cell already claimed by %s", c.owner.Key()))
	}

	c.owner = c.player
	c.claimed = true
	c.player = c.player.Next()
	return game.MoveResult[P]{Next: c.player, Outcome: game.WonBy(c.owner)}
}

func (c *Cell[P]) IsValid(Claim) bool {
	return !c.claimed
}

func (c *Cell[P]) ValidMoves() []Claim {
	if c.claimed {
		return nil
	}
	return []Claim{{}}
}

func (c *Cell[P]) Player() P {
	return c.player
}

func (c *Cell[P]) SetPlayer(player P) {
	c.player = player
}

func (c *Cell[P]) Clone() *Cell[P] {
	cp := *c
	return &cp
}

func (c *Cell[P]) Owner() (P, bool) {
	return c.owner, c.claimed
}

func (c *Cell[P]) Size() (int, int) {
	return 1, 1
}

func (c *Cell[P]) Draw(canvas game.Canvas, x, y int) {
	switch {
	case !c.claimed:
		canvas.Set(x, y, "·", game.Style{})
	case !game.DrawAny(canvas, c.owner, x, y):
		canvas.Set(x, y, c.owner.Key(), game.Style{Tint: game.TintMark, Key: c.owner.Key()})
	}
}
