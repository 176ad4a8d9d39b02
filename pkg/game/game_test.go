package game_test

import (
	"errors"
	"testing"

	"github.com/IlikeChooros/go-guttt/pkg/cell"
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/super"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("expected %v panic, got %v", target, err)
		}
	}()
	fn()
}

func TestPositionRoundTrip(t *testing.T) {
	for id := range game.Cells {
		p := game.FromID(id)
		assert.Equal(t, p, game.FromXY(p.X(), p.Y()))
		assert.Equal(t, id, p.ID())
	}

	assert.Equal(t, "b2", game.FromXY(1, 1).String())
	assert.Equal(t, "c1", game.FromID(8).String())
}

func TestPositionBounds(t *testing.T) {
	expectPanic(t, game.ErrOutOfBounds, func() { game.FromID(9) })
	expectPanic(t, game.ErrOutOfBounds, func() { game.FromID(-1) })
	expectPanic(t, game.ErrOutOfBounds, func() { game.FromXY(3, 0) })
}

func TestSlotSettle(t *testing.T) {
	var empty game.Slot[*cell.Cell[xo.Mark], xo.Mark]
	assert.Equal(t, game.SlotEmpty, empty.State())

	slot := game.Playing[*cell.Cell[xo.Mark], xo.Mark](cell.New(xo.X))
	slot.Settle(game.Ongoing[xo.Mark]())
	assert.True(t, slot.IsPlaying())

	slot.Settle(game.WonBy(xo.O))
	winner, ok := slot.Winner()
	assert.True(t, ok)
	assert.Equal(t, xo.O, winner)
	assert.Equal(t, "Won(o)", slot.String())
	assert.NotNil(t, slot.Game(), "finished game is kept")

	expectPanic(t, game.ErrInvalidMove, func() { slot.Settle(game.Drawn[xo.Mark]()) })
	expectPanic(t, game.ErrInvalidMove, func() { empty.Settle(game.Drawn[xo.Mark]()) })
}

func plainMove(id int) super.Move[cell.Claim] {
	return super.Move[cell.Claim]{Cell: game.FromID(id)}
}

func TestMatchFreezes(t *testing.T) {
	m := game.StartMatch[*super.Plain[xo.Mark], super.Move[cell.Claim]](super.PlainFactory[xo.Mark](), xo.X)
	for _, id := range []int{0, 3, 1, 4} {
		m.Apply(plainMove(id))
	}
	require.False(t, m.Finished())

	res := m.Apply(plainMove(2))
	assert.Equal(t, game.WonBy(xo.X), res.Outcome)
	assert.True(t, m.Finished())
	assert.Empty(t, m.ValidMoves())
	assert.False(t, m.IsValid(plainMove(8)))

	expectPanic(t, game.ErrInvalidMove, func() { m.Apply(plainMove(8)) })
}

func TestErased(t *testing.T) {
	e := game.Erase[*super.Plain[xo.Mark], super.Move[cell.Claim], xo.Mark](super.NewPlain(xo.X))
	moves := e.ValidMoves()
	require.Len(t, moves, 9)

	res := e.Apply(moves[4])
	assert.Equal(t, xo.O, res.Next)
	assert.False(t, e.IsValid("b2"), "wrong payload is never valid")

	c := e.Clone()
	c.Apply(c.ValidMoves()[0])
	assert.Len(t, e.ValidMoves(), 8)
	assert.Len(t, c.ValidMoves(), 7)

	_, ok := e.Unwrap().(*super.Plain[xo.Mark])
	assert.True(t, ok)

	expectPanic(t, game.ErrPayloadMismatch, func() { e.Apply(cell.Claim{}) })
}

// Erased games nest inside super games, picking the depth at runtime
func TestErasedNesting(t *testing.T) {
	inner := game.ErasedFactory[*super.Plain[xo.Mark], super.Move[cell.Claim]](super.PlainFactory[xo.Mark]())
	g := super.New[*game.Erased[xo.Mark], any, xo.Mark](xo.X, inner)

	require.Len(t, g.ValidMoves(), 81)
	g.Apply(super.Move[any]{Cell: game.FromID(4), Sub: plainMove(0)})
	assert.Equal(t, []game.Position{game.FromID(0)}, g.Forced())
	assert.Equal(t, xo.O, g.Player())
}

func TestOutcome(t *testing.T) {
	assert.False(t, game.Ongoing[xo.Mark]().Terminal())
	assert.True(t, game.Drawn[xo.Mark]().Terminal())
	assert.Equal(t, "Won(x)", game.WonBy(xo.X).String())
}
