package cell

import (
	"errors"
	"testing"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
)

func TestClaim(t *testing.T) {
	c := New(xo.O)
	if moves := c.ValidMoves(); len(moves) != 1 {
		t.Fatalf("fresh cell should have exactly one move, got %d", len(moves))
	}

	res := c.Apply(Claim{})
	if winner, ok := res.Outcome.IsWon(); !ok || winner != xo.O {
		t.Errorf("claiming should win the cell for O, got %v", res.Outcome)
	}

	if res.Next != xo.X || c.Player() != xo.X {
		t.Errorf("next player should be X, got %v", res.Next)
	}

	if res.Changed != nil {
		t.Errorf("a cell reports no changed cells, got %v", res.Changed)
	}

	if c.IsValid(Claim{}) || len(c.ValidMoves()) != 0 {
		t.Error("claimed cell should have no moves")
	}
}

func TestClaimTwicePanics(t *testing.T) {
	c := New(xo.X)
	c.Apply(Claim{})

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, game.ErrInvalidMove) {
			t.Errorf("expected ErrInvalidMove panic, got %v", err)
		}
	}()
	c.Apply(Claim{})
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(xo.X)
	cp := c.Clone()
	cp.Apply(Claim{})

	if _, ok := c.Owner(); ok {
		t.Error("applying on the clone changed the original")
	}
}
