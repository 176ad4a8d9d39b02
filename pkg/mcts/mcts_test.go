package mcts

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/IlikeChooros/go-guttt/pkg/cell"
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/super"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainMove = super.Move[cell.Claim]

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

func plain(ids ...int) *super.Plain[xo.Mark] {
	g := super.NewPlain(xo.X)
	for _, id := range ids {
		g.Apply(plainMove{Cell: game.FromID(id)})
	}
	return g
}

func TestSingleMove(t *testing.T) {
	g := plain(0, 1, 2, 4, 3, 5, 7, 6)
	require.Len(t, g.ValidMoves(), 1)

	move, ok := BestMove(g, g.Player(), NewRand(0), Count(3))
	require.True(t, ok)
	assert.Equal(t, game.FromID(8), move.Cell)
}

func TestNoMoves(t *testing.T) {
	g := plain(0, 3, 1, 4, 2)
	_, ok := BestMove(g, g.Player(), NewRand(0), Count(3))
	assert.False(t, ok)
}

func TestTakesTheWin(t *testing.T) {
	// X X .
	// O O .
	// . . .
	g := plain(0, 3, 1, 4)
	scores := Evaluate(g, xo.X, NewRand(0), Count(50))
	require.Len(t, scores, 5)

	best, ok := scores.Best()
	require.True(t, ok)
	assert.Equal(t, game.FromID(2), best.Move.Cell)
	assert.Equal(t, 50.0, best.Score)
	assert.Equal(t, 5*50, scores.Rollouts())
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	g := super.NewUltimate(xo.X)
	_, ok := BestMove(g, xo.X, NewRand(0), Count(2))
	require.True(t, ok)
	assert.Len(t, g.ValidMoves(), 81)
	assert.Equal(t, xo.X, g.Player())
}

func TestBestMoveAlwaysValid(t *testing.T) {
	budgets := []Budget{
		Count(1),
		Count(3).SetOpponent(Count(1)),
		Movetime(20),
	}

	for _, budget := range budgets {
		g := plain()
		rng := NewRand(1)
		for len(g.ValidMoves()) > 0 {
			move, ok := BestMove(g, g.Player(), rng, budget)
			require.True(t, ok, budget.String())
			require.True(t, g.IsValid(move), "%v is not valid under %s", move, budget)
			g.Apply(move)
		}
	}
}

func TestMovetimeRunsAtLeastOnce(t *testing.T) {
	g := super.NewUltimate(xo.X)
	scores := Evaluate(g, xo.X, NewRand(0), Movetime(1))
	require.Len(t, scores, 81)
	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Rollouts, 1)
	}
}

func TestReward(t *testing.T) {
	assert.Equal(t, RewardWin, Reward(game.WonBy(xo.X), xo.X))
	assert.Equal(t, RewardLoss, Reward(game.WonBy(xo.O), xo.X))
	assert.Equal(t, RewardDraw, Reward(game.Drawn[xo.Mark](), xo.X))
	assert.Equal(t, RewardIncomplete, Reward(game.Ongoing[xo.Mark](), xo.X))
}

func TestParseBudget(t *testing.T) {
	b, err := ParseBudget("time:300, count:2")
	require.NoError(t, err)
	assert.Equal(t, BudgetTime, b.Kind)
	assert.Equal(t, 300, b.Movetime)
	require.NotNil(t, b.Opponent)
	assert.Equal(t, Count(2), *b.Opponent)

	for _, bad := range []string{"", "count", "count:0", "moves:3", "time:x"} {
		_, err := ParseBudget(bad)
		assert.Error(t, err, bad)
	}
}

func TestEvaluatorWithListener(t *testing.T) {
	g := plain(4)
	scored := 0
	stopped := false
	listener := NewStatsListener[plainMove]()
	listener.
		OnScored(func(stats ListenerStats[plainMove]) {
			scored++
			t.Logf("%d/%d %v best %v", stats.Scored, stats.Candidates, stats.Score, stats.Best.Move)
		}).
		OnStop(func(stats ListenerStats[plainMove]) {
			stopped = true
			t.Logf("stop after %dms, best %v", stats.TimeMs, stats.Best)
		})

	e := NewEvaluator[*super.Plain[xo.Mark], plainMove, xo.Mark](Count(20)).
		SetThreads(4).
		SetListener(listener)

	move, ok, err := e.BestMove(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, g.IsValid(move))
	assert.Equal(t, 8, scored)
	assert.True(t, stopped)
}

func TestEvaluatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEvaluator[*super.Plain[xo.Mark], plainMove, xo.Mark](Count(1))
	_, err := e.Search(ctx, plain())
	assert.ErrorIs(t, err, context.Canceled)
}
