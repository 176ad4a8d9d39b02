package bench

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/IlikeChooros/go-guttt/pkg/cell"
	"github.com/IlikeChooros/go-guttt/pkg/mcts"
	"github.com/IlikeChooros/go-guttt/pkg/quantum"
	"github.com/IlikeChooros/go-guttt/pkg/super"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainMove = super.Move[cell.Claim]

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", mcts.SeedGeneratorFn())

	os.Exit(m.Run())
}

type countingListener[M any] struct {
	NopListener[M]
	moves, games, workers atomic.Int32
	summary              VersusSummaryInfo
}

func (c *countingListener[M]) OnMoveMade(VersusWorkerInfo[M])     { c.moves.Add(1) }
func (c *countingListener[M]) OnFinishedGame(VersusWorkerInfo[M]) { c.games.Add(1) }
func (c *countingListener[M]) OnFinishedWork(VersusWorkerInfo[M]) { c.workers.Add(1) }
func (c *countingListener[M]) Summary(info VersusSummaryInfo)     { c.summary = info }

func TestVersusArena(t *testing.T) {
	arena := NewVersusArena[*super.Plain[xo.Mark], plainMove](
		super.PlainFactory[xo.Mark](), xo.X,
		Contender{Name: "strong", Budget: mcts.Count(30)},
		Contender{Name: "weak", Budget: mcts.Count(1)},
	).Setup(7, 3)

	counter := &countingListener[plainMove]{}
	listener := NewArenaListener[plainMove](counter, NewLogListener[plainMove](zerolog.Nop()))
	summary, err := arena.Run(context.Background(), listener)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.TotalGames)
	assert.Equal(t, summary.TotalGames, summary.P1Wins+summary.P2Wins+summary.Draws)
	assert.Equal(t, summary.P1Wins+summary.P2Wins, summary.FirstToMoveWins+summary.SecondToMoveWins)
	assert.Equal(t, "strong", summary.P1Name)
	assert.Equal(t, 3, summary.Workers)

	assert.Equal(t, int32(7), counter.games.Load())
	assert.Equal(t, int32(3), counter.workers.Load())
	assert.GreaterOrEqual(t, counter.moves.Load(), int32(7*5))
	assert.Equal(t, summary, counter.summary)
	t.Logf("summary %+v", summary)
}

func TestVersusArenaQuantum(t *testing.T) {
	arena := NewVersusArena[*quantum.Game[xo.Mark], quantum.Move](
		quantum.Factory[xo.Mark](), xo.X,
		Contender{Name: "a", Budget: mcts.Count(2)},
		Contender{Name: "b", Budget: mcts.Count(1)},
	).Setup(2, 1)

	summary, err := arena.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalGames)
}

func TestVersusArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena[*super.Plain[xo.Mark], plainMove](
		super.PlainFactory[xo.Mark](), xo.X,
		Contender{Name: "a", Budget: mcts.Count(1)},
		Contender{Name: "b", Budget: mcts.Count(1)},
	).Setup(4, 2)

	summary, err := arena.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.TotalGames)
}

func TestAgentResult(t *testing.T) {
	assert.Equal(t, VersusPl1Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, true))
	assert.Equal(t, VersusPl2Win, toAgentResult(GameOutcome{FirstPlayerWon: true}, false))
	assert.Equal(t, VersusPl1Win, toAgentResult(GameOutcome{FirstPlayerWon: false}, false))
	assert.Equal(t, VersusDraw, toAgentResult(GameOutcome{IsDraw: true}, true))
}
