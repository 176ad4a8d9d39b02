package bench

import (
	"context"
	"math/rand/v2"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/mcts"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of games between two evaluator
budgets on any game, alternating who moves first.
*/

type VersusArena[G game.Game[G, M, P], M any, P game.Player[P]] struct {
	VersusArenaStats
	Player1  Contender
	Player2  Contender
	NGames   int
	NThreads int
	Factory  game.Factory[G, P]
	// Player the games start with
	First P
}

func NewVersusArena[G game.Game[G, M, P], M any, P game.Player[P]](
	factory game.Factory[G, P], first P, p1, p2 Contender,
) *VersusArena[G, M, P] {
	return &VersusArena[G, M, P]{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		Factory:  factory,
		First:    first,
	}
}

func (va *VersusArena[G, M, P]) Setup(nGames, nThreads int) *VersusArena[G, M, P] {
	va.NGames = max(0, nGames)
	va.NThreads = max(1, nThreads)
	return va
}

// Play every game, equally distributed between the workers. Stops early when
// ctx is done, the summary then covers the finished games only.
func (va *VersusArena[G, M, P]) Run(ctx context.Context, listener ListenerLike[M]) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = NopListener[M]{}
	}

	group, ctx := errgroup.WithContext(ctx)
	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	offset := 0
	for id := range va.NThreads {
		games := nGames
		if rest > 0 {
			games++
			rest--
		}

		first := offset
		group.Go(func() error {
			return va.worker(ctx, id, first, games, listener)
		})
		offset += games
	}

	err := group.Wait()
	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.NThreads,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
	listener.Summary(summary)
	return summary, err
}

// Plays games [first, first+nGames), player 1 starts the even ones
func (va *VersusArena[G, M, P]) worker(ctx context.Context, id, first, nGames int, listener ListenerLike[M]) error {
	rng := mcts.NewRand(id)
	local := VersusArenaStats{}
	info := VersusWorkerInfo[M]{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   va.Player1.Name,
		P2Name:   va.Player2.Name,
	}

	for i := range nGames {
		p1WentFirst := (first+i)%2 == 0
		starter, replier := va.Player1, va.Player2
		if !p1WentFirst {
			starter, replier = replier, starter
		}

		outcome, moves, err := va.playGame(ctx, starter, replier, rng, listener, info)
		if err != nil {
			return err
		}

		va.record(outcome, p1WentFirst)
		local.record(outcome, p1WentFirst)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		info.FinishedGames = i + 1
		info.Result = toAgentResult(outcome, p1WentFirst)
		info.P1Wins, info.P2Wins, info.Draws = local.P1Wins(), local.P2Wins(), local.Draws()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
	return nil
}

func (va *VersusArena[G, M, P]) playGame(
	ctx context.Context, starter, replier Contender, rng *rand.Rand,
	listener ListenerLike[M], info VersusWorkerInfo[M],
) (GameOutcome, []M, error) {
	g := va.Factory(va.First, game.Position{})
	moves := make([]M, 0, 32)

	for {
		if err := ctx.Err(); err != nil {
			return GameOutcome{}, moves, err
		}

		mover := g.Player()
		side := replier
		if game.SamePlayer(mover, va.First) {
			side = starter
		}

		move, ok := mcts.BestMove(g, mover, rng, side.Budget)
		if !ok {
			return GameOutcome{IsDraw: true}, moves, nil
		}

		result := g.Apply(move)
		moves = append(moves, move)
		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)

		if result.Outcome.Terminal() {
			winner, won := result.Outcome.IsWon()
			if !won {
				return GameOutcome{IsDraw: true}, moves, nil
			}
			return GameOutcome{FirstPlayerWon: game.SamePlayer(winner, va.First)}, moves, nil
		}
	}
}
