package mcts

import (
	"context"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"golang.org/x/sync/errgroup"
)

// Evaluator scores the candidate moves on several goroutines at once,
// each candidate with its own random generator.
type Evaluator[G game.Game[G, M, P], M any, P game.Player[P]] struct {
	Budget   Budget
	NThreads int
	Listener *StatsListener[M]
}

func NewEvaluator[G game.Game[G, M, P], M any, P game.Player[P]](budget Budget) *Evaluator[G, M, P] {
	return &Evaluator[G, M, P]{Budget: budget, NThreads: 1}
}

func (e *Evaluator[G, M, P]) SetThreads(threads int) *Evaluator[G, M, P] {
	e.NThreads = max(1, threads)
	return e
}

func (e *Evaluator[G, M, P]) SetListener(listener *StatsListener[M]) *Evaluator[G, M, P] {
	e.Listener = listener
	return e
}

// Score every valid move of g for the player to move. Once ctx is done the
// running candidates stop after their current rollout, the others are
// skipped, and ctx's error is returned.
func (e *Evaluator[G, M, P]) Search(ctx context.Context, g G) (Scores[M], error) {
	moves := g.ValidMoves()
	player := g.Player()
	scores := make(Scores[M], len(moves))
	timer := _NewTimer()

	progress := make(chan MoveScore[M], len(moves))
	done := make(chan struct{})
	go func() {
		defer close(done)
		stats := ListenerStats[M]{Candidates: len(moves)}
		for score := range progress {
			stats.Score = score
			stats.Scored++
			if stats.Scored == 1 || score.Score > stats.Best.Score {
				stats.Best = score
			}
			stats.TimeMs = timer.Deltatime()
			e.Listener.invokeScored(stats)
		}
	}()

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, e.NThreads))
	for i, move := range moves {
		base := g.Clone()
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			limiter := NewLimiter(e.Budget, len(moves))
			limiter.SetContext(gctx)
			scores[i] = scoreMove(base, move, player, NewRand(i), e.Budget.Opponent, limiter)
			progress <- scores[i]
			return nil
		})
	}

	err := group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	close(progress)
	<-done

	best, _ := scores.Best()
	e.Listener.invokeStop(ListenerStats[M]{
		Scored: len(moves), Candidates: len(moves), TimeMs: timer.Deltatime(), Best: best,
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// Best move of g for the player to move, false when there is none
func (e *Evaluator[G, M, P]) BestMove(ctx context.Context, g G) (M, bool, error) {
	scores, err := e.Search(ctx, g)
	if err != nil {
		var zero M
		return zero, false, err
	}
	best, ok := scores.Best()
	return best.Move, ok, nil
}
