package session

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/mcts"
	"github.com/rs/zerolog"
)

// Decider picks a move for player in g, false when it has none
type Decider[G game.Game[G, M, P], M any, P game.Player[P]] func(ctx context.Context, g G, player P) (M, bool)

// Decider running the rollout evaluator with the given budget
func MonteCarlo[G game.Game[G, M, P], M any, P game.Player[P]](budget mcts.Budget, rng *rand.Rand) Decider[G, M, P] {
	return func(_ context.Context, g G, player P) (M, bool) {
		return mcts.BestMove(g, player, rng, budget)
	}
}

// Worker plays the session's match in the background, starting a new one
// some time after the current one ends.
type Worker[G game.Game[G, M, P], M any, P game.Player[P]] struct {
	session *Session[G, M, P]
	decide  Decider[G, M, P]
	// Pause between a finished match and the next one
	IdleDelay time.Duration
	// Stop after this many finished matches, 0 for no limit
	MaxGames int
	logger   zerolog.Logger
}

func NewWorker[G game.Game[G, M, P], M any, P game.Player[P]](session *Session[G, M, P], decide Decider[G, M, P]) *Worker[G, M, P] {
	return &Worker[G, M, P]{
		session:   session,
		decide:    decide,
		IdleDelay: 10 * time.Second,
		logger:    zerolog.Nop(),
	}
}

func (w *Worker[G, M, P]) SetLogger(logger zerolog.Logger) *Worker[G, M, P] {
	w.logger = logger
	return w
}

// Play until ctx is done. A decision in progress is never interrupted,
// cancellation is checked between moves and during the idle delay.
func (w *Worker[G, M, P]) Run(ctx context.Context) error {
	finished := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		g, player, playing := w.session.Snapshot()
		if !playing {
			finished++
			w.session.View(func(m *game.Match[G, M, P]) {
				w.logger.Info().Stringer("outcome", m.Outcome()).Int("game", finished).Msg("match finished")
			})
			if w.MaxGames > 0 && finished >= w.MaxGames {
				return nil
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.IdleDelay):
			}
			w.session.Reset()
			continue
		}

		move, ok := w.decide(ctx, g, player)
		if !ok {
			w.logger.Warn().Str("player", player.Key()).Msg("no move found, restarting")
			w.session.Reset()
			continue
		}

		if _, applied := w.session.TryApply(move); !applied {
			w.logger.Debug().Any("move", move).Msg("stale move dropped")
			continue
		}
		w.logger.Debug().Str("player", player.Key()).Any("move", move).Msg("move played")
	}
}
