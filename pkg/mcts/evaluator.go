package mcts

import (
	"math/rand/v2"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Pick the move of g with the best rollout score for player.
// Returns false when g has no valid moves. g is never mutated.
func BestMove[G game.Game[G, M, P], M any, P game.Player[P]](g G, player P, rng *rand.Rand, budget Budget) (M, bool) {
	best, ok := Evaluate(g, player, rng, budget).Best()
	return best.Move, ok
}

// Score every valid move of g, in valid move order
func Evaluate[G game.Game[G, M, P], M any, P game.Player[P]](g G, player P, rng *rand.Rand, budget Budget) Scores[M] {
	moves := g.ValidMoves()
	scores := make(Scores[M], len(moves))
	for i, move := range moves {
		scores[i] = scoreMove(g, move, player, rng, budget.Opponent, NewLimiter(budget, len(moves)))
	}
	return scores
}

// Run rollouts after 'move' until the limiter stops them,
// there is always at least one rollout.
func scoreMove[G game.Game[G, M, P], M any, P game.Player[P]](g G, move M, player P, rng *rand.Rand, opponent *Budget, limiter *Limiter) MoveScore[M] {
	score := MoveScore[M]{Move: move}
	for {
		score.Score += rollout(g, move, player, rng, opponent)
		score.Rollouts++

		if !limiter.Ok(score.Rollouts) {
			break
		}
	}
	score.StopReason = limiter.StopReason()
	return score
}

// Play 'move' on a copy of g, then keep replying until the game ends.
// Replies are random, or picked by a nested search for the player to move.
func rollout[G game.Game[G, M, P], M any, P game.Player[P]](g G, move M, player P, rng *rand.Rand, opponent *Budget) float64 {
	sim := g.Clone()
	result := sim.Apply(move)

	for !result.Outcome.Terminal() {
		var (
			reply M
			ok    bool
		)
		if opponent != nil {
			reply, ok = BestMove(sim, sim.Player(), rng, *opponent)
		} else if moves := sim.ValidMoves(); len(moves) > 0 {
			reply, ok = moves[rng.IntN(len(moves))], true
		}

		if !ok {
			break
		}
		result = sim.Apply(reply)
	}
	return Reward(result.Outcome, player)
}

// Reward of a finished rollout for player
func Reward[P game.Player[P]](outcome game.Outcome[P], player P) float64 {
	switch outcome.Kind {
	case game.OutcomeWon:
		if game.SamePlayer(outcome.Winner, player) {
			return RewardWin
		}
		return RewardLoss
	case game.OutcomeDraw:
		return RewardDraw
	}
	return RewardIncomplete
}
