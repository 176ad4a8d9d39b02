package mcts

import "fmt"

// MoveScore is the evaluation of one candidate move
type MoveScore[M any] struct {
	Move M
	// Sum of rollout rewards
	Score      float64
	Rollouts   int
	StopReason StopReason
}

// Mean reward per rollout
func (s MoveScore[M]) AvgScore() float64 {
	if s.Rollouts == 0 {
		return 0
	}
	return s.Score / float64(s.Rollouts)
}

func (s MoveScore[M]) String() string {
	return fmt.Sprintf("%v: %.2f (%d rollouts)", s.Move, s.Score, s.Rollouts)
}

// Scores of every candidate, in valid move order
type Scores[M any] []MoveScore[M]

// First candidate with the highest score
func (s Scores[M]) Best() (MoveScore[M], bool) {
	if len(s) == 0 {
		return MoveScore[M]{}, false
	}

	best := s[0]
	for _, score := range s[1:] {
		if score.Score > best.Score {
			best = score
		}
	}
	return best, true
}

func (s Scores[M]) Rollouts() int {
	total := 0
	for _, score := range s {
		total += score.Rollouts
	}
	return total
}
