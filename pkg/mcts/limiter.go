package mcts

import (
	"context"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Context cancelled
	StopMovetime  StopReason = 2 // Time share of the candidate spent
	StopRollouts  StopReason = 4 // Rollout count reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopRollouts, "Rollouts"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Limiter decides when a single candidate move has had enough rollouts
type Limiter struct {
	budget     Budget
	candidates int
	Timer      *_Timer
	reason     StopReason
	ctx        context.Context
}

// Limiter for one of 'candidates' moves sharing the budget
func NewLimiter(budget Budget, candidates int) *Limiter {
	limiter := &Limiter{
		budget:     budget,
		candidates: max(1, candidates),
		Timer:      _NewTimer(),
		ctx:        context.Background(),
	}
	limiter.Reset()
	return limiter
}

// Start measuring the time share from now
func (l *Limiter) Reset() {
	if l.budget.Kind == BudgetTime {
		l.Timer.SetDuration(l.budget.slice(l.candidates))
	} else {
		l.Timer.SetDuration(-1)
	}
	l.Timer.Reset()
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Elapsed milliseconds since the last Reset
func (l *Limiter) Elapsed() int {
	return l.Timer.Deltatime()
}

func toMask(val bool, flag StopReason) StopReason {
	if val {
		return flag
	}
	return StopNone
}

func (l *Limiter) LimitMask(rollouts int) StopReason {
	mask := toMask(l.ctx.Err() != nil, StopInterrupt)
	switch l.budget.Kind {
	case BudgetTime:
		mask |= toMask(l.Timer.IsEnd(), StopMovetime)
	case BudgetCount:
		mask |= toMask(rollouts >= l.budget.Count, StopRollouts)
	}
	return mask
}

// Whether another rollout should run, records the stop reason otherwise
func (l *Limiter) Ok(rollouts int) bool {
	l.reason = l.LimitMask(rollouts)
	return l.reason == StopNone
}
