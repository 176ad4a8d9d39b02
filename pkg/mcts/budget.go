package mcts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type BudgetKind int

const (
	// Fixed number of rollouts per candidate move
	BudgetCount BudgetKind = iota
	// Fixed thinking time per decision, split evenly between the candidates
	BudgetTime
)

func (k BudgetKind) String() string {
	if k == BudgetTime {
		return "time"
	}
	return "count"
}

func (k BudgetKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Budget bounds the work the evaluator does for a single decision
type Budget struct {
	Kind BudgetKind
	// Rollouts per candidate, used by BudgetCount
	Count int
	// Milliseconds per decision, used by BudgetTime
	Movetime int
	// Budget of the nested evaluator choosing the replies inside rollouts,
	// replies are uniformly random when nil
	Opponent *Budget `json:",omitempty"`
}

func Count(rollouts int) Budget {
	return Budget{Kind: BudgetCount, Count: max(1, rollouts)}
}

func Movetime(movetime int) Budget {
	return Budget{Kind: BudgetTime, Movetime: max(1, movetime)}
}

// Copy of the budget, with replies chosen by a nested search of the given budget
func (b Budget) SetOpponent(opponent Budget) Budget {
	b.Opponent = &opponent
	return b
}

func (b Budget) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(b)
	return strings.TrimSpace(builder.String())
}

// Time given to each of n candidates
func (b Budget) slice(candidates int) time.Duration {
	return time.Duration(b.Movetime) * time.Millisecond / time.Duration(max(1, candidates))
}

// Parse a comma separated chain of budgets, like "time:300,count:2".
// Each following budget drives the replies of the previous one.
func ParseBudget(s string) (Budget, error) {
	parts := strings.Split(s, ",")
	var (
		budget Budget
		next   *Budget
	)
	for i := len(parts) - 1; i >= 0; i-- {
		kind, value, ok := strings.Cut(strings.TrimSpace(parts[i]), ":")
		if !ok {
			return Budget{}, fmt.Errorf("budget %q: expected kind:value", parts[i])
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return Budget{}, fmt.Errorf("budget %q: value must be a positive integer", parts[i])
		}

		switch kind {
		case "count":
			budget = Count(n)
		case "time":
			budget = Movetime(n)
		default:
			return Budget{}, fmt.Errorf("budget %q: unknown kind %q", parts[i], kind)
		}

		budget.Opponent = next
		current := budget
		next = &current
	}
	return budget, nil
}
