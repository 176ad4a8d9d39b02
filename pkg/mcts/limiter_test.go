package mcts

import (
	"context"
	"testing"
	"time"
)

func TestLimiterRollouts(t *testing.T) {
	limiter := NewLimiter(Count(3), 10)

	if !limiter.Ok(2) {
		t.Errorf("2 of 3 rollouts: ok=false, reason %s", limiter.StopReason())
	}

	if limiter.Ok(3) {
		t.Error("3 of 3 rollouts: ok=true, want false")
	}

	if limiter.StopReason() != StopRollouts {
		t.Errorf("reason=%s, want Rollouts", limiter.StopReason())
	}
}

func TestLimiterMovetime(t *testing.T) {
	// 100ms shared by 2 candidates
	limiter := NewLimiter(Movetime(100), 2)
	if !limiter.Ok(1000) {
		t.Error("Movetime budget should not count rollouts")
	}

	time.Sleep(time.Millisecond * 51)
	if limiter.Ok(1) {
		t.Error("time share spent: ok=true, want false")
	}

	if limiter.StopReason() != StopMovetime {
		t.Errorf("reason=%s, want Movetime", limiter.StopReason())
	}

	limiter.Reset()
	if !limiter.Ok(1) {
		t.Error("after Reset: ok=false, want true")
	}
}

func TestLimiterInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	limiter := NewLimiter(Count(100), 1)
	limiter.SetContext(ctx)
	cancel()

	if limiter.Ok(1) {
		t.Error("cancelled context: ok=true, want false")
	}

	if got := limiter.StopReason().String(); got != "Interrupt" {
		t.Errorf("reason=%s, want Interrupt", got)
	}

	if got := (StopInterrupt | StopRollouts).String(); got != "Interrupt|Rollouts" {
		t.Errorf("combined reason=%s", got)
	}
}
