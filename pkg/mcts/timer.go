package mcts

import (
	"time"
)

// Deadline of a single candidate, under a time budget
type _Timer struct {
	start    time.Time
	duration time.Duration
}

// Timer without a deadline
func _NewTimer() *_Timer {
	return &_Timer{time.Now(), -1}
}

// Check if this timer has ended
func (t *_Timer) IsEnd() bool {
	return t.duration >= 0 && time.Since(t.start) >= t.duration
}

func (t *_Timer) IsSet() bool {
	return t.duration != -1
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

// Elapsed milliseconds, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}

func (t *_Timer) SetDuration(d time.Duration) {
	if d < 0 {
		t.duration = -1
	} else {
		t.duration = d
	}
}
