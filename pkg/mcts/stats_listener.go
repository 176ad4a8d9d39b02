package mcts

import "sync"

type ListenerStats[M any] struct {
	// Candidate just scored, zero value in the stop callback
	Score MoveScore[M]
	// Candidates scored so far
	Scored     int
	Candidates int
	TimeMs     int
	// Best candidate so far
	Best MoveScore[M]
}

// Listener function callback, receives the evaluation progress
type ListenerFunc[M any] func(ListenerStats[M])

type StatsListener[M any] struct {
	mu sync.Mutex

	// called after every scored candidate
	onScored ListenerFunc[M]

	// called once every candidate is scored
	onStop ListenerFunc[M]
}

func NewStatsListener[M any]() *StatsListener[M] {
	return &StatsListener[M]{}
}

// Attach new candidate scored callback, calls are serialized even when the
// candidates are scored in parallel
func (listener *StatsListener[M]) OnScored(onScored ListenerFunc[M]) *StatsListener[M] {
	listener.onScored = onScored
	return listener
}

// Attach new on stop callback
func (listener *StatsListener[M]) OnStop(onStop ListenerFunc[M]) *StatsListener[M] {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener[M]) invokeScored(stats ListenerStats[M]) {
	if listener == nil || listener.onScored == nil {
		return
	}
	listener.mu.Lock()
	defer listener.mu.Unlock()
	listener.onScored(stats)
}

func (listener *StatsListener[M]) invokeStop(stats ListenerStats[M]) {
	if listener == nil || listener.onStop == nil {
		return
	}
	listener.mu.Lock()
	defer listener.mu.Unlock()
	listener.onStop(stats)
}
