// Package session keeps a match shared between a background player and
// whoever displays it.
package session

import (
	"sync"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Session owns the current match. All access goes through its lock, a
// worker deciding on a snapshot may find the match moved on once it is done.
type Session[G game.Game[G, M, P], M any, P game.Player[P]] struct {
	mu      sync.Mutex
	match   *game.Match[G, M, P]
	factory game.Factory[G, P]
	first   P
	games   int
}

func New[G game.Game[G, M, P], M any, P game.Player[P]](factory game.Factory[G, P], first P) *Session[G, M, P] {
	return &Session[G, M, P]{
		match:   game.StartMatch[G, M](factory, first),
		factory: factory,
		first:   first,
	}
}

// Copy of the current game, the player to move and whether it is still running
func (s *Session[G, M, P]) Snapshot() (G, P, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.match.Game().Clone(), s.match.Player(), !s.match.Finished()
}

// Apply move if it is still valid, stale moves are dropped
func (s *Session[G, M, P]) TryApply(move M) (game.MoveResult[P], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.match.IsValid(move) {
		return game.MoveResult[P]{}, false
	}
	return s.match.Apply(move), true
}

// Replace the match with a fresh one
func (s *Session[G, M, P]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match = game.StartMatch[G, M](s.factory, s.first)
	s.games++
}

// Run fn with the current match, holding the lock. fn must not keep the match.
func (s *Session[G, M, P]) View(fn func(match *game.Match[G, M, P])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.match)
}

func (s *Session[G, M, P]) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.match.Finished()
}

// Number of matches started after the first one
func (s *Session[G, M, P]) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}
