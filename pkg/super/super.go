// Package super composes nine sub-games into one tic tac toe board.
// Winning a sub-game claims its cell, the move made inside a sub-game picks
// the sub-games the opponent is forced to play in next.
package super

import (
	"slices"

	"github.com/IlikeChooros/go-guttt/pkg/cell"
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/samber/lo"
)

// Game of nine sub-games of type G
type Game[G game.Game[G, M, P], M any, P game.Player[P]] struct {
	grid   [game.Cells]game.Slot[G, P]
	player P
	// Cells the next move must be played in, empty once the game is over
	forced []game.Position
}

// Classic tic tac toe
type Plain[P game.Player[P]] = Game[*cell.Cell[P], cell.Claim, P]

// Ultimate tic tac toe, a super game of classic boards
type Ultimate[P game.Player[P]] = Game[*Plain[P], Move[cell.Claim], P]

func New[G game.Game[G, M, P], M any, P game.Player[P]](player P, factory game.Factory[G, P]) *Game[G, M, P] {
	s := &Game[G, M, P]{player: player, forced: game.AllPositions()}
	for _, pos := range s.forced {
		s.grid[pos.ID()] = game.Playing[G, P](factory(player, pos))
	}
	return s
}

// Factory of super games, each built from inner
func Factory[G game.Game[G, M, P], M any, P game.Player[P]](inner game.Factory[G, P]) game.Factory[*Game[G, M, P], P] {
	return func(player P, _ game.Position) *Game[G, M, P] {
		return New[G, M, P](player, inner)
	}
}

func NewPlain[P game.Player[P]](player P) *Plain[P] {
	return New[*cell.Cell[P], cell.Claim, P](player, cell.Factory[P]())
}

func NewUltimate[P game.Player[P]](player P) *Ultimate[P] {
	return New[*Plain[P], Move[cell.Claim], P](player, PlainFactory[P]())
}

func PlainFactory[P game.Player[P]]() game.Factory[*Plain[P], P] {
	return Factory[*cell.Cell[P], cell.Claim, P](cell.Factory[P]())
}

func (s *Game[G, M, P]) Apply(move Move[M]) game.MoveResult[P] {
	if !s.IsValid(move) {
		panic(game.Violation(game.ErrInvalidMove, "%v is not playable, forced cells %v", move, s.forced))
	}

	slot := &s.grid[move.Cell.ID()]
	sub := slot.Game()
	sub.SetPlayer(s.player)
	result := sub.Apply(move.Sub)
	slot.Settle(result.Outcome)
	s.player = result.Next

	outcome := s.Outcome()
	if outcome.Terminal() {
		s.forced = nil
	} else {
		s.forced = s.sanitize(result.Changed, move.Cell)
	}

	var changed []game.Position
	if slot.State() == game.SlotWon {
		changed = []game.Position{move.Cell}
	}
	return game.MoveResult[P]{Changed: changed, Next: s.player, Outcome: outcome}
}

// Forced cells after a move in 'from': the cells the sub-game reported as
// changed (or 'from' itself if it reported none) that are still playing,
// every playing cell if none of them is.
func (s *Game[G, M, P]) sanitize(changed []game.Position, from game.Position) []game.Position {
	if len(changed) == 0 {
		changed = []game.Position{from}
	}

	forced := lo.Filter(lo.Uniq(changed), func(pos game.Position, _ int) bool {
		return s.grid[pos.ID()].IsPlaying()
	})
	if len(forced) == 0 {
		forced = s.playing()
	}
	return forced
}

func (s *Game[G, M, P]) playing() []game.Position {
	return lo.Filter(game.AllPositions(), func(pos game.Position, _ int) bool {
		return s.grid[pos.ID()].IsPlaying()
	})
}

func (s *Game[G, M, P]) IsValid(move Move[M]) bool {
	if !slices.Contains(s.forced, move.Cell) {
		return false
	}

	slot := s.grid[move.Cell.ID()]
	return slot.IsPlaying() && slot.Game().IsValid(move.Sub)
}

// Moves of the forced sub-games, in cell order
func (s *Game[G, M, P]) ValidMoves() []Move[M] {
	moves := make([]Move[M], 0, len(s.forced)*game.Cells)
	for _, pos := range game.AllPositions() {
		if !slices.Contains(s.forced, pos) {
			continue
		}

		for _, sub := range s.grid[pos.ID()].Game().ValidMoves() {
			moves = append(moves, Move[M]{Cell: pos, Sub: sub})
		}
	}
	return moves
}

func (s *Game[G, M, P]) Player() P {
	return s.player
}

// No-op once the game is over
func (s *Game[G, M, P]) SetPlayer(player P) {
	if len(s.forced) > 0 {
		s.player = player
	}
}

func (s *Game[G, M, P]) Clone() *Game[G, M, P] {
	c := &Game[G, M, P]{player: s.player, forced: slices.Clone(s.forced)}
	for i, slot := range s.grid {
		c.grid[i] = slot.WithGame(slot.Game().Clone())
	}
	return c
}

// Outcome derived from the sub-game states: a line of sub-games won by the
// same player wins, no playing sub-game left is a draw.
func (s *Game[G, M, P]) Outcome() game.Outcome[P] {
	for _, line := range game.Lines {
		first, ok := s.grid[line[0]].Winner()
		if !ok {
			continue
		}

		won := lo.EveryBy(line[1:], func(id int) bool {
			winner, ok := s.grid[id].Winner()
			return ok && game.SamePlayer(first, winner)
		})
		if won {
			return game.WonBy(first)
		}
	}

	if lo.SomeBy(s.grid[:], func(slot game.Slot[G, P]) bool { return slot.IsPlaying() }) {
		return game.Ongoing[P]()
	}
	return game.Drawn[P]()
}

func (s *Game[G, M, P]) Slot(pos game.Position) game.Slot[G, P] {
	return s.grid[pos.ID()]
}

// Cells the next move must be played in
func (s *Game[G, M, P]) Forced() []game.Position {
	return slices.Clone(s.forced)
}
