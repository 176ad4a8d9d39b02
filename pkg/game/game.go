package game

import (
	"errors"
	"fmt"
)

// Contract violations. Games panic with an error wrapping one of these,
// callers are expected to consult IsValid or ValidMoves before Apply.
var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrPayloadMismatch = errors.New("move payload type mismatch")
	ErrOutOfBounds     = errors.New("position out of bounds")
)

// Wrap a contract error with details, meant to be passed to panic
func Violation(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

// Game is the contract every tic tac toe variant implements.
// G is the implementing type itself (usually a pointer), M its move payload
// and P the player family.
type Game[G any, M any, P Player[P]] interface {
	// Apply a move, panics if it does not pass IsValid
	Apply(move M) MoveResult[P]
	// Pure predicate, agrees with ValidMoves
	IsValid(move M) bool
	// Every legal move in the current state, computed on each call
	ValidMoves() []M
	// Player to move
	Player() P
	// Change the player to move
	SetPlayer(player P)
	// Deep copy, with no memory shared with the receiver
	Clone() G
}

// Factory builds a fresh game for the given starting player. pos is the
// cell the game occupies when nested, non-nested variants ignore it.
type Factory[G any, P Player[P]] func(player P, pos Position) G
