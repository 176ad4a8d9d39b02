package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Erased wraps a game of any move type behind `any` payloads, so that the
// variant and its nesting depth can be picked at runtime. Applying a move of
// the wrong payload type panics with ErrPayloadMismatch.
type Erased[P Player[P]] struct {
	inner erasable[P]
}

type erasable[P Player[P]] interface {
	apply(move any) MoveResult[P]
	isValid(move any) bool
	validMoves() []any
	player() P
	setPlayer(player P)
	clone() erasable[P]
	unwrap() any
}

type typed[G Game[G, M, P], M any, P Player[P]] struct {
	game G
}

func Erase[G Game[G, M, P], M any, P Player[P]](game G) *Erased[P] {
	return &Erased[P]{inner: typed[G, M, P]{game: game}}
}

// Erase every game the factory makes
func ErasedFactory[G Game[G, M, P], M any, P Player[P]](factory Factory[G, P]) Factory[*Erased[P], P] {
	return func(player P, pos Position) *Erased[P] {
		return Erase[G, M, P](factory(player, pos))
	}
}

func (t typed[G, M, P]) apply(move any) MoveResult[P] {
	m, ok := move.(M)
	if !ok {
		panic(Violation(ErrPayloadMismatch, "%T expects %T moves, got %T", t.game, *new(M), move))
	}
	return t.game.Apply(m)
}

func (t typed[G, M, P]) isValid(move any) bool {
	m, ok := move.(M)
	return ok && t.game.IsValid(m)
}

func (t typed[G, M, P]) validMoves() []any {
	return lo.Map(t.game.ValidMoves(), func(m M, _ int) any { return m })
}

func (t typed[G, M, P]) player() P          { return t.game.Player() }
func (t typed[G, M, P]) setPlayer(player P) { t.game.SetPlayer(player) }
func (t typed[G, M, P]) clone() erasable[P] { return typed[G, M, P]{game: t.game.Clone()} }
func (t typed[G, M, P]) unwrap() any        { return t.game }

func (e *Erased[P]) Apply(move any) MoveResult[P] {
	return e.inner.apply(move)
}

func (e *Erased[P]) IsValid(move any) bool {
	return e.inner.isValid(move)
}

func (e *Erased[P]) ValidMoves() []any {
	return e.inner.validMoves()
}

func (e *Erased[P]) Player() P {
	return e.inner.player()
}

func (e *Erased[P]) SetPlayer(player P) {
	e.inner.setPlayer(player)
}

func (e *Erased[P]) Clone() *Erased[P] {
	return &Erased[P]{inner: e.inner.clone()}
}

// The wrapped game
func (e *Erased[P]) Unwrap() any {
	return e.inner.unwrap()
}

func (e *Erased[P]) String() string {
	return fmt.Sprintf("Erased(%T)", e.inner.unwrap())
}

func (e *Erased[P]) Size() (int, int) {
	return SizeOf(e.inner.unwrap())
}

func (e *Erased[P]) Draw(c Canvas, x, y int) {
	DrawAny(c, e.inner.unwrap(), x, y)
}
