// Package variant builds the games selectable by name at runtime.
package variant

import (
	"fmt"
	"slices"

	"github.com/IlikeChooros/go-guttt/pkg/cell"
	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/IlikeChooros/go-guttt/pkg/quantum"
	"github.com/IlikeChooros/go-guttt/pkg/super"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
)

type (
	Game    = *game.Erased[xo.Mark]
	Factory = game.Factory[Game, xo.Mark]
)

// Quantum boards inside a super board
type SuperQuantum = super.Game[*quantum.Game[xo.Mark], quantum.Move, xo.Mark]

var factories = map[string]func() Factory{
	"plain": func() Factory {
		return game.ErasedFactory[*super.Plain[xo.Mark], super.Move[cell.Claim]](super.PlainFactory[xo.Mark]())
	},
	"ultimate": func() Factory {
		return game.ErasedFactory[*super.Ultimate[xo.Mark], super.Move[super.Move[cell.Claim]]](
			super.Factory[*super.Plain[xo.Mark], super.Move[cell.Claim]](super.PlainFactory[xo.Mark]()))
	},
	"quantum": func() Factory {
		return game.ErasedFactory[*quantum.Game[xo.Mark], quantum.Move](quantum.Factory[xo.Mark]())
	},
	"super-quantum": func() Factory {
		return game.ErasedFactory[*SuperQuantum, super.Move[quantum.Move]](
			super.Factory[*quantum.Game[xo.Mark], quantum.Move](quantum.Factory[xo.Mark]()))
	},
	"super-ultimate": func() Factory {
		return Nested(3)
	},
}

// Names of the known variants, sorted
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q, expected one of %v", name, Names())
	}
	return f(), nil
}

// Tic tac toe nested 'depth' times, depth 1 being a plain board of cells
func Nested(depth int) Factory {
	if depth <= 1 {
		return game.ErasedFactory[*super.Plain[xo.Mark], super.Move[cell.Claim]](super.PlainFactory[xo.Mark]())
	}
	return game.ErasedFactory[*super.Game[Game, any, xo.Mark], super.Move[any]](
		super.Factory[Game, any](Nested(depth-1)))
}
