package super

import (
	"fmt"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Move picks a sub-game and the move to make inside it
type Move[M any] struct {
	Cell game.Position
	Sub  M
}

// Cell notation followed by the sub-move, e.g. b2a3 for an ultimate game
func (m Move[M]) String() string {
	return fmt.Sprintf("%s%v", m.Cell, m.Sub)
}
