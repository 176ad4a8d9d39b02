package super

import (
	"slices"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

// Size of one sub-game box, the largest of them
func (s *Game[G, M, P]) cellSize() (int, int) {
	w, h := 1, 1
	for _, slot := range s.grid {
		sw, sh := slot.Size()
		w, h = max(w, sw), max(h, sh)
	}
	return w, h
}

func (s *Game[G, M, P]) Size() (int, int) {
	w, h := s.cellSize()
	return 3*w + 2, 3*h + 2
}

// Sub-games separated by a grid, the forced ones highlighted
func (s *Game[G, M, P]) Draw(c game.Canvas, x, y int) {
	cw, ch := s.cellSize()
	w, h := s.Size()
	grid := game.Style{Tint: game.TintGrid}

	for i := range h {
		c.Set(x+cw, y+i, "│", grid)
		c.Set(x+2*cw+1, y+i, "│", grid)
	}
	for i := range w {
		glyph := "─"
		if i == cw || i == 2*cw+1 {
			glyph = "┼"
		}
		c.Set(x+i, y+ch, glyph, grid)
		c.Set(x+i, y+2*ch+1, glyph, grid)
	}

	for _, pos := range game.AllPositions() {
		target := c
		if len(s.forced) < game.Cells && slices.Contains(s.forced, pos) {
			target = game.Highlighted(c)
		}
		s.grid[pos.ID()].Draw(target, x+pos.X()*(cw+1), y+pos.Y()*(ch+1))
	}
}
