package quantum

import (
	"strconv"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

const (
	cellWidth  = 6
	cellHeight = 2
	// spooky marks shown per row of a cell
	perRow = 3
)

func (g *Game[P]) Size() (int, int) {
	return 3*cellWidth + 2, 3*cellHeight + 2
}

func (g *Game[P]) Draw(c game.Canvas, x, y int) {
	w, h := g.Size()
	grid := game.Style{Tint: game.TintGrid}
	for i := range h {
		c.Set(x+cellWidth, y+i, "│", grid)
		c.Set(x+2*cellWidth+1, y+i, "│", grid)
	}
	for i := range w {
		c.Set(x+i, y+cellHeight, "─", grid)
		c.Set(x+i, y+2*cellHeight+1, "─", grid)
	}

	for _, pos := range game.AllPositions() {
		cx, cy := x+pos.X()*(cellWidth+1), y+pos.Y()*(cellHeight+1)
		if mark, ok := g.Mark(pos); ok {
			mark.Draw(c, cx+(cellWidth-2)/2, cy)
			continue
		}

		n := 0
		for _, e := range g.entanglements {
			if !e.Touches(pos) || n >= perRow*cellHeight {
				continue
			}
			style := game.Style{Key: e.Player.Key()}
			if g.pending != nil && e.Equal(*g.pending) {
				style.Tint = game.TintHighlight
			}
			c.Set(cx+(n%perRow)*2, cy+n/perRow, initial(e.Player.Key())+strconv.Itoa(e.Subscript), style)
			n++
		}
	}
}

func (m Measurement[P]) Size() (int, int) {
	return 2, 1
}

// Player glyph followed by the subscript
func (m Measurement[P]) Draw(c game.Canvas, x, y int) {
	w, _ := game.SizeOf(m.Player)
	if !game.DrawAny(c, m.Player, x, y) {
		c.Set(x, y, m.Player.Key(), game.Style{Tint: game.TintMark, Key: m.Player.Key()})
		w = len(m.Player.Key())
	}
	c.Set(x+w, y, strconv.Itoa(m.Subscript), game.Style{Tint: game.TintMark, Key: m.Player.Key()})
}

func initial(key string) string {
	if key == "" {
		return "?"
	}
	return key[:1]
}
