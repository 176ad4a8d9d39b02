package game

// Tint tells a canvas what a glyph represents
type Tint uint8

const (
	TintPlain Tint = iota
	TintGrid
	TintMark
	TintFaded
	TintHighlight
)

type Style struct {
	Tint Tint
	// Identity key of the player the glyph belongs to, if any
	Key string
}

// Canvas is a grid of glyphs games draw themselves onto
type Canvas interface {
	Set(x, y int, text string, style Style)
}

// Drawable is the optional capability of games, moves and players to draw
// themselves in a fixed size box.
type Drawable interface {
	Size() (w, h int)
	Draw(c Canvas, x, y int)
}

// Size of v, a single glyph when v is not drawable
func SizeOf(v any) (int, int) {
	if d, ok := v.(Drawable); ok {
		return d.Size()
	}
	return 1, 1
}

// Draw v if it can, otherwise leave the canvas untouched
func DrawAny(c Canvas, v any, x, y int) bool {
	d, ok := v.(Drawable)
	if ok {
		d.Draw(c, x, y)
	}
	return ok
}

type restyled struct {
	Canvas
	fn func(Style) Style
}

func (r restyled) Set(x, y int, text string, style Style) {
	r.Canvas.Set(x, y, text, r.fn(style))
}

// Canvas drawing everything as faded, used for finished sub-games
func Faded(c Canvas) Canvas {
	return restyled{c, func(s Style) Style {
		s.Tint = TintFaded
		return s
	}}
}

// Canvas highlighting the plain glyphs, used for the forced sub-games
func Highlighted(c Canvas) Canvas {
	return restyled{c, func(s Style) Style {
		if s.Tint == TintPlain {
			s.Tint = TintHighlight
		}
		return s
	}}
}

func (s Slot[G, P]) Size() (int, int) {
	return SizeOf(s.game)
}

// Playing slots draw the game as is, finished ones fade it and put the
// winner in the middle.
func (s Slot[G, P]) Draw(c Canvas, x, y int) {
	switch s.state {
	case SlotPlaying:
		DrawAny(c, s.game, x, y)
	case SlotWon:
		DrawAny(Faded(c), s.game, x, y)
		w, h := s.Size()
		mw, mh := SizeOf(s.winner)
		DrawAny(c, s.winner, x+(w-mw)/2, y+(h-mh)/2)
	case SlotDraw:
		DrawAny(Faded(c), s.game, x, y)
	}
}
