// Package render draws games on a terminal with termenv colors.
package render

import (
	"hash/fnv"
	"strings"

	"github.com/IlikeChooros/go-guttt/pkg/game"
	"github.com/muesli/termenv"
)

type glyph struct {
	text  string
	style game.Style
}

// Canvas is a fixed size glyph grid, implementing game.Canvas.
// Glyphs outside of it are dropped.
type Canvas struct {
	w, h    int
	glyphs  []glyph
	profile termenv.Profile
}

// ANSI colors used for player marks, picked by the player key
var palette = []string{"9", "12", "10", "13", "11", "14"}

func NewCanvas(w, h int, profile termenv.Profile) *Canvas {
	c := &Canvas{w: w, h: h, glyphs: make([]glyph, w*h), profile: profile}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

func (c *Canvas) Clear() {
	for i := range c.glyphs {
		c.glyphs[i] = glyph{text: " "}
	}
}

// Writes text one rune per cell, starting at (x, y)
func (c *Canvas) Set(x, y int, text string, style game.Style) {
	if y < 0 || y >= c.h {
		return
	}
	for i, r := range []rune(text) {
		if x+i < 0 || x+i >= c.w {
			continue
		}
		c.glyphs[y*c.w+x+i] = glyph{text: string(r), style: style}
	}
}

// Text at (x, y), a space if nothing was drawn there
func (c *Canvas) At(x, y int) string {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return ""
	}
	return c.glyphs[y*c.w+x].text
}

func (c *Canvas) color(key string) termenv.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return c.profile.Color(palette[int(h.Sum32()%uint32(len(palette)))])
}

func (c *Canvas) styled(g glyph) string {
	if c.profile == termenv.Ascii {
		return g.text
	}

	s := c.profile.String(g.text)
	if g.style.Key != "" {
		s = s.Foreground(c.color(g.style.Key))
	}

	switch g.style.Tint {
	case game.TintGrid:
		s = s.Foreground(c.profile.Color("8"))
	case game.TintMark:
		s = s.Bold()
	case game.TintFaded:
		s = s.Faint()
	case game.TintHighlight:
		s = s.Background(c.profile.Color("236"))
	}
	return s.String()
}

// Rows of styled glyphs, separated by new lines
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.h {
		for x := range c.w {
			sb.WriteString(c.styled(c.glyphs[y*c.w+x]))
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Draw v on a canvas of its size. Values that cannot draw themselves give an empty string.
func Board(v any, profile termenv.Profile) string {
	d, ok := v.(game.Drawable)
	if !ok {
		return ""
	}
	w, h := d.Size()
	c := NewCanvas(w, h, profile)
	d.Draw(c, 0, 0)
	return c.String()
}
