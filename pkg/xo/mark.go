// Package xo defines the classic two player family, X and O.
package xo

import "github.com/IlikeChooros/go-guttt/pkg/game"

type Mark uint8

const (
	None Mark = iota
	X
	O
)

// X and O alternate, None stays None
func (m Mark) Next() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return None
}

func (m Mark) Key() string {
	switch m {
	case X:
		return "x"
	case O:
		return "o"
	}
	return "none"
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "-"
}

// Parse a mark from its key or its glyph
func Parse(s string) (Mark, bool) {
	switch s {
	case "x", "X":
		return X, true
	case "o", "O":
		return O, true
	}
	return None, false
}

func (m Mark) Size() (int, int) {
	return 1, 1
}

func (m Mark) Draw(c game.Canvas, x, y int) {
	c.Set(x, y, m.String(), game.Style{Tint: game.TintMark, Key: m.Key()})
}
