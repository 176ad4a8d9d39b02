package game

import "fmt"

// Number of cells on every board level
const Cells = 9

// Position is a cell of a 3x3 board, numbered row by row:
//
//	  a   b   c
//	  0 | 1 | 2   3
//	 -----------
//	  3 | 4 | 5   2
//	 -----------
//	  6 | 7 | 8   1
//
// Positions compare equal when their ids do.
type Position struct {
	id uint8
}

// Build a position from column x and row y, both in [0, 3)
func FromXY(x, y int) Position {
	if x < 0 || x >= 3 || y < 0 || y >= 3 {
		panic(Violation(ErrOutOfBounds, "vector (%d,%d) is out of tic tac toe bounds", x, y))
	}
	return Position{id: uint8(y*3 + x)}
}

// Build a position from its linear id in [0, 9)
func FromID(id int) Position {
	if id < 0 || id >= Cells {
		panic(Violation(ErrOutOfBounds, "cid %d is out of tic tac toe bounds", id))
	}
	return Position{id: uint8(id)}
}

// All cells in id order
func AllPositions() []Position {
	all := make([]Position, Cells)
	for i := range Cells {
		all[i] = Position{id: uint8(i)}
	}
	return all
}

func (p Position) ID() int {
	return int(p.id)
}

func (p Position) X() int {
	return int(p.id % 3)
}

func (p Position) Y() int {
	return int(p.id / 3)
}

// Column letter followed by the row number, counted from the bottom, e.g. b2 is the center
func (p Position) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(p.X()), '3'-byte(p.Y()))
}
