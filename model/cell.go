package model

import "fmt"

// Cell is an immutable (row, column) pair on the integer plane.
// It is a comparable value type, so it can be used directly as a map key
// with O(1) average-case lookups.
type Cell struct {
	Row int
	Col int
}

// Neighbors returns the 8 cells of the Moore neighborhood around c.
// The results are not clamped to any grid; coordinates may be negative
// near the origin, and bounds filtering is the caller's responsibility.
func (c Cell) Neighbors() [8]Cell {
	return [8]Cell{
		{c.Row - 1, c.Col - 1}, {c.Row - 1, c.Col}, {c.Row - 1, c.Col + 1},
		{c.Row, c.Col - 1}, {c.Row, c.Col + 1},
		{c.Row + 1, c.Col - 1}, {c.Row + 1, c.Col}, {c.Row + 1, c.Col + 1},
	}
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
