package model

import (
	"crypto/md5"
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Board represents one generation of the simulation: a bounded rectangular
// grid holding a sparse set of living cells. Boards are immutable once
// constructed; advancing a generation produces a new Board.
type Board struct {
	width  int
	height int
	alive  map[Cell]struct{}
}

// NewBoard creates a board with the given dimensions and alive set.
// Every seed cell is validated against the grid bounds; the first
// out-of-bounds cell fails construction.
func NewBoard(width, height int, alive map[Cell]struct{}) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewBoard] invalid grid dimensions: %dx%d", width, height)
	}

	cells := make(map[Cell]struct{}, len(alive))
	for c := range alive {
		if !inBounds(c, width, height) {
			return nil, errors.Errorf("[NewBoard] cell %v is outside the %dx%d grid", c, width, height)
		}
		cells[c] = struct{}{}
	}

	return &Board{width: width, height: height, alive: cells}, nil
}

// WithAlive returns a new board sharing b's dimensions with the given
// alive set. Out-of-bounds cells are dropped rather than rejected; the
// generation stepper uses this for its output, whose cells are in bounds
// by construction of the frontier.
func (b *Board) WithAlive(alive map[Cell]struct{}) *Board {
	cells := make(map[Cell]struct{}, len(alive))
	for c := range alive {
		if b.InBounds(c) {
			cells[c] = struct{}{}
		}
	}
	return &Board{width: b.width, height: b.height, alive: cells}
}

// Width returns the width of the board
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of the board
func (b *Board) Height() int {
	return b.height
}

// Population returns the number of living cells
func (b *Board) Population() int {
	return len(b.alive)
}

// InBounds reports whether c lies on the grid
func (b *Board) InBounds(c Cell) bool {
	return inBounds(c, b.width, b.height)
}

func inBounds(c Cell, width, height int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Alive reports the state of a cell. Cells outside the grid are simply
// dead; no bounds check is needed because the alive set only ever holds
// in-bounds cells.
func (b *Board) Alive(c Cell) bool {
	_, ok := b.alive[c]
	return ok
}

// NeighborCount counts the living Moore neighbors of c. This is the hot
// path of a generation step: one bounds check and one set lookup per
// neighbor, never a grid scan.
func (b *Board) NeighborCount(c Cell) (count int) {
	for _, n := range c.Neighbors() {
		if !b.InBounds(n) {
			continue
		}
		if _, ok := b.alive[n]; ok {
			count++
		}
	}
	return
}

// Frontier returns every cell whose state could change next generation:
// the living cells plus their in-bounds neighbors. A dead cell with no
// living neighbor can never be born, so skipping everything outside the
// frontier keeps a step at O(population) instead of O(width*height).
func (b *Board) Frontier() map[Cell]struct{} {
	frontier := make(map[Cell]struct{}, len(b.alive)*4)
	for c := range b.alive {
		frontier[c] = struct{}{}
		for _, n := range c.Neighbors() {
			if b.InBounds(n) {
				frontier[n] = struct{}{}
			}
		}
	}
	return frontier
}

// Cells returns a copy of the alive set as a slice. Mutating the result
// has no effect on the board.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(b.alive))
	for c := range b.alive {
		cells = append(cells, c)
	}
	return cells
}

// Equal reports whether two boards have the same dimensions and the same
// alive set.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height ||
		len(b.alive) != len(other.alive) {
		return false
	}
	for c := range b.alive {
		if _, ok := other.alive[c]; !ok {
			return false
		}
	}
	return true
}

// Fingerprint returns an MD5 hash of the board dimensions and alive set,
// suitable as a map key for cycle detection. Boards that compare Equal
// always fingerprint identically.
func (b *Board) Fingerprint() string {
	cells := b.Cells()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.width, b.height)
	for _, c := range cells {
		fmt.Fprintf(h, "%d,%d;", c.Row, c.Col)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
