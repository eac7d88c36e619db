package rules

// Policy decides whether a cell is alive in the next generation, given its
// current state and living Moore-neighbor count (0..8). Policies must be
// pure: no state, no side effects, safe to share across cells, generations
// and goroutines.
type Policy func(alive bool, neighbors int) bool

/*
Conway applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func Conway(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// FromBS builds a Policy from explicit birth and survival neighbor counts,
// e.g. FromBS([]int{3, 6}, []int{2, 3}) for HighLife. Counts outside 0..8
// are ignored.
func FromBS(birth, survival []int) Policy {
	var born, survives [9]bool
	for _, n := range birth {
		if n >= 0 && n <= 8 {
			born[n] = true
		}
	}
	for _, n := range survival {
		if n >= 0 && n <= 8 {
			survives[n] = true
		}
	}

	return func(alive bool, neighbors int) bool {
		if neighbors < 0 || neighbors > 8 {
			return false
		}
		if alive {
			return survives[neighbors]
		}
		return born[neighbors]
	}
}
