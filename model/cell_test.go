package model

import "testing"

func TestNeighborsCountAndDistinct(t *testing.T) {
	for _, c := range []Cell{{5, 5}, {0, 0}, {-2, -3}, {1000000, -1000000}} {
		neighbors := c.Neighbors()
		seen := make(map[Cell]struct{}, 8)
		for _, n := range neighbors {
			if n == c {
				t.Fatalf("neighbors of %v include the cell itself", c)
			}
			seen[n] = struct{}{}
		}
		if len(seen) != 8 {
			t.Fatalf("expected 8 distinct neighbors of %v, got %d", c, len(seen))
		}
	}
}

func TestNeighborsExactSet(t *testing.T) {
	expected := map[Cell]struct{}{
		{4, 4}: {}, {4, 5}: {}, {4, 6}: {},
		{5, 4}: {}, {5, 6}: {},
		{6, 4}: {}, {6, 5}: {}, {6, 6}: {},
	}
	for _, n := range (Cell{Row: 5, Col: 5}).Neighbors() {
		if _, ok := expected[n]; !ok {
			t.Fatalf("unexpected neighbor %v", n)
		}
		delete(expected, n)
	}
	if len(expected) != 0 {
		t.Fatalf("missing neighbors: %v", expected)
	}
}

func TestNeighborsAtOriginGoNegative(t *testing.T) {
	expected := map[Cell]struct{}{
		{-1, -1}: {}, {-1, 0}: {}, {-1, 1}: {},
		{0, -1}: {}, {0, 1}: {},
		{1, -1}: {}, {1, 0}: {}, {1, 1}: {},
	}
	for _, n := range (Cell{}).Neighbors() {
		if _, ok := expected[n]; !ok {
			t.Fatalf("unexpected neighbor %v of origin", n)
		}
	}
}
