package pattern

import (
	"testing"

	"github.com/cellgrid/sparselife/model"
)

func TestPlainTextLoadGlider(t *testing.T) {
	loader := PlainText{Source: Glider}
	cells, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	expected := map[model.Cell]struct{}{
		{Row: 0, Col: 1}: {},
		{Row: 1, Col: 2}: {},
		{Row: 2, Col: 0}: {}, {Row: 2, Col: 1}: {}, {Row: 2, Col: 2}: {},
	}
	if len(cells) != len(expected) {
		t.Fatalf("loaded %d cells, want %d", len(cells), len(expected))
	}
	for c := range expected {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %v", c)
		}
	}
}

func TestPlainTextAcceptsAllAliveAndDeadChars(t *testing.T) {
	loader := PlainText{Source: "10O\n.·*"}
	cells, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	alive := map[model.Cell]struct{}{
		{Row: 0, Col: 0}: {},
		{Row: 0, Col: 2}: {},
		{Row: 1, Col: 2}: {},
	}
	if len(cells) != len(alive) {
		t.Fatalf("loaded %d cells, want %d", len(cells), len(alive))
	}
	for c := range alive {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %v", c)
		}
	}
}

func TestPlainTextColumnsCountRunesNotBytes(t *testing.T) {
	// '·' is two bytes in UTF-8; cells after it must not shift columns.
	loader := PlainText{Source: "···*\n*··*"}
	cells, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	expected := map[model.Cell]struct{}{
		{Row: 0, Col: 3}: {},
		{Row: 1, Col: 0}: {},
		{Row: 1, Col: 3}: {},
	}
	if len(cells) != len(expected) {
		t.Fatalf("loaded %d cells, want %d: %v", len(cells), len(expected), cells)
	}
	for c := range expected {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %v", c)
		}
	}
}

func TestPlainTextRejectsInvalidCharacter(t *testing.T) {
	loader := PlainText{Source: "..*\n.x."}
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for invalid pattern character")
	}
}

func TestJSONLoad(t *testing.T) {
	loader := JSON{Source: []byte(`{"alive_cells": [[0, 1], [2, 3]]}`)}
	cells, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(cells) != 2 {
		t.Fatalf("loaded %d cells, want 2", len(cells))
	}
	for _, c := range []model.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 3}} {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %v", c)
		}
	}
}

func TestJSONRejectsMissingAliveCells(t *testing.T) {
	loader := JSON{Source: []byte(`{"cells": [[0, 0]]}`)}
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for payload without alive_cells")
	}
}

func TestJSONRejectsMalformedPayload(t *testing.T) {
	loader := JSON{Source: []byte(`{"alive_cells": [[0`)}
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestBuiltinPatternsAllParse(t *testing.T) {
	for name, source := range Builtin {
		cells, err := PlainText{Source: source}.Load()
		if err != nil {
			t.Errorf("builtin pattern %q failed to load: %v", name, err)
		}
		if len(cells) == 0 {
			t.Errorf("builtin pattern %q has no living cells", name)
		}
	}
}

func TestSeedAppliesOffset(t *testing.T) {
	board, err := Seed(10, 8, PlainText{Source: Block}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	expected := []model.Cell{{Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 3, Col: 3}, {Row: 3, Col: 4}}
	if board.Population() != len(expected) {
		t.Fatalf("population = %d, want %d", board.Population(), len(expected))
	}
	for _, c := range expected {
		if !board.Alive(c) {
			t.Errorf("expected %v alive after seeding", c)
		}
	}
}

func TestSeedRejectsPatternOutsideGrid(t *testing.T) {
	if _, err := Seed(3, 3, PlainText{Source: Glider}, 2, 2); err == nil {
		t.Fatal("expected error when offset pushes pattern out of bounds")
	}
	if _, err := Seed(5, 5, PlainText{Source: Glider}, -1, 0); err == nil {
		t.Fatal("expected error for negative placement")
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	if cells := Random(10, 10, 0); len(cells) != 0 {
		t.Errorf("density 0 produced %d cells", len(cells))
	}
	if cells := Random(10, 10, 1); len(cells) != 100 {
		t.Errorf("density 1 produced %d cells, want 100", len(cells))
	}
}
