package pattern

import (
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/cellgrid/sparselife/model"
)

// Loader produces a proposed alive set from some pattern source. Loaded
// cells are pattern-relative (origin at the pattern's top-left); bounds
// validation happens later, when the cells are placed on a board.
type Loader interface {
	Load() (map[model.Cell]struct{}, error)
}

// PlainText loads a pattern from rows of characters: '1', '*' or 'O' mark
// living cells, '0', '.' or '·' mark dead ones. Any other character fails
// the load.
type PlainText struct {
	Source string
}

// Load parses the plain text source into an alive set.
func (p PlainText) Load() (map[model.Cell]struct{}, error) {
	alive := make(map[model.Cell]struct{})

	for row, line := range strings.Split(strings.TrimSpace(p.Source), "\n") {
		// Columns count runes, not bytes: '·' is multi-byte in UTF-8 and
		// must still advance the column by one.
		col := 0
		for _, char := range strings.TrimSpace(line) {
			switch char {
			case '1', '*', 'O':
				alive[model.Cell{Row: row, Col: col}] = struct{}{}
			case '0', '.', '·':
				// dead cell
			default:
				return nil, errors.Errorf("[PlainText.Load] invalid pattern character %q at row %d col %d", char, row, col)
			}
			col++
		}
	}

	return alive, nil
}

// JSON loads a pattern of the form {"alive_cells": [[row, col], ...]}.
type JSON struct {
	Source []byte
}

// Load parses the JSON source into an alive set.
func (j JSON) Load() (map[model.Cell]struct{}, error) {
	var payload struct {
		AliveCells [][2]int `json:"alive_cells"`
	}
	if err := json.Unmarshal(j.Source, &payload); err != nil {
		return nil, errors.Wrap(err, "[JSON.Load] failed to unmarshal pattern")
	}
	if payload.AliveCells == nil {
		return nil, errors.New("[JSON.Load] pattern does not contain 'alive_cells'")
	}

	alive := make(map[model.Cell]struct{}, len(payload.AliveCells))
	for _, rc := range payload.AliveCells {
		alive[model.Cell{Row: rc[0], Col: rc[1]}] = struct{}{}
	}
	return alive, nil
}

// Random returns an alive set where each cell of a width x height grid
// lives with the given probability.
func Random(width, height int, density float64) map[model.Cell]struct{} {
	alive := make(map[model.Cell]struct{})
	for row := range height {
		for col := range width {
			if rand.Float64() < density {
				alive[model.Cell{Row: row, Col: col}] = struct{}{}
			}
		}
	}
	return alive
}

// Seed loads a pattern, shifts it by (offsetRow, offsetCol) and constructs
// the starting board. A pattern cell landing outside the grid is a fatal
// input error; the core never defends against out-of-bounds seeds, so the
// check happens here.
func Seed(width, height int, loader Loader, offsetRow, offsetCol int) (*model.Board, error) {
	cells, err := loader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[Seed] failed to load pattern")
	}

	placed := make(map[model.Cell]struct{}, len(cells))
	for c := range cells {
		placed[model.Cell{Row: c.Row + offsetRow, Col: c.Col + offsetCol}] = struct{}{}
	}

	board, err := model.NewBoard(width, height, placed)
	if err != nil {
		return nil, errors.Wrapf(err, "[Seed] pattern does not fit a %dx%d grid at offset (%d,%d)", width, height, offsetRow, offsetCol)
	}
	return board, nil
}
