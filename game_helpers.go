package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/cellgrid/sparselife/engine"
	"github.com/cellgrid/sparselife/model"
	"github.com/cellgrid/sparselife/pattern"
	"github.com/cellgrid/sparselife/rules"
	"github.com/cellgrid/sparselife/utils"
)

// loadConfigOrDefault loads the configuration file, falling back to the
// defaults when it cannot be used. The returned notice tells the user why:
// a missing file is the normal case, anything else (such as malformed
// JSON) is reported with the underlying error.
func loadConfigOrDefault(path string) (utils.Config, string) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, ""
	}
	if os.IsNotExist(errors.Cause(err)) {
		return utils.DefaultConfig(), fmt.Sprintf("Using default configuration (%s not found)", path)
	}
	return utils.DefaultConfig(), fmt.Sprintf("Using default configuration (%s is invalid: %v)", path, err)
}

// loaderFunc adapts a plain function to the pattern.Loader interface.
type loaderFunc func() (map[model.Cell]struct{}, error)

func (f loaderFunc) Load() (map[model.Cell]struct{}, error) {
	return f()
}

// buildLoader selects the pattern source from configuration: a pattern
// file, the "random" keyword, or a builtin pattern name.
func buildLoader(config utils.Config) (pattern.Loader, error) {
	if config.PatternFile != "" {
		data, err := os.ReadFile(config.PatternFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[buildLoader] failed to read pattern file: %+v", config.PatternFile)
		}
		if config.PatternFormat == "json" {
			return pattern.JSON{Source: data}, nil
		}
		return pattern.PlainText{Source: string(data)}, nil
	}

	if config.Pattern == "random" {
		return loaderFunc(func() (map[model.Cell]struct{}, error) {
			return pattern.Random(config.Width, config.Height, config.RandomDensity), nil
		}), nil
	}

	source, ok := pattern.Builtin[config.Pattern]
	if !ok {
		return nil, errors.Errorf("[buildLoader] unknown builtin pattern: %+v", config.Pattern)
	}
	return pattern.PlainText{Source: source}, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Board,
	*engine.Stepper,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	loader, err := buildLoader(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	offsetRow, offsetCol := config.OffsetRow, config.OffsetCol
	if config.Pattern == "random" && config.PatternFile == "" {
		// random seeds are generated grid-relative already
		offsetRow, offsetCol = 0, 0
	}

	board, err := pattern.Seed(config.Width, config.Height, loader, offsetRow, offsetCol)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	stepper := engine.NewStepper(rules.Conway)
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return board, stepper, renderer, stats, nil
}

// historyTracker remembers the fingerprints of the last few boards so the
// run loop can stop on still lifes and short-period oscillators. History
// lives here, outside the simulation core.
type historyTracker struct {
	window int
	order  []string
	seen   map[string]struct{}
}

func newHistoryTracker(window int) *historyTracker {
	return &historyTracker{
		window: window,
		seen:   make(map[string]struct{}, window),
	}
}

// Observe records a board state and reports whether it already appeared
// within the window.
func (h *historyTracker) Observe(b *model.Board) bool {
	fingerprint := b.Fingerprint()
	if _, ok := h.seen[fingerprint]; ok {
		return true
	}

	h.order = append(h.order, fingerprint)
	h.seen[fingerprint] = struct{}{}
	if len(h.order) > h.window {
		delete(h.seen, h.order[0])
		h.order = h.order[1:]
	}
	return false
}

// displayGameStatus shows the current game status
func displayGameStatus(board *model.Board, stats *utils.Stats) {
	density := float64(board.Population()) / float64(board.Width()*board.Height()) * 100

	fmt.Printf("Living: %d | Density: %.1f%% | Frontier: %d cells\n",
		board.Population(), density, len(board.Frontier()))
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
