package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cellgrid/sparselife/model"
	"github.com/cellgrid/sparselife/rules"
)

// Below this many frontier cells the goroutine fan-out costs more than the
// rule evaluation it spreads.
const parallelThreshold = 4096

// Stepper advances a board one generation at a time under a fixed rule
// policy. It holds no board state of its own; every call takes a board and
// returns a new one, leaving the input untouched.
type Stepper struct {
	policy    rules.Policy
	threshold int
}

// NewStepper returns a stepper driven by the given policy.
func NewStepper(policy rules.Policy) *Stepper {
	return &Stepper{policy: policy, threshold: parallelThreshold}
}

// Advance computes the next generation of b. Only the frontier (living
// cells and their in-bounds neighbors) is evaluated; everything else is
// dead now and stays dead. The result has b's dimensions and an alive set
// drawn entirely from the frontier, so its bounds invariant holds without
// rechecking.
func (s *Stepper) Advance(b *model.Board) *model.Board {
	candidates := b.Frontier()
	if len(candidates) < s.threshold {
		return s.advanceSerial(b, candidates)
	}
	return s.advanceParallel(b, candidates)
}

func (s *Stepper) advanceSerial(b *model.Board, candidates map[model.Cell]struct{}) *model.Board {
	next := make(map[model.Cell]struct{}, len(candidates)/4)
	for c := range candidates {
		if s.policy(b.Alive(c), b.NeighborCount(c)) {
			next[c] = struct{}{}
		}
	}
	return b.WithAlive(next)
}

// advanceParallel splits the frontier across one worker per CPU. Workers
// only read the input board and write to their own survivor slice, so no
// locking is needed; the final set union makes the result independent of
// worker scheduling.
func (s *Stepper) advanceParallel(b *model.Board, candidates map[model.Cell]struct{}) *model.Board {
	cells := make([]model.Cell, 0, len(candidates))
	for c := range candidates {
		cells = append(cells, c)
	}

	var (
		eg             errgroup.Group
		numWorkers     = runtime.NumCPU()
		cellsPerWorker = (len(cells) + numWorkers - 1) / numWorkers // Ceiling division
		survivors      = make([][]model.Cell, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			chunk := make([]model.Cell, 0, end-start)
			for _, c := range cells[start:end] {
				if s.policy(b.Alive(c), b.NeighborCount(c)) {
					chunk = append(chunk, c)
				}
			}
			survivors[i] = chunk
			return nil
		})
	}

	_ = eg.Wait() // workers never return errors

	next := make(map[model.Cell]struct{}, len(cells)/4)
	for _, chunk := range survivors {
		for _, c := range chunk {
			next[c] = struct{}{}
		}
	}
	return b.WithAlive(next)
}
