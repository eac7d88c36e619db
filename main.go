package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// Load configuration - fallback to defaults if the file is missing or unusable
	config, notice := loadConfigOrDefault("config.json")
	if notice != "" {
		fmt.Println(notice)
	}

	board, stepper, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize: %+v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		history       = newHistoryTracker(config.HistoryWindow)
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()
		renderer.Display(board, generation)

		stats.Update(generation, board.Population(), time.Since(lastFrameTime))
		lastFrameTime = frameStart
		displayGameStatus(board, stats)

		if config.StopOnStable && history.Observe(board) {
			fmt.Printf("\nPattern stabilized at generation %d\n", generation)
			break
		}
		if board.Population() == 0 {
			fmt.Printf("\nAll cells died at generation %d\n", generation)
			break
		}
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		time.Sleep(config.FrameRate)

		// Each step produces a fresh board; the previous one is dropped
		board = stepper.Advance(board)
		generation++
	}
}
