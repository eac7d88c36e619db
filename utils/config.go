package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation run loop
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	StopOnStable   bool          `json:"stop_on_stable"`
	HistoryWindow  int           `json:"history_window"`
	Pattern        string        `json:"pattern"`
	PatternFile    string        `json:"pattern_file"`
	PatternFormat  string        `json:"pattern_format"`
	OffsetRow      int           `json:"offset_row"`
	OffsetCol      int           `json:"offset_col"`
	RandomDensity  float64       `json:"random_density"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          40,
		Height:         20,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		StopOnStable:   true,
		HistoryWindow:  5, // catches still lifes and oscillators up to period 5
		Pattern:        "pulsar",
		OffsetRow:      3,
		OffsetCol:      13,
		RandomDensity:  0.15,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
