package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lmercier/bulletin/internal/grading"
)

const (
	EnvGradingDifficulty = "BULLETIN_GRADING_DIFFICULTY_THRESHOLD"
	EnvGradingExcellence = "BULLETIN_GRADING_EXCELLENCE_THRESHOLD"
)

// GradingConfig holds the classification thresholds. They are process-wide
// constants of the service, exposed as configuration only so tests can
// override them.
type GradingConfig struct {
	DifficultyThreshold float64 `toml:"difficulty_threshold"`
	ExcellenceThreshold float64 `toml:"excellence_threshold"`
}

// Thresholds returns the configured grading thresholds.
func (c *GradingConfig) Thresholds() grading.Thresholds {
	return grading.Thresholds{
		Difficulty: c.DifficultyThreshold,
		Excellence: c.ExcellenceThreshold,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GradingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GradingConfig) Merge(overlay *GradingConfig) {
	if overlay.DifficultyThreshold != 0 {
		c.DifficultyThreshold = overlay.DifficultyThreshold
	}
	if overlay.ExcellenceThreshold != 0 {
		c.ExcellenceThreshold = overlay.ExcellenceThreshold
	}
}

func (c *GradingConfig) loadDefaults() {
	if c.DifficultyThreshold == 0 {
		c.DifficultyThreshold = grading.DefaultThresholds.Difficulty
	}
	if c.ExcellenceThreshold == 0 {
		c.ExcellenceThreshold = grading.DefaultThresholds.Excellence
	}
}

func (c *GradingConfig) loadEnv() {
	if v := os.Getenv(EnvGradingDifficulty); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.DifficultyThreshold = threshold
		}
	}
	if v := os.Getenv(EnvGradingExcellence); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.ExcellenceThreshold = threshold
		}
	}
}

func (c *GradingConfig) validate() error {
	if c.DifficultyThreshold >= c.ExcellenceThreshold {
		return fmt.Errorf(
			"difficulty_threshold %v must be below excellence_threshold %v",
			c.DifficultyThreshold, c.ExcellenceThreshold,
		)
	}
	return nil
}
