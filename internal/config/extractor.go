package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lmercier/bulletin/internal/extract"
)

const (
	EnvExtractorMergeThreshold = "BULLETIN_EXTRACTOR_MERGE_THRESHOLD"
	EnvExtractorIgnore         = "BULLETIN_EXTRACTOR_IGNORE"
)

// ExtractorConfig holds table extraction tuning.
//
// MergeThreshold is the horizontal gap, in points, beyond which adjacent PDF
// text fragments become separate columns. Ignore lists regular expressions
// applied to every fragment so institutional boilerplate never enters the
// table.
type ExtractorConfig struct {
	MergeThreshold float64  `toml:"merge_threshold"`
	Ignore         []string `toml:"ignore"`
}

// Options compiles the config into extraction options.
// Valid only after Finalize has passed.
func (c *ExtractorConfig) Options() extract.Options {
	patterns := make([]*regexp.Regexp, 0, len(c.Ignore))
	for _, p := range c.Ignore {
		patterns = append(patterns, regexp.MustCompile(p))
	}
	return extract.Options{
		MergeThreshold: c.MergeThreshold,
		Ignore:         patterns,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ExtractorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ExtractorConfig) Merge(overlay *ExtractorConfig) {
	if overlay.MergeThreshold != 0 {
		c.MergeThreshold = overlay.MergeThreshold
	}
	if overlay.Ignore != nil {
		c.Ignore = overlay.Ignore
	}
}

func (c *ExtractorConfig) loadDefaults() {
	if c.MergeThreshold == 0 {
		c.MergeThreshold = extract.DefaultMergeThreshold
	}
}

func (c *ExtractorConfig) loadEnv() {
	if v := os.Getenv(EnvExtractorMergeThreshold); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.MergeThreshold = threshold
		}
	}
	if v := os.Getenv(EnvExtractorIgnore); v != "" {
		patterns := strings.Split(v, "\n")
		c.Ignore = make([]string, 0, len(patterns))
		for _, p := range patterns {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				c.Ignore = append(c.Ignore, trimmed)
			}
		}
	}
}

func (c *ExtractorConfig) validate() error {
	if c.MergeThreshold <= 0 {
		return fmt.Errorf("merge_threshold must be positive: %v", c.MergeThreshold)
	}
	for _, p := range c.Ignore {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	return nil
}
