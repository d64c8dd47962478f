package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lmercier/bulletin/internal/appreciations"
)

const (
	EnvGenerationModel       = "BULLETIN_GENERATION_MODEL"
	EnvGenerationTemperature = "BULLETIN_GENERATION_TEMPERATURE"
	EnvGenerationMaxTokens   = "BULLETIN_GENERATION_MAX_TOKENS"
	EnvGenerationMaxChars    = "BULLETIN_GENERATION_MAX_CHARS"
	EnvGenerationWebhookURL  = "BULLETIN_GENERATION_WEBHOOK_URL"
)

// GenerationConfig holds appreciation generation parameters.
// MaxChars bounds the target length slider; WebhookURL is the generation
// collaborator's inbound endpoint. Temperature is a pointer so a deliberate
// zero is distinguishable from an absent key.
type GenerationConfig struct {
	Model       string   `toml:"model"`
	Temperature *float64 `toml:"temperature"`
	MaxTokens   int      `toml:"max_tokens"`
	MaxChars    int      `toml:"max_chars"`
	WebhookURL  string   `toml:"webhook_url"`
}

// Defaults returns the configured builder defaults.
func (c *GenerationConfig) Defaults() appreciations.Defaults {
	return appreciations.Defaults{
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GenerationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GenerationConfig) Merge(overlay *GenerationConfig) {
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != nil {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.MaxChars != 0 {
		c.MaxChars = overlay.MaxChars
	}
	if overlay.WebhookURL != "" {
		c.WebhookURL = overlay.WebhookURL
	}
}

func (c *GenerationConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == nil {
		temperature := appreciations.DefaultTemperature
		c.Temperature = &temperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = appreciations.DefaultMaxTokens
	}
	if c.MaxChars == 0 {
		c.MaxChars = 500
	}
}

func (c *GenerationConfig) loadEnv() {
	if v := os.Getenv(EnvGenerationModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGenerationTemperature); v != "" {
		if temperature, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = &temperature
		}
	}
	if v := os.Getenv(EnvGenerationMaxTokens); v != "" {
		if tokens, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = tokens
		}
	}
	if v := os.Getenv(EnvGenerationMaxChars); v != "" {
		if chars, err := strconv.Atoi(v); err == nil {
			c.MaxChars = chars
		}
	}
	if v := os.Getenv(EnvGenerationWebhookURL); v != "" {
		c.WebhookURL = v
	}
}

func (c *GenerationConfig) validate() error {
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("temperature out of range: %v", *c.Temperature)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive: %d", c.MaxTokens)
	}
	if c.MaxChars < 1 {
		return fmt.Errorf("max_chars must be positive: %d", c.MaxChars)
	}
	return nil
}
