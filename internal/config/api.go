package config

import (
	"fmt"
	"os"

	"github.com/lmercier/bulletin/pkg/formatting"
	"github.com/lmercier/bulletin/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "BULLETIN_CORS_ENABLED",
	Origins:          "BULLETIN_CORS_ORIGINS",
	AllowedMethods:   "BULLETIN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "BULLETIN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "BULLETIN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "BULLETIN_CORS_MAX_AGE",
}

// APIConfig holds API routing, CORS, and upload settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

// MaxUploadSizeBytes parses the configured upload limit.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 10 * 1024 * 1024 // 10MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("BULLETIN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("BULLETIN_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}
