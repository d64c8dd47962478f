package database

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds SQLite connection parameters.
type Config struct {
	Path            string `toml:"path"`
	BusyTimeout     string `toml:"busy_timeout"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Path            string
	BusyTimeout     string
	ConnMaxLifetime string
	ConnTimeout     string
}

// BusyTimeoutDuration returns BusyTimeout as a time.Duration.
func (c *Config) BusyTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.BusyTimeout)
	return d
}

// ConnMaxLifetimeDuration returns ConnMaxLifetime as a time.Duration.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration returns ConnTimeout as a time.Duration.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns a modernc.org/sqlite connection string with WAL journaling,
// foreign keys, and the configured busy timeout applied as pragmas.
func (c *Config) Dsn() string {
	busyMs := c.BusyTimeoutDuration().Milliseconds()
	return fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		url.PathEscape(c.Path), busyMs,
	)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.BusyTimeout != "" {
		c.BusyTimeout = overlay.BusyTimeout
	}
	if overlay.ConnMaxLifetime != "" {
		c.ConnMaxLifetime = overlay.ConnMaxLifetime
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = "bulletin.db"
	}
	if c.BusyTimeout == "" {
		c.BusyTimeout = "5s"
	}
	if c.ConnMaxLifetime == "" {
		c.ConnMaxLifetime = "1h"
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Path); v != "" {
		c.Path = v
	}
	if v := os.Getenv(env.BusyTimeout); v != "" {
		c.BusyTimeout = v
	}
	if v := os.Getenv(env.ConnMaxLifetime); v != "" {
		c.ConnMaxLifetime = v
	}
	if v := os.Getenv(env.ConnTimeout); v != "" {
		c.ConnTimeout = v
	}
}

func (c *Config) validate() error {
	if c.Path == "" {
		return fmt.Errorf("path required")
	}
	for name, value := range map[string]string{
		"busy_timeout":      c.BusyTimeout,
		"conn_max_lifetime": c.ConnMaxLifetime,
		"conn_timeout":      c.ConnTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
