// Package database provides SQLite connection management with lifecycle coordination.
// The template store is a local file next to the service, not a networked
// database server, so the pool is pinned to a single connection.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lmercier/bulletin/pkg/lifecycle"
)

// System manages the embedded database connection and lifecycle coordination.
type System interface {
	// Connection returns the underlying database connection pool.
	Connection() *sql.DB
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	path        string
	connTimeout time.Duration
}

// New creates a database system with the given configuration.
// It calls sql.Open to validate the DSN and configure pool parameters,
// but does not establish a connection until Start is called.
//
// MaxOpenConns is pinned to 1: the template store performs whole-collection
// read-modify-write transactions and assumes a single writer at a time.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("sqlite", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger.With("system", "database"),
		path:        cfg.Path,
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("opening template store", "path", d.path)

	lc.OnStartup(func() {
		pingCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
		defer cancel()

		if err := d.conn.PingContext(pingCtx); err != nil {
			d.logger.Error("template store ping failed", "error", err)
			return
		}

		d.logger.Info("template store ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing template store")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("template store close failed", "error", err)
			return
		}

		d.logger.Info("template store closed")
	})

	return nil
}
