package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lmercier/bulletin/internal/config"
	"github.com/lmercier/bulletin/pkg/lifecycle"
)

type httpServer struct {
	server *http.Server
	logger *slog.Logger
	cfg    *config.ServerConfig
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
		},
		logger: logger.With("system", "http"),
		cfg:    cfg,
	}
}

// Start begins serving in a goroutine and registers a shutdown hook that
// drains in-flight requests within the configured shutdown timeout.
func (h *httpServer) Start(lc *lifecycle.Coordinator) error {
	go func() {
		h.logger.Info("listening", "addr", h.server.Addr)

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("http server failed", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		h.logger.Info("draining http server")

		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.ShutdownTimeoutDuration())
		defer cancel()

		if err := h.server.Shutdown(ctx); err != nil {
			h.logger.Error("http shutdown failed", "error", err)
			return
		}

		h.logger.Info("http server stopped")
	})

	return nil
}
