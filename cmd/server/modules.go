package main

import (
	"fmt"
	"net/http"

	"github.com/lmercier/bulletin/internal/api"
	"github.com/lmercier/bulletin/internal/config"
	"github.com/lmercier/bulletin/internal/infrastructure"
	"github.com/lmercier/bulletin/pkg/handlers"
	"github.com/lmercier/bulletin/pkg/module"
)

// Modules holds the prefix-mounted HTTP modules served by the router.
type Modules struct {
	API *module.Module
}

// NewModules constructs all HTTP modules from the shared infrastructure.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api module init failed: %w", err)
	}

	return &Modules{API: apiModule}, nil
}

// Mount registers each module on the router by its prefix.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

// buildRouter creates the root router with native health and readiness endpoints.
func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	return router
}
