package api

import (
	"net/http"

	"github.com/lmercier/bulletin/internal/config"
	"github.com/lmercier/bulletin/internal/workflow"
	"github.com/lmercier/bulletin/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	pipelineHandler := workflow.NewHandler(
		domain.Pipeline,
		runtime.Logger,
		cfg.API.MaxUploadSizeBytes(),
	)

	routes.Register(
		mux,
		domain.Templates.Handler().Routes(),
		pipelineHandler.Routes(),
		domain.Reports.Routes(),
	)
}
