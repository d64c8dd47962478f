package api

import (
	"github.com/lmercier/bulletin/internal/appreciations"
	"github.com/lmercier/bulletin/internal/grading"
	"github.com/lmercier/bulletin/internal/reports"
	"github.com/lmercier/bulletin/internal/templates"
	"github.com/lmercier/bulletin/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Templates templates.System
	Pipeline  *workflow.Runtime
	Reports   *reports.Handler
}

// NewDomain creates all domain systems from the API runtime. When a webhook
// URL is configured, the pipeline posts each built request to it.
func NewDomain(runtime *Runtime) *Domain {
	cfg := runtime.Config

	templatesSystem := templates.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	pipeline := &workflow.Runtime{
		Logger:     runtime.Logger,
		Templates:  templatesSystem,
		Classifier: grading.New(cfg.Grading.Thresholds()),
		Builder:    appreciations.NewBuilder(cfg.Generation.Defaults()),
		Extract:    cfg.Extractor.Options(),
		MaxChars:   cfg.Generation.MaxChars,
	}

	if cfg.Generation.WebhookURL != "" {
		pipeline.Submitter = appreciations.NewSubmitter(cfg.Generation.WebhookURL, runtime.Logger)
	}

	return &Domain{
		Templates: templatesSystem,
		Pipeline:  pipeline,
		Reports:   reports.NewHandler(runtime.Logger),
	}
}
