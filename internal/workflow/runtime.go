// Package workflow orchestrates the bulletin ingestion pipeline: extraction,
// mapping through a stored template, threshold classification, and per-student
// generation request construction.
//
// Every stage runs synchronously on the caller's goroutine. The pipeline
// spawns no workers and defines no cancellation of its own; an abandoned
// operation simply has its result discarded by the caller.
package workflow

import (
	"context"
	"log/slog"

	"github.com/lmercier/bulletin/internal/appreciations"
	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/internal/grading"
	"github.com/lmercier/bulletin/internal/templates"
)

// Submitter posts one built generation request to the external collaborator.
// Satisfied by appreciations.Submitter.
type Submitter interface {
	Submit(ctx context.Context, req appreciations.Request) error
}

// Runtime carries the collaborators one pipeline execution needs.
// Submitter is optional; when nil, built requests are only returned to the
// caller, never posted.
type Runtime struct {
	Logger     *slog.Logger
	Templates  templates.System
	Classifier *grading.Classifier
	Builder    *appreciations.Builder
	Submitter  Submitter
	Extract    extract.Options
	MaxChars   int
}
