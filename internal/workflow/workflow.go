package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/internal/grading"
	"github.com/lmercier/bulletin/internal/mapping"
)

// Execute runs the ingestion pipeline for one bulletin. Extraction and
// template mismatch failures are fatal to the call; per-row mapping failures
// are collected into the result alongside partial success.
func Execute(ctx context.Context, rt *Runtime, cmd IngestCommand) (*PipelineResult, error) {
	table, err := extract.Extract(cmd.Data, cmd.Source, rt.Extract)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	rt.Logger.InfoContext(
		ctx, "table extracted",
		"source", table.Source,
		"columns", table.Width(),
		"rows", len(table.Rows),
		"ragged", len(table.Ragged),
	)

	tpl, err := rt.Templates.Find(ctx, cmd.TemplateID)
	if err != nil {
		return nil, err
	}

	mapped, err := mapping.Map(table, tpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapFailed, err)
	}

	// The template was applied; record it. A failed touch never fails the run.
	if err := rt.Templates.TouchLastUsed(ctx, tpl.ID); err != nil {
		rt.Logger.WarnContext(ctx, "touch last-used failed", "id", tpl.ID, "error", err)
	}

	rt.Logger.InfoContext(
		ctx, "rows mapped",
		"template", tpl.ID,
		"records", len(mapped.Records),
		"row_errors", len(mapped.RowErrors),
	)

	classified := make([]grading.ClassifiedRecord, 0, len(mapped.Records))
	for _, rec := range mapped.Records {
		classified = append(classified, rt.Classifier.Classify(rec))
	}

	result := &PipelineResult{
		Table: TableSummary{
			Source:  table.Source,
			Columns: table.Width(),
			Rows:    len(table.Rows),
			Ragged:  table.Ragged,
		},
		Records:     classified,
		RowErrors:   mapped.RowErrors,
		CompletedAt: time.Now(),
	}

	for _, rec := range classified {
		req := rt.Builder.Build(rec, cmd.Tone, cmd.LengthChars, rt.MaxChars)
		result.Requests = append(result.Requests, req)

		// A failed submission never fails the run; the caller still receives
		// the built request.
		if rt.Submitter != nil {
			if err := rt.Submitter.Submit(ctx, req); err != nil {
				rt.Logger.WarnContext(
					ctx, "generation request submission failed",
					"student", req.StudentPayload.Student,
					"error", err,
				)
			}
		}
	}

	return result, nil
}
