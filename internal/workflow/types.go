package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmercier/bulletin/internal/appreciations"
	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/internal/grading"
	"github.com/lmercier/bulletin/internal/mapping"
)

// IngestCommand carries one uploaded bulletin plus the user's choices.
type IngestCommand struct {
	Data        []byte
	Source      extract.SourceType
	TemplateID  uuid.UUID
	Tone        appreciations.Tone
	LengthChars int
}

// TableSummary describes the extracted matrix without repeating its cells.
type TableSummary struct {
	Source  extract.SourceType  `json:"source"`
	Columns int                 `json:"columns"`
	Rows    int                 `json:"rows"`
	Ragged  []extract.RaggedRow `json:"ragged,omitempty"`
}

// PipelineResult is the final output of one ingestion run: classified
// records, the per-row mapping failures, and one generation request per
// classified student.
type PipelineResult struct {
	Table       TableSummary               `json:"table"`
	Records     []grading.ClassifiedRecord `json:"records"`
	RowErrors   []mapping.RowError         `json:"row_errors"`
	Requests    []appreciations.Request    `json:"requests"`
	CompletedAt time.Time                  `json:"completed_at"`
}
