package workflow

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lmercier/bulletin/internal/appreciations"
	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/pkg/handlers"
	"github.com/lmercier/bulletin/pkg/routes"
)

var errInvalidUpload = errors.New("invalid bulletin upload")

// Handler provides the HTTP endpoint that runs the ingestion pipeline.
type Handler struct {
	rt            *Runtime
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given runtime and upload size limit.
func NewHandler(rt *Runtime, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		rt:            rt,
		logger:        logger.With("handler", "pipeline"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for pipeline endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/pipeline",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/ingest", Handler: h.Ingest},
		},
	}
}

// Ingest processes a multipart upload containing the bulletin file, the
// template id, and the user's tone and length choices, then runs the
// pipeline to completion before responding.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, errInvalidUpload)
		return
	}

	templateID, err := uuid.Parse(r.FormValue("template_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidUpload)
		return
	}

	tone, err := appreciations.ParseTone(r.FormValue("tone"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	lengthChars, err := strconv.Atoi(r.FormValue("length_chars"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidUpload)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidUpload)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidUpload)
		return
	}

	source, err := resolveSource(r.FormValue("source_type"), header.Filename)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := Execute(r.Context(), h.rt, IngestCommand{
		Data:        data,
		Source:      source,
		TemplateID:  templateID,
		Tone:        tone,
		LengthChars: lengthChars,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// resolveSource prefers the declared source type and falls back to the
// upload's file extension.
func resolveSource(declared, filename string) (extract.SourceType, error) {
	if declared != "" {
		return extract.ParseSourceType(declared)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extract.SourcePDF, nil
	case ".xlsx", ".xlsm", ".xls":
		return extract.SourceExcel, nil
	case ".csv":
		return extract.SourceCSV, nil
	}

	return "", extract.ErrUnsupportedSource
}
