package templates

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lmercier/bulletin/pkg/handlers"
	"github.com/lmercier/bulletin/pkg/routes"
)

// Handler provides HTTP endpoints for template operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "templates"),
	}
}

// Routes returns the route group definition for template endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/templates",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Save},
			{Method: "POST", Pattern: "/{id}/touch", Handler: h.Touch},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns every stored template.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, templates)
}

// Find returns a single template by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTemplate)
		return
	}

	tpl, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tpl)
}

// Save creates or replaces a template from the JSON body. A body without an
// id creates a new template; a body with an id of an existing template fully
// replaces it while preserving its creation timestamp.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var tpl MappingTemplate
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTemplate)
		return
	}

	saved, err := h.sys.Save(r.Context(), tpl)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, saved)
}

// Touch records a template application by bumping only its last-used timestamp.
func (h *Handler) Touch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTemplate)
		return
	}

	if err := h.sys.TouchLastUsed(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a template. Deleting a nonexistent id is an idempotent no-op
// reported as not found.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTemplate)
		return
	}

	existed, err := h.sys.Delete(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if !existed {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
