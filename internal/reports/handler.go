package reports

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/lmercier/bulletin/pkg/formatting"
	"github.com/lmercier/bulletin/pkg/handlers"
	"github.com/lmercier/bulletin/pkg/routes"
)

// Handler provides the inbound report webhook endpoint.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "reports"),
	}
}

// Routes returns the route group definition for report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/webhook", Handler: h.Webhook},
		},
	}
}

// Webhook receives a report envelope and answers with the receive result.
// Workflow-assembled bodies occasionally arrive fenced in markdown, so the
// payload is decoded leniently; an undecodable body is treated as any other
// non-success envelope.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	env, err := formatting.Parse[Envelope](string(body))
	if err != nil {
		h.logger.Warn("undecodable report envelope", "error", err)
		handlers.RespondJSON(w, http.StatusOK, Result{
			Success: false,
			Error:   InvalidResponseMessage,
		})
		return
	}

	result := Receive(env)
	if !result.Success {
		h.logger.Warn("report rejected", "status", env.Status)
	} else {
		h.logger.Info("report received", "source", sourceOf(env))
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func sourceOf(env Envelope) string {
	if env.Metadata == nil {
		return ""
	}
	return env.Metadata.Source
}
