package appreciations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Submitter posts built requests to the generation collaborator's webhook.
// Submission is a separate, optional step after Build; timeouts belong to
// the caller-supplied context, not to this component.
type Submitter struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewSubmitter creates a Submitter targeting the given webhook URL.
func NewSubmitter(url string, logger *slog.Logger) *Submitter {
	return &Submitter{
		url:    url,
		client: &http.Client{},
		logger: logger.With("system", "appreciations"),
	}
}

// Submit sends one generation request. The collaborator replies
// asynchronously via the report webhook, so only transport-level acceptance
// is checked here.
func (s *Submitter) Submit(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrSubmitFailed, resp.StatusCode)
	}

	s.logger.Info(
		"generation request submitted",
		"student", req.StudentPayload.Student,
		"tone", req.Tone,
	)
	return nil
}
