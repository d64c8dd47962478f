package reports_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmercier/bulletin/internal/reports"
)

func strPtr(s string) *string {
	return &s
}

func TestReceive(t *testing.T) {
	tests := []struct {
		name        string
		env         reports.Envelope
		wantSuccess bool
	}{
		{
			name: "completed with html",
			env: reports.Envelope{
				Status: "completed",
				HTML:   strPtr("<html>rapport</html>"),
			},
			wantSuccess: true,
		},
		{
			name: "still processing",
			env: reports.Envelope{
				Status: "processing",
				HTML:   strPtr("<html>partial</html>"),
			},
			wantSuccess: false,
		},
		{
			name: "completed without html",
			env: reports.Envelope{
				Status: "completed",
			},
			wantSuccess: false,
		},
		{
			name: "completed with empty html",
			env: reports.Envelope{
				Status: "completed",
				HTML:   strPtr(""),
			},
			wantSuccess: false,
		},
		{
			name: "failed status",
			env: reports.Envelope{
				Status:  "failed",
				Message: "generation error",
			},
			wantSuccess: false,
		},
		{
			name:        "zero envelope",
			env:         reports.Envelope{},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reports.Receive(tt.env)

			if got.Success != tt.wantSuccess {
				t.Fatalf("success = %v, want %v", got.Success, tt.wantSuccess)
			}

			if tt.wantSuccess {
				if got.HTML != *tt.env.HTML {
					t.Errorf("html = %q", got.HTML)
				}
				if got.Error != "" {
					t.Errorf("error = %q, want empty", got.Error)
				}
			} else {
				if got.Error != reports.InvalidResponseMessage {
					t.Errorf("error = %q, want %q", got.Error, reports.InvalidResponseMessage)
				}
				if got.HTML != "" {
					t.Errorf("html = %q, want empty", got.HTML)
				}
			}
		})
	}
}

func TestReceiveCarriesMetadata(t *testing.T) {
	env := reports.Envelope{
		Status: "completed",
		HTML:   strPtr("<html/>"),
		Metadata: &reports.Metadata{
			Source: "n8n",
			Summary: reports.Summary{
				SyntheseLength:  420,
				CategoriesCount: 3,
				HasEvolution:    true,
			},
		},
	}

	got := reports.Receive(env)
	if got.Metadata == nil {
		t.Fatal("metadata should be carried through")
	}
	if got.Metadata.Source != "n8n" || got.Metadata.Summary.SyntheseLength != 420 {
		t.Errorf("metadata = %+v", got.Metadata)
	}
}

func webhookMux(t *testing.T) *http.ServeMux {
	t.Helper()

	h := reports.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func postWebhook(t *testing.T, mux *http.ServeMux, body string) reports.Result {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/webhook", bytes.NewBufferString(body))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result reports.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return result
}

func TestWebhook(t *testing.T) {
	mux := webhookMux(t)

	t.Run("completed report", func(t *testing.T) {
		result := postWebhook(t, mux, `{"status":"completed","rapport_html":"<html>ok</html>"}`)

		if !result.Success {
			t.Fatalf("success = false: %+v", result)
		}
		if result.HTML != "<html>ok</html>" {
			t.Errorf("html = %q", result.HTML)
		}
	})

	t.Run("fenced payload accepted", func(t *testing.T) {
		body := "```json\n{\"status\":\"completed\",\"rapport_html\":\"<html>fenced</html>\"}\n```"
		result := postWebhook(t, mux, body)

		if !result.Success {
			t.Fatalf("success = false: %+v", result)
		}
		if result.HTML != "<html>fenced</html>" {
			t.Errorf("html = %q", result.HTML)
		}
	})

	t.Run("processing status rejected", func(t *testing.T) {
		result := postWebhook(t, mux, `{"status":"processing"}`)

		if result.Success {
			t.Fatal("success = true, want false")
		}
		if result.Error != reports.InvalidResponseMessage {
			t.Errorf("error = %q, want %q", result.Error, reports.InvalidResponseMessage)
		}
	})

	t.Run("undecodable body yields uniform failure", func(t *testing.T) {
		result := postWebhook(t, mux, "not json at all")

		if result.Success {
			t.Fatal("success = true, want false")
		}
		if result.Error != reports.InvalidResponseMessage {
			t.Errorf("error = %q, want %q", result.Error, reports.InvalidResponseMessage)
		}
	})
}
