package reports

// InvalidResponseMessage is the uniform user-visible failure message for any
// non-success envelope. The receiver deliberately does not distinguish
// "still processing" from "failed" from "malformed" at this layer; finer
// status handling is a presentation concern.
const InvalidResponseMessage = "Réponse N8N invalide"

// Result is the outcome of receiving one envelope.
type Result struct {
	Success  bool      `json:"success"`
	HTML     string    `json:"htmlReport,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Receive validates an envelope. Success requires both a completed status
// and a non-empty HTML body; every other combination yields the same
// generic failure.
func Receive(env Envelope) Result {
	if env.Status != StatusCompleted || env.HTML == nil || *env.HTML == "" {
		return Result{
			Success: false,
			Error:   InvalidResponseMessage,
		}
	}

	return Result{
		Success:  true,
		HTML:     *env.HTML,
		Metadata: env.Metadata,
	}
}
