// Package reports validates and unpacks asynchronous generation report
// envelopes delivered by the external generation collaborator.
package reports

import "time"

// StatusCompleted is the only envelope status recognized as success.
const StatusCompleted = "completed"

// Summary describes the content of a delivered report.
type Summary struct {
	SyntheseLength  int  `json:"syntheseLength"`
	CategoriesCount int  `json:"categoriesCount"`
	HasEvolution    bool `json:"hasEvolution"`
	HasConseils     bool `json:"hasConseils"`
}

// Metadata carries provenance for a delivered report.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Summary   Summary   `json:"summary"`
}

// Envelope is the inbound report webhook payload. It is produced once per
// submission, consumed exactly once, and never mutated.
type Envelope struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	HTML     *string   `json:"rapport_html,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
