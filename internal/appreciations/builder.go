package appreciations

import "github.com/lmercier/bulletin/internal/grading"

// Default generation parameters applied when the builder is constructed
// without explicit values.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
)

// StudentPayload is the classified student data serialized into the prompt.
type StudentPayload struct {
	Student      string         `json:"student"`
	Subject      string         `json:"subject,omitempty"`
	Grade        float64        `json:"grade"`
	ClassAverage *float64       `json:"class_average,omitempty"`
	Status       grading.Status `json:"status"`
}

// Request is one outbound generation request. The exact wire shape is owned
// by the generation collaborator; this core guarantees all required fields
// are present with validated ranges.
type Request struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	Tone           Tone           `json:"tone"`
	TargetLength   int            `json:"target_length"`
	StudentPayload StudentPayload `json:"student_payload"`
}

// Defaults carries the configured generation parameters. Temperature is a
// pointer so that an explicit zero survives: nil means unset.
type Defaults struct {
	Model       string
	Temperature *float64
	MaxTokens   int
}

// Builder constructs appreciation generation requests.
type Builder struct {
	model       string
	temperature float64
	maxTokens   int
}

// NewBuilder creates a Builder. A nil temperature and a zero token budget
// fall back to the package defaults; the model is whatever the configuration
// names.
func NewBuilder(defaults Defaults) *Builder {
	temperature := DefaultTemperature
	if defaults.Temperature != nil {
		temperature = *defaults.Temperature
	}

	maxTokens := defaults.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Builder{
		model:       defaults.Model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Build constructs a request for one classified record. lengthChars is
// clamped to [0, maxChars] rather than rejected: the origin is a slider
// control whose endpoints are inclusive by construction. Pure; no side
// effects beyond the returned value.
func (b *Builder) Build(
	rec grading.ClassifiedRecord,
	tone Tone,
	lengthChars int,
	maxChars int,
) Request {
	if lengthChars < 0 {
		lengthChars = 0
	}
	if lengthChars > maxChars {
		lengthChars = maxChars
	}

	return Request{
		Model:        b.model,
		Temperature:  b.temperature,
		MaxTokens:    b.maxTokens,
		Tone:         tone,
		TargetLength: lengthChars,
		StudentPayload: StudentPayload{
			Student:      rec.Student,
			Subject:      rec.Subject,
			Grade:        rec.Grade,
			ClassAverage: rec.ClassAverage,
			Status:       rec.Status,
		},
	}
}
