// Package appreciations builds generation requests for per-student
// appreciation drafting. The external generation collaborator owns the call
// itself; this package only constructs and submits validated requests.
package appreciations

import (
	"encoding/json"
	"slices"
)

// Tone selects the register of a generated appreciation.
type Tone string

// Supported appreciation tones.
const (
	ToneExigeant      Tone = "exigeant"
	ToneNeutre        Tone = "neutre"
	ToneDithyrambique Tone = "dithyrambique"
)

var tones = []Tone{
	ToneExigeant,
	ToneNeutre,
	ToneDithyrambique,
}

// Tones returns the list of supported tones.
func Tones() []Tone {
	return tones
}

// UnmarshalJSON validates that the decoded string is a known tone.
// An unrecognized tone is a caller defect rejected at the HTTP boundary.
func (t *Tone) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Tone(raw)
	if !slices.Contains(tones, v) {
		return ErrInvalidTone
	}
	*t = v
	return nil
}

// ParseTone validates a string as a known tone.
// Returns ErrInvalidTone if the value is not recognized.
func ParseTone(s string) (Tone, error) {
	v := Tone(s)
	if !slices.Contains(tones, v) {
		return "", ErrInvalidTone
	}
	return v, nil
}
