// Package grading classifies mapped student grades against fixed numeric
// thresholds into a qualitative status.
package grading

import "github.com/lmercier/bulletin/internal/mapping"

// Status is the qualitative standing derived from a grade.
type Status string

// Classification outcomes.
const (
	StatusDifficulty Status = "difficulty"
	StatusExcellence Status = "excellence"
	StatusStandard   Status = "standard"
)

// Thresholds holds the grade cutoffs. Both comparisons are strict: a grade
// exactly on a threshold classifies as standard.
type Thresholds struct {
	Difficulty float64
	Excellence float64
}

// DefaultThresholds are the process-wide cutoffs on the French 0–20 scale.
var DefaultThresholds = Thresholds{
	Difficulty: 10,
	Excellence: 15,
}

// ClassifiedRecord is a StudentGradeRecord augmented with its status.
type ClassifiedRecord struct {
	mapping.StudentGradeRecord
	Status Status `json:"status"`
}

// Classifier applies thresholds to grade records.
type Classifier struct {
	thresholds Thresholds
}

// New creates a Classifier with the given thresholds.
func New(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify derives the qualitative status for one record. Pure; invalid
// numeric input is rejected earlier, by the mapper.
func (c *Classifier) Classify(rec mapping.StudentGradeRecord) ClassifiedRecord {
	status := StatusStandard
	switch {
	case rec.Grade < c.thresholds.Difficulty:
		status = StatusDifficulty
	case rec.Grade > c.thresholds.Excellence:
		status = StatusExcellence
	}

	return ClassifiedRecord{
		StudentGradeRecord: rec,
		Status:             status,
	}
}
