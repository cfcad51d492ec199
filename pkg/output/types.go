// Package output provides formatting for validation results.
package output

import (
	"time"

	"github.com/ccollicutt/yamlroulette/pkg/validator"
)

// Report is the complete validation output.
type Report struct {
	// Outcome is the validation result.
	Outcome *validator.Outcome `json:"outcome"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the validation run.
type Metadata struct {
	// Parser is the name of the parser used.
	Parser string `json:"parser"`

	// CheckedAt is when the validation finished.
	CheckedAt time.Time `json:"checked_at"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a validation outcome.
func NewReport(outcome *validator.Outcome, parser string, started time.Time) *Report {
	now := time.Now()
	return &Report{
		Outcome: outcome,
		Metadata: Metadata{
			Parser:    parser,
			CheckedAt: now,
			Duration:  now.Sub(started),
		},
	}
}

// Valid returns true if the input parsed successfully.
func (r *Report) Valid() bool {
	return r.Outcome != nil && r.Outcome.Valid()
}
