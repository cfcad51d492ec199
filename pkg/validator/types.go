// Package validator checks a single YAML file for syntactic correctness.
package validator

// Kind is the result of checking a file.
type Kind string

// Outcome kinds.
const (
	KindValid    Kind = "valid"
	KindInvalid  Kind = "invalid"
	KindNotFound Kind = "not_found"
)

// Outcome is the result of validating one input.
type Outcome struct {
	// Kind says whether the input parsed, failed, or was missing.
	Kind Kind `json:"kind"`

	// Path is the file path, or a display name for non-file input.
	Path string `json:"path"`

	// Error describes the syntax problem. Set only for KindInvalid.
	Error *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo locates a syntax problem in the source.
type ErrorInfo struct {
	// Message is the parser's problem description.
	Message string `json:"message"`

	// Line is the 1-based line, or 0 when the parser gave no position.
	Line int `json:"line,omitempty"`

	// Column is the 1-based column, or 0 when unknown.
	Column int `json:"column,omitempty"`

	// SourceLine is the text of the offending line.
	SourceLine string `json:"source_line,omitempty"`

	// HasSourceLine is false when Line is unknown or past the end of input.
	HasSourceLine bool `json:"has_source_line"`
}

// Valid returns true if the input parsed successfully.
func (o *Outcome) Valid() bool {
	return o.Kind == KindValid
}
