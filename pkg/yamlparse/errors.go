package yamlparse

import "fmt"

// MsgMultipleDocuments is reported when a stream holds more than one document
// and multi-document streams are not allowed.
const MsgMultipleDocuments = "expected a single document in the stream, but found another document"

// SyntaxError describes malformed YAML.
type SyntaxError struct {
	// Message is the parser's description of the problem.
	Message string

	// Line is the 1-based line of the problem, or 0 when unknown.
	Line int

	// Column is the 1-based column of the problem, or 0 when unknown.
	Column int
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

// HasPosition reports whether the parser supplied a source line.
func (e *SyntaxError) HasPosition() bool {
	return e.Line > 0
}
