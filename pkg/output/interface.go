package output

import (
	"context"
	"fmt"
	"io"
)

// Format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter renders validation reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet enables single-line output.
	Quiet bool
}

// NewFormatter returns the formatter for name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case FormatText:
		return NewTextFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("invalid output format %q (must be text or json)", name)
	}
}

// IsKnown reports whether name is a supported format.
func IsKnown(name string) bool {
	return name == FormatText || name == FormatJSON
}
