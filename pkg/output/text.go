package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/yamlroulette/pkg/validator"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return FormatText
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Outcome == nil {
		return fmt.Errorf("report has no outcome")
	}
	if f.opts.Quiet {
		return f.formatQuiet(report.Outcome, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(o *validator.Outcome, w io.Writer) error {
	var err error
	switch o.Kind {
	case validator.KindValid:
		_, err = fmt.Fprintf(w, "%s: valid\n", o.Path)
	case validator.KindNotFound:
		_, err = fmt.Fprintf(w, "%s: file not found\n", o.Path)
	default:
		_, err = fmt.Fprintf(w, "%s%s: %s\n", o.Path, position(o.Error), o.Error.Message)
	}
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	o := report.Outcome
	tw := &textWriter{w: w}
	tw.printf("Checking %s (parser: %s)...\n\n", o.Path, report.Metadata.Parser)

	switch o.Kind {
	case validator.KindValid:
		tw.println("Click! The YAML is valid.")
	case validator.KindNotFound:
		tw.printf("File not found: %s\n", o.Path)
	default:
		f.formatInvalid(o.Error, tw)
		tw.println()
		tw.println("Tip: check your indentation. It's always the indentation.")
	}
	return tw.err
}

func (f *TextFormatter) formatInvalid(info *validator.ErrorInfo, tw *textWriter) {
	tw.println("Bang! The YAML failed to parse.")
	tw.println()
	tw.println("Error details:")
	tw.printf("  %s\n", info.Message)

	if info.Line == 0 {
		return
	}

	tw.println()
	if info.Column > 0 {
		tw.printf("Location: line %d, column %d\n", info.Line, info.Column)
	} else {
		tw.printf("Location: line %d\n", info.Line)
	}

	if !info.HasSourceLine {
		return
	}

	tw.println()
	tw.println("Offending line:")
	tw.printf("  %s\n", info.SourceLine)
	if caret := validator.Caret(info.Column); caret != "" {
		tw.printf("  %s\n", caret)
	}
}

// textWriter keeps the first write error and skips later writes.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err == nil {
		_, t.err = fmt.Fprintf(t.w, format, args...)
	}
}

func (t *textWriter) println(args ...any) {
	if t.err == nil {
		_, t.err = fmt.Fprintln(t.w, args...)
	}
}

// position renders ":line:column" for compiler-style one-line output.
func position(info *validator.ErrorInfo) string {
	switch {
	case info.Line > 0 && info.Column > 0:
		return fmt.Sprintf(":%d:%d", info.Line, info.Column)
	case info.Line > 0:
		return fmt.Sprintf(":%d", info.Line)
	default:
		return ""
	}
}
