package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/yamlroulette/pkg/yamlparse"
)

// Validator checks YAML files with a configured parser.
// It keeps no state between calls.
type Validator struct {
	parser yamlparse.Parser
	log    zerolog.Logger
}

// Option configures the Validator.
type Option func(*Validator)

// WithParser sets the parser (default goccy).
func WithParser(p yamlparse.Parser) Option {
	return func(v *Validator) {
		if p != nil {
			v.parser = p
		}
	}
}

// WithLogger sets the diagnostic logger (default discards).
func WithLogger(log zerolog.Logger) Option {
	return func(v *Validator) {
		v.log = log
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		parser: yamlparse.NewGoccyParser(yamlparse.Options{}),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate reads the file at path and checks it.
// A missing file is an outcome, not an error. Other read failures and
// parser failures that are not syntax errors are returned.
func (v *Validator) Validate(ctx context.Context, path string) (*Outcome, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.log.Debug().Str("path", path).Msg("file not found")
			return &Outcome{Kind: KindNotFound, Path: path}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return v.ValidateBytes(ctx, path, data)
}

// ValidateBytes checks data, reporting it under name.
func (v *Validator) ValidateBytes(ctx context.Context, name string, data []byte) (*Outcome, error) {
	v.log.Debug().
		Str("path", name).
		Int("bytes", len(data)).
		Str("parser", v.parser.Name()).
		Msg("parsing")

	err := v.parser.Parse(ctx, data)
	if err == nil {
		v.log.Debug().Str("path", name).Msg("valid")
		return &Outcome{Kind: KindValid, Path: name}, nil
	}

	var synErr *yamlparse.SyntaxError
	if !errors.As(err, &synErr) {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	info := &ErrorInfo{
		Message: synErr.Message,
		Line:    synErr.Line,
		Column:  synErr.Column,
	}
	if synErr.HasPosition() {
		info.SourceLine, info.HasSourceLine = SourceLine(string(data), synErr.Line)
	}

	v.log.Debug().
		Str("path", name).
		Int("line", info.Line).
		Int("column", info.Column).
		Str("problem", info.Message).
		Msg("invalid")

	return &Outcome{Kind: KindInvalid, Path: name, Error: info}, nil
}

// SourceLine returns the 1-based line of content, split on newlines.
// It returns false when line is outside the content.
func SourceLine(content string, line int) (string, bool) {
	lines := strings.Split(content, "\n")
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[idx], "\r"), true
}

// Caret returns a marker pointing at the 1-based column: column-1 spaces
// followed by "^". It returns "" when the column is unknown.
func Caret(column int) string {
	if column < 1 {
		return ""
	}
	return strings.Repeat(" ", column-1) + "^"
}
