package yamlparse

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// yaml.v3 formats syntax errors as "yaml: line N: problem" or "yaml: problem".
var yamlv3LinePattern = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// YAMLv3Parser checks syntax with gopkg.in/yaml.v3.
// yaml.v3 reports a line but never a column.
type YAMLv3Parser struct {
	opts Options
}

// NewYAMLv3Parser creates a yaml.v3-backed parser.
func NewYAMLv3Parser(opts Options) *YAMLv3Parser {
	return &YAMLv3Parser{opts: opts}
}

// Name returns the parser name.
func (p *YAMLv3Parser) Name() string {
	return NameYAMLv3
}

// Parse decodes every document in data into a yaml.Node tree.
func (p *YAMLv3Parser) Parse(ctx context.Context, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	docs := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fromYAMLv3Error(err)
		}

		docs++
		if docs > 1 && !p.opts.AllowMultiDocument {
			return &SyntaxError{
				Message: MsgMultipleDocuments,
				Line:    node.Line,
				Column:  node.Column,
			}
		}
	}
}

func fromYAMLv3Error(err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "yaml: ") {
		return err
	}

	if m := yamlv3LinePattern.FindStringSubmatch(msg); m != nil {
		line, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return &SyntaxError{Message: m[2], Line: line}
		}
	}

	return &SyntaxError{Message: strings.TrimPrefix(msg, "yaml: ")}
}
