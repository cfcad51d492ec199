// Package yamlparse adapts YAML parsers to a single syntax-checking interface.
//
// Parsers only build a document tree; they never construct application
// types, so checking untrusted input has no side effects.
package yamlparse

import (
	"context"
	"fmt"
	"sort"
)

// Parser names.
const (
	NameGoccy  = "goccy"
	NameYAMLv3 = "yaml.v3"
)

// Parser checks YAML content for syntactic correctness.
type Parser interface {
	// Parse returns nil when data is well-formed YAML. Syntax problems are
	// reported as *SyntaxError; any other error is an internal failure.
	Parse(ctx context.Context, data []byte) error

	// Name returns the parser name (goccy, yaml.v3).
	Name() string
}

// Options controls parser behavior.
type Options struct {
	// AllowMultiDocument accepts streams with more than one document.
	AllowMultiDocument bool
}

var constructors = map[string]func(Options) Parser{
	NameGoccy:  func(opts Options) Parser { return NewGoccyParser(opts) },
	NameYAMLv3: func(opts Options) Parser { return NewYAMLv3Parser(opts) },
}

// New returns the parser registered under name.
func New(name string, opts Options) (Parser, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown parser %q (must be one of %v)", name, Names())
	}
	return ctor(opts), nil
}

// Names returns the registered parser names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is a registered parser.
func IsKnown(name string) bool {
	_, ok := constructors[name]
	return ok
}
