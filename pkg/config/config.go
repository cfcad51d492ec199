package config

import (
	"fmt"

	"github.com/ccollicutt/yamlroulette/internal/logger"
	"github.com/ccollicutt/yamlroulette/pkg/output"
	"github.com/ccollicutt/yamlroulette/pkg/yamlparse"
)

// Validate checks options for errors.
func (o *Options) Validate() error {
	if !yamlparse.IsKnown(o.Parser) {
		return fmt.Errorf("parser: invalid parser %q (must be one of %v)", o.Parser, yamlparse.Names())
	}

	if !output.IsKnown(o.Output) {
		return fmt.Errorf("output: invalid format %q (must be text or json)", o.Output)
	}

	if !logger.ValidLevel(o.LogLevel) {
		return fmt.Errorf("log-level: invalid level %q (must be one of %v)", o.LogLevel, logger.Levels)
	}

	return nil
}

// ParserOptions returns the parser settings derived from o.
func (o *Options) ParserOptions() yamlparse.Options {
	return yamlparse.Options{AllowMultiDocument: o.AllowMultiDocument}
}
