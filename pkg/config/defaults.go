package config

import (
	"os"
	"strconv"

	"github.com/ccollicutt/yamlroulette/internal/logger"
	"github.com/ccollicutt/yamlroulette/pkg/output"
	"github.com/ccollicutt/yamlroulette/pkg/yamlparse"
)

// Default values for options.
const (
	DefaultParser = yamlparse.NameGoccy
	DefaultOutput = output.FormatText
)

// Environment variable names.
const (
	EnvParser        = "YAMLROULETTE_PARSER"
	EnvOutput        = "YAMLROULETTE_OUTPUT"
	EnvMultiDocument = "YAMLROULETTE_MULTI_DOCUMENT"
	EnvLogLevel      = "YAMLROULETTE_LOG_LEVEL"
)

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Parser:   DefaultParser,
		Output:   DefaultOutput,
		LogLevel: logger.DefaultLevel,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the options.
func (o *Options) ApplyEnvironmentOverrides() {
	if parser := os.Getenv(EnvParser); parser != "" {
		o.Parser = parser
	}
	if format := os.Getenv(EnvOutput); format != "" {
		o.Output = format
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		o.LogLevel = level
	}
	// Unparseable booleans are ignored
	if multi, err := strconv.ParseBool(os.Getenv(EnvMultiDocument)); err == nil {
		o.AllowMultiDocument = multi
	}
}
