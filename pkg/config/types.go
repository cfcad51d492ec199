// Package config provides run options for yamlroulette.
package config

// Options controls a validation run.
type Options struct {
	// Parser selects the YAML parser (goccy, yaml.v3).
	Parser string

	// Output selects the report format (text, json).
	Output string

	// AllowMultiDocument accepts streams with more than one document.
	AllowMultiDocument bool

	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string
}
