package config

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Parser != "goccy" {
		t.Errorf("Parser = %q, want goccy", opts.Parser)
	}
	if opts.Output != "text" {
		t.Errorf("Output = %q, want text", opts.Output)
	}
	if opts.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", opts.LogLevel)
	}
	if opts.AllowMultiDocument {
		t.Error("AllowMultiDocument = true, want false")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() error = %v for defaults", err)
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvParser, "yaml.v3")
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMultiDocument, "true")

	opts := DefaultOptions()
	opts.ApplyEnvironmentOverrides()

	if opts.Parser != "yaml.v3" {
		t.Errorf("Parser = %q, want yaml.v3", opts.Parser)
	}
	if opts.Output != "json" {
		t.Errorf("Output = %q, want json", opts.Output)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", opts.LogLevel)
	}
	if !opts.AllowMultiDocument {
		t.Error("AllowMultiDocument = false, want true")
	}
	if !opts.ParserOptions().AllowMultiDocument {
		t.Error("ParserOptions() dropped AllowMultiDocument")
	}
}

func TestApplyEnvironmentOverrides_Unset(t *testing.T) {
	t.Setenv(EnvParser, "")
	t.Setenv(EnvMultiDocument, "maybe")

	opts := DefaultOptions()
	opts.ApplyEnvironmentOverrides()

	if opts.Parser != DefaultParser {
		t.Errorf("Parser = %q, want default", opts.Parser)
	}
	if opts.AllowMultiDocument {
		t.Error("AllowMultiDocument = true for an unparseable value")
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"unknown parser", func(o *Options) { o.Parser = "libyaml" }},
		{"unknown output", func(o *Options) { o.Output = "xml" }},
		{"unknown log level", func(o *Options) { o.LogLevel = "chatty" }},
		{"empty log level", func(o *Options) { o.LogLevel = "" }},
		{"undocumented log level", func(o *Options) { o.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			if err := opts.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}
