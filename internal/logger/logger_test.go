package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", log.GetLevel())
	}

	log.Debug().Str("path", "config.yml").Msg("parsing")
	if !strings.Contains(buf.String(), "parsing") {
		t.Errorf("debug message not written: %q", buf.String())
	}
}

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	for _, level := range []string{"", "chatty"} {
		log := New(level, &buf)
		if log.GetLevel() != zerolog.WarnLevel {
			t.Errorf("New(%q) level = %v, want warn", level, log.GetLevel())
		}
	}

	quiet := New("", &buf)
	quiet.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message written at warn level: %q", buf.String())
	}
}

func TestValidLevel(t *testing.T) {
	tests := map[string]bool{
		"debug":    true,
		"warn":     true,
		"error":    true,
		"info":     true,
		"":         false,
		"chatty":   false,
		"trace":    false,
		"fatal":    false,
		"panic":    false,
		"disabled": false,
		"1":        false,
	}
	for level, want := range tests {
		if got := ValidLevel(level); got != want {
			t.Errorf("ValidLevel(%q) = %v, want %v", level, got, want)
		}
	}
}
