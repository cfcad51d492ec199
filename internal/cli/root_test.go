package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/yamlroulette/pkg/output"
	"github.com/ccollicutt/yamlroulette/pkg/validator"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create yaml file: %v", err)
	}
	return path
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid", []string{writeYAML(t, "key: value\n")}, 0},
		{"empty file", []string{writeYAML(t, "")}, 0},
		{"invalid", []string{writeYAML(t, "key: [unclosed\n")}, 1},
		{"not found", []string{"/no/such/file.yml"}, 1},
		{"no arguments", []string{}, 1},
		{"too many arguments", []string{"a.yml", "b.yml"}, 1},
		{"version", []string{"version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			if code != tt.want {
				t.Errorf("Run(%v) = %d, want %d\nstdout: %s\nstderr: %s", tt.args, code, tt.want, stdout, stderr)
			}
		})
	}
}

func TestRun_WrongArgumentCountShowsUsage(t *testing.T) {
	code, _, stderr := run(t)
	if code != 1 {
		t.Fatalf("Run() = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage: yamlroulette <your-yaml-file>") {
		t.Errorf("stderr missing usage: %q", stderr)
	}
}

func TestRun_CheckFailureKeepsStderrClean(t *testing.T) {
	code, stdout, stderr := run(t, writeYAML(t, "key: [unclosed\n"))
	if code != 1 {
		t.Fatalf("Run() = %d, want 1", code)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
	if !strings.Contains(stdout, "line 1") {
		t.Errorf("stdout missing location:\n%s", stdout)
	}
}

func TestRun_JSONOutput(t *testing.T) {
	code, stdout, _ := run(t, "-o", "json", writeYAML(t, "key: [unclosed\n"))
	if code != 1 {
		t.Fatalf("Run() = %d, want 1", code)
	}

	var report output.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, stdout)
	}
	if report.Outcome.Kind != validator.KindInvalid {
		t.Errorf("Kind = %q, want invalid", report.Outcome.Kind)
	}
	if report.Outcome.Error.Line != 1 {
		t.Errorf("Line = %d, want 1", report.Outcome.Error.Line)
	}
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := run(t, "-q", "--log-level", "debug", writeYAML(t, "key: value\n"))
	if code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	if !strings.Contains(stderr, "parsing") {
		t.Errorf("stderr missing debug log: %q", stderr)
	}
	if strings.Contains(stdout, "parsing") {
		t.Errorf("debug log leaked to stdout: %q", stdout)
	}
}

func TestRun_CompletionIsAFilePath(t *testing.T) {
	chdir(t, t.TempDir())

	code, stdout, _ := run(t, "completion")
	if code != 1 {
		t.Fatalf("Run(completion) = %d, want 1", code)
	}
	if !strings.Contains(stdout, "File not found: completion") {
		t.Errorf("completion was not treated as a file path:\n%s", stdout)
	}
}

func TestRun_FileNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "version"), []byte("key: [unclosed\n"), 0644); err != nil {
		t.Fatalf("Failed to create yaml file: %v", err)
	}

	code, stdout, _ := run(t, "version")
	if code != 0 || !strings.Contains(stdout, "yamlroulette") {
		t.Errorf("Run(version) = %d, %q; want the version subcommand", code, stdout)
	}

	code, stdout, _ = run(t, "./version")
	if code != 1 || !strings.Contains(stdout, "Offending line:") {
		t.Errorf("Run(./version) = %d, want the file to be checked:\n%s", code, stdout)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore Chdir(%q): %v", old, err)
		}
	})
}
