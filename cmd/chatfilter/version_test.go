package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chatfilter/chatfilter/internal/testutil"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		json bool
	}{
		{"text output", []string{"version"}, false},
		{"json output", []string{"version", "-j"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args...)
			if result.ExitCode != 0 {
				t.Errorf("exit code = %d, want 0", result.ExitCode)
			}
			if tt.json {
				var info struct {
					Version string `json:"version"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &info); err != nil {
					t.Fatalf("invalid JSON output: %v\n%s", err, result.Stdout)
				}
				if info.Version == "" {
					t.Error("version field is empty")
				}
			} else if !strings.HasPrefix(result.Stdout, "chatfilter ") {
				t.Errorf("unexpected output: %q", result.Stdout)
			}
		})
	}
}
