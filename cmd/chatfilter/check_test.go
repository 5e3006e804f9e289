package main

import (
	"strings"
	"testing"

	"github.com/chatfilter/chatfilter/internal/testutil"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		wantStdout   string
	}{
		{
			name:         "valid membership filter",
			args:         []string{"check", "-r", "membership", `role = "ROLE_MEMBER"`},
			wantExitCode: ExitSuccess,
			wantStdout:   "role",
		},
		{
			name:         "normalized or groups",
			args:         []string{"check", "-r", "membership", `role = "ROLE_MEMBER" OR role = "ROLE_MANAGER"`},
			wantExitCode: ExitSuccess,
			wantStdout:   "ROLE_MANAGER",
		},
		{
			name:         "json output",
			args:         []string{"check", "-j", "-r", "space", `space_type = "SPACE"`},
			wantExitCode: ExitSuccess,
			wantStdout:   `"valid": true`,
		},
		{
			name:         "search dialect",
			args:         []string{"check", "-r", "spacesearch", `customer = "customers/my_customer" AND space_type = "SPACE"`},
			wantExitCode: ExitSuccess,
			wantStdout:   "customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args...)
			if result.ExitCode != tt.wantExitCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", result.ExitCode, tt.wantExitCode, result.Stderr)
			}
			if !strings.Contains(result.Stdout, tt.wantStdout) {
				t.Errorf("stdout does not contain %q:\n%s", tt.wantStdout, result.Stdout)
			}
		})
	}
}

func TestCheckCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid filter", []string{"check", "-r", "membership", `role = "ROLE_OWNER"`}},
		{"contradiction", []string{"check", "-r", "membership", `role = "ROLE_MEMBER" AND role = "ROLE_MANAGER"`}},
		{"unknown resource", []string{"check", "-r", "widget", `a = "1"`}},
		{"missing argument", []string{"check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args...)
			if result.ExitCode != ExitInputError {
				t.Errorf("exit code = %d, want %d\nstdout: %s", result.ExitCode, ExitInputError, result.Stdout)
			}
		})
	}
}

func TestTablesCommand(t *testing.T) {
	result := testutil.RunCLI(t, "tables")
	if result.ExitCode != ExitSuccess {
		t.Fatalf("exit code = %d, want %d\nstderr: %s", result.ExitCode, ExitSuccess, result.Stderr)
	}
	for _, want := range []string{"membership", "spacesearch", "member.type", "event_types"} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("tables output missing %q:\n%s", want, result.Stdout)
		}
	}
}
