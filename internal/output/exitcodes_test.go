package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("class name must start with a letter"),
			wantCode:    ExitUserError,
			wantMessage: "class name must start with a letter",
		},
		{
			name:        "system error",
			err:         NewSystemError("git not found"),
			wantCode:    ExitSystemError,
			wantMessage: "git not found",
		},
		{
			name:        "conflict error",
			err:         NewConflictError("directory already exists: demo"),
			wantCode:    ExitConflict,
			wantMessage: "directory already exists: demo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	sentinel := errors.New("path exists")

	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
	}{
		{"user", NewUserErrorWithCause("bad name", sentinel), ExitUserError},
		{"system", NewSystemErrorWithCause("mkdir failed", sentinel), ExitSystemError},
		{"conflict", NewConflictErrorWithCause("demo exists", sentinel), ExitConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, sentinel) {
				t.Error("errors.Is should find the wrapped cause")
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "system", err: NewSystemError("io"), expected: ExitSystemError},
		{name: "conflict", err: NewConflictError("exists"), expected: ExitConflict},
		{
			name:     "wrapped exit error",
			err:      fmt.Errorf("creating project: %w", NewConflictError("exists")),
			expected: ExitConflict,
		},
		{name: "plain error defaults to user error", err: errors.New("boom"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
