// Package exec runs external programs (git, pyenv, conda, python) on behalf
// of the scaffolder. Callers depend on the Runner interface so tests can
// substitute a recording fake.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result captures the outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the process exited with status 0.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Message returns trimmed stderr, falling back to stdout, for error reporting.
func (r Result) Message() string {
	if msg := strings.TrimSpace(r.Stderr); msg != "" {
		return msg
	}
	return strings.TrimSpace(r.Stdout)
}

// RunOpts configures a single invocation.
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// Runner starts a program and waits for it.
// A non-zero exit is reported through Result.ExitCode with a nil error;
// the error is reserved for programs that could not be started at all.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
}

// OSRunner runs programs with os/exec.
type OSRunner struct{}

// NewOSRunner returns a Runner backed by os/exec.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run implements Runner.
func (r *OSRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
