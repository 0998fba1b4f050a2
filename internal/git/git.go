package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
)

// Client runs git commands through an exec.Runner.
type Client struct {
	runner exec.Runner
}

// New returns a Client that uses runner for every invocation.
func New(runner exec.Runner) *Client {
	return &Client{runner: runner}
}

// Run executes git with args inside dir and returns trimmed stdout.
func (c *Client) Run(ctx context.Context, dir string, args ...string) (string, error) {
	result, err := c.runner.Run(ctx, "git", args, exec.RunOpts{Dir: dir})
	if err != nil {
		return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
	}
	if !result.OK() {
		msg := result.Message()
		if msg == "" {
			msg = "exit status " + strconv.Itoa(result.ExitCode)
		}
		sub := "command"
		if len(args) > 0 {
			sub = args[0]
		}
		return "", output.NewSystemError("git " + sub + " failed: " + msg)
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Init creates an empty repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	_, err := c.Run(ctx, dir, "init")
	return err
}

// Add stages paths (relative to dir).
func (c *Client) Add(ctx context.Context, dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := c.Run(ctx, dir, args...)
	return err
}

// Commit records the staged changes and returns the new HEAD SHA.
func (c *Client) Commit(ctx context.Context, dir, message string) (string, error) {
	if _, err := c.Run(ctx, dir, "commit", "-m", message); err != nil {
		return "", err
	}
	return c.HEAD(ctx, dir)
}

// HEAD returns the full SHA of the current HEAD commit in dir.
func (c *Client) HEAD(ctx context.Context, dir string) (string, error) {
	sha, err := c.Run(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get HEAD", err)
	}
	return sha, nil
}
