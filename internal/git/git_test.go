package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	bcexec "github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec/exectest"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
)

func TestClient_Run(t *testing.T) {
	tests := []struct {
		name     string
		resp     exectest.Response
		wantOut  string
		wantErr  string
		wantCode int
	}{
		{
			name:    "success trims stdout",
			resp:    exectest.Response{Result: bcexec.Result{Stdout: "git version 2.44.0\n"}},
			wantOut: "git version 2.44.0",
		},
		{
			name:     "non-zero exit includes stderr",
			resp:     exectest.Response{Result: bcexec.Result{ExitCode: 128, Stderr: "fatal: not a git repository\n"}},
			wantErr:  "git version failed: fatal: not a git repository",
			wantCode: output.ExitSystemError,
		},
		{
			name:     "non-zero exit without output",
			resp:     exectest.Response{Result: bcexec.Result{ExitCode: 3}},
			wantErr:  "git version failed: exit status 3",
			wantCode: output.ExitSystemError,
		},
		{
			name:     "missing executable",
			resp:     exectest.Response{Err: errors.New("executable file not found in $PATH")},
			wantErr:  "git not found",
			wantCode: output.ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := exectest.New().On("git", nil, tt.resp)
			out, err := New(rec).Run(context.Background(), "/tmp/demo", "version")

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				if out != tt.wantOut {
					t.Errorf("Run() = %q, want %q", out, tt.wantOut)
				}
				return
			}

			if err == nil {
				t.Fatal("Run() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestClient_InitAddCommit(t *testing.T) {
	rec := exectest.New().
		On("git", []string{"rev-parse", "HEAD"}, exectest.Response{Result: bcexec.Result{Stdout: "abc123\n"}})
	client := New(rec)
	ctx := context.Background()

	if err := client.Init(ctx, "demo"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := client.Add(ctx, "demo", "README.md", "demo/demo.py"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	sha, err := client.Commit(ctx, "demo", "Initial commit")
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if sha != "abc123" {
		t.Errorf("Commit() sha = %q, want abc123", sha)
	}

	want := []string{
		"git init",
		"git add -- README.md demo/demo.py",
		"git commit -m Initial commit",
		"git rev-parse HEAD",
	}
	got := rec.Commands()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("commands:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	for _, call := range rec.Calls() {
		if call.Dir != "demo" {
			t.Errorf("%s ran in %q, want demo", call, call.Dir)
		}
	}
}

func TestClient_CommitFailureSkipsHEAD(t *testing.T) {
	rec := exectest.New().
		On("git", []string{"commit"}, exectest.Response{Result: bcexec.Result{ExitCode: 1, Stderr: "Author identity unknown"}})

	_, err := New(rec).Commit(context.Background(), "demo", "Initial commit")
	if err == nil || !strings.Contains(err.Error(), "Author identity unknown") {
		t.Fatalf("Commit() error = %v", err)
	}
	if n := len(rec.Calls()); n != 1 {
		t.Errorf("expected only the commit call, got %d calls", n)
	}
}

func TestClient_RealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	client := New(bcexec.NewOSRunner())
	ctx := context.Background()

	if err := client.Init(ctx, dir); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		t.Errorf("Init() should create .git: %v", err)
	}
}
