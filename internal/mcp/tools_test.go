package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec/exectest"
	"github.com/thiswillbeyourgithub/browniecutter/internal/scaffold"
	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
)

func testDeps(runner exec.Runner) Deps {
	return Deps{
		Runner:    runner,
		Templates: templates.Builtin(),
		Defaults: Defaults{
			Git:            true,
			Venv:           "none",
			Version:        "0.0.1",
			PythonRequires: ">=3.11",
			License:        "GPLv3",
		},
	}
}

func TestNewServer(t *testing.T) {
	if server := NewServer("test", Deps{}); server == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestDefaultsRequest(t *testing.T) {
	d := Defaults{Git: true, Venv: "pyenv", Version: "0.0.1", License: "GPLv3", PythonRequires: ">=3.11"}

	req := d.request(CreateInput{ProjectName: "demo"})
	if !req.InitVCS || req.VenvBackend != "pyenv" || req.Version != "0.0.1" || req.License != "GPLv3" {
		t.Errorf("defaults not applied: %+v", req)
	}

	req = d.request(CreateInput{ProjectName: "demo", NoGit: true, Venv: "none", Version: "2.0.0", License: "MIT", Typecheck: boolPtr(true)})
	if req.InitVCS || req.VenvBackend != "none" || req.Version != "2.0.0" || req.License != "MIT" || !req.EnableTypechecking {
		t.Errorf("input did not override defaults: %+v", req)
	}
}

func TestDefaultsRequest_Typecheck(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		input      *bool
		want       bool
	}{
		{"unset keeps config off", false, nil, false},
		{"unset keeps config on", true, nil, true},
		{"explicit true", false, boolPtr(true), true},
		{"explicit false overrides config", true, boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Defaults{Typecheck: tt.configured}
			req := d.request(CreateInput{ProjectName: "demo", Typecheck: tt.input})
			if req.EnableTypechecking != tt.want {
				t.Errorf("EnableTypechecking = %v, want %v", req.EnableTypechecking, tt.want)
			}
		})
	}
}

func TestHandleRender_TypecheckOff(t *testing.T) {
	deps := testDeps(exectest.New())
	deps.Defaults.Typecheck = true
	handler := handleRender(deps)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Name:        "module",
		ProjectName: "demo",
		Typecheck:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.Content, "typechecked") {
		t.Errorf("typecheck: false should win over the configured default:\n%s", out.Content)
	}
}

func TestHandleCreate(t *testing.T) {
	base := t.TempDir()
	runner := exectest.New().On("git", []string{"rev-parse", "HEAD"}, exectest.Response{
		Result: exec.Result{Stdout: "abc1234def\n"},
	})
	handler := handleCreate(testDeps(runner))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateInput{
		ProjectName: "demo",
		ClassName:   "Demo",
		Dir:         base,
		Verbose:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Root != filepath.Join(base, "demo") {
		t.Errorf("Root = %q", out.Root)
	}
	if !slices.Contains(out.Files, "demo/demo.py") || !slices.Contains(out.Files, ".gitignore") {
		t.Errorf("Files = %v", out.Files)
	}
	if out.Commit != "abc1234def" {
		t.Errorf("Commit = %q", out.Commit)
	}
	if len(out.Log) == 0 || !strings.HasPrefix(out.Log[len(out.Log)-1], "Done creating demo") {
		t.Errorf("Log = %v", out.Log)
	}
	if !slices.Contains(out.TODOs, "TODO_license") {
		t.Errorf("TODOs = %v", out.TODOs)
	}
	if _, err := os.Stat(filepath.Join(base, "demo", "demo", "demo.py")); err != nil {
		t.Errorf("module not written: %v", err)
	}
}

func TestHandleCreate_Quiet(t *testing.T) {
	handler := handleCreate(testDeps(exectest.New()))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateInput{
		ProjectName: "demo",
		Dir:         t.TempDir(),
		NoGit:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Log) != 0 {
		t.Errorf("Log should be empty without verbose: %v", out.Log)
	}
}

func TestHandleCreate_DryRun(t *testing.T) {
	base := t.TempDir()
	runner := exectest.New()
	handler := handleCreate(testDeps(runner))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateInput{
		ProjectName: "demo",
		Dir:         base,
		Venv:        "conda",
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.DryRun {
		t.Error("DryRun should be reported")
	}
	if !slices.Contains(out.Files, ".env") {
		t.Errorf("Files = %v, want hooks in the plan", out.Files)
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
	if len(runner.Calls()) != 0 {
		t.Errorf("dry run ran %v", runner.Commands())
	}
}

func TestHandleCreate_Errors(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "taken"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{"invalid class", CreateInput{ProjectName: "demo", ClassName: "has space", Dir: base}, scaffold.ErrInvalidName},
		{"existing dir", CreateInput{ProjectName: "taken", Dir: base}, scaffold.ErrPathExists},
		{"unknown backend", CreateInput{ProjectName: "demo", Dir: base, Venv: "nix", Atomic: true}, scaffold.ErrUnsupportedBackend},
	}

	handler := handleCreate(testDeps(exectest.New()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHandleRender(t *testing.T) {
	handler := handleRender(testDeps(exectest.New()))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RenderInput{
		Name:        "setup",
		ProjectName: "demo",
		Typecheck:   boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Path != "setup.py" || out.Source != templates.SourceBuiltin {
		t.Errorf("out = %+v", out)
	}
	if !strings.Contains(out.Content, `"typeguard >= 4.0.0",`) {
		t.Errorf("Content = %s", out.Content)
	}
}

func TestHandleRender_Errors(t *testing.T) {
	handler := handleRender(testDeps(exectest.New()))

	tests := []struct {
		name  string
		input RenderInput
	}{
		{"missing name", RenderInput{ProjectName: "demo"}},
		{"unknown template", RenderInput{Name: "pyproject", ProjectName: "demo"}},
		{"invalid project", RenderInput{Name: "readme"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHandleList(t *testing.T) {
	handler := handleList(Deps{})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Templates) != len(templates.Names)+len(templates.HookNames) {
		t.Errorf("len(Templates) = %d", len(out.Templates))
	}
}
