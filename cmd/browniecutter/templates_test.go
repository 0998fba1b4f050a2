package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
)

func TestTemplatesList_JSON(t *testing.T) {
	setupWorkspace(t)

	out, err := executeCmd(t, nil, "templates", "list", "--json")
	if err != nil {
		t.Fatalf("templates list error = %v\n%s", err, out)
	}

	result := parseJSON(t, out)
	list, ok := result["templates"].([]any)
	if !ok || len(list) != 10 {
		t.Fatalf("templates = %v, want 10 entries", result["templates"])
	}
	first, _ := list[0].(map[string]any)
	if first["name"] != "license" || first["source"] != "built-in" || first["output"] != "LICENSE.md" {
		t.Errorf("first template = %v", first)
	}
}

func TestTemplatesList_Override(t *testing.T) {
	setupWorkspace(t)
	overrides := filepath.Join(".browniecutter", "templates")
	if err := os.MkdirAll(overrides, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(overrides, "readme.tmpl"), []byte("---\ndescription: house readme\n---\n# {{ .ProjectName }}"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := executeCmd(t, nil, "templates", "list")
	if err != nil {
		t.Fatalf("templates list error = %v\n%s", err, out)
	}
	for _, want := range []string{"NAME", "house readme", "project (overrides built-in)", "env_leave"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestTemplatesShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "setup",
			args: []string{"templates", "show", "setup", "demo"},
			want: []string{`name="demo",`, `'demo=demo.__init__:cli_launcher',`, `"fire >= 0.6.0",`},
		},
		{
			name: "module with typecheck",
			args: []string{"templates", "show", "module", "demo", "--class", "Demo", "--typecheck"},
			want: []string{"from typeguard import typechecked", "@typechecked\nclass Demo:"},
		},
		{
			name: "conda hook",
			args: []string{"templates", "show", "env", "demo", "--venv", "conda"},
			want: []string{"conda activate bc_demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupWorkspace(t)

			out, err := executeCmd(t, nil, tt.args...)
			if err != nil {
				t.Fatalf("templates show error = %v\n%s", err, out)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestTemplatesShow_JSON(t *testing.T) {
	setupWorkspace(t)

	out, err := executeCmd(t, nil, "templates", "show", "init", "demo", "--json")
	if err != nil {
		t.Fatalf("templates show error = %v\n%s", err, out)
	}
	result := parseJSON(t, out)
	if result["path"] != "demo/__init__.py" || result["source"] != "built-in" {
		t.Errorf("result = %v", result)
	}
	if content, _ := result["content"].(string); !strings.Contains(content, "fire.Fire(demo)") {
		t.Errorf("content = %q", content)
	}
}

func TestTemplatesShow_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown template", []string{"templates", "show", "nope", "demo"}},
		{"invalid class", []string{"templates", "show", "module", "demo", "--class", "1x"}},
		{"unknown backend", []string{"templates", "show", "env", "demo", "--venv", "nix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupWorkspace(t)

			_, err := executeCmd(t, nil, tt.args...)
			if got := output.GetExitCode(err); got != output.ExitUserError {
				t.Errorf("exit code = %d, want %d (err = %v)", got, output.ExitUserError, err)
			}
		})
	}
}

func TestTemplatesShow_DoesNotWrite(t *testing.T) {
	dir := setupWorkspace(t)

	if out, err := executeCmd(t, nil, "templates", "show", "readme", "demo"); err != nil {
		t.Fatalf("templates show error = %v\n%s", err, out)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("show should not write, found %d entries", len(entries))
	}
}
