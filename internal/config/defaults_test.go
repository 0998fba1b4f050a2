package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesBuiltins(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != BuiltinDefaults() {
		t.Errorf("Load() = %+v, want %+v", got, BuiltinDefaults())
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Venv != "none" || !got.Git {
		t.Errorf("Load(\"\") = %+v", got)
	}
}

func TestLoad_FileOverridesBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "verbose: false\nvenv: pyenv\ntypecheck: true\npython_requires: \">=3.12\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Verbose {
		t.Error("Verbose should be false")
	}
	if got.Venv != "pyenv" {
		t.Errorf("Venv = %q, want pyenv", got.Venv)
	}
	if !got.Typecheck {
		t.Error("Typecheck should be true")
	}
	if got.PythonRequires != ">=3.12" {
		t.Errorf("PythonRequires = %q", got.PythonRequires)
	}
	if got.License != "GPLv3" {
		t.Errorf("License = %q, want builtin", got.License)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("venv: pyenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BROWNIECUTTER_VENV", "conda")
	t.Setenv("BROWNIECUTTER_GIT", "false")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Venv != "conda" {
		t.Errorf("Venv = %q, want conda", got.Venv)
	}
	if got.Git {
		t.Error("Git should be false from env")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("venv: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
}
