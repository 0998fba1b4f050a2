package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("BROWNIECUTTER_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "browniecutter" {
			t.Errorf("Dir() = %q, want path ending in 'browniecutter'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("BROWNIECUTTER_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("BROWNIECUTTER_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "browniecutter") {
		t.Errorf("Dir() = %q", got)
	}
}

func TestDir_ExplicitOverridesXDG(t *testing.T) {
	t.Setenv("BROWNIECUTTER_CONFIG_HOME", "/explicit")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != "/explicit" {
		t.Errorf("Dir() = %q, want %q", got, "/explicit")
	}
}

func TestFilePath(t *testing.T) {
	t.Setenv("BROWNIECUTTER_CONFIG_HOME", "/cfg")
	if got := FilePath(); got != filepath.Join("/cfg", "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}
