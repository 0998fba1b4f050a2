package venv

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
)

// pyenvBackend uses the pyenv-virtualenv plugin.
type pyenvBackend struct {
	runner exec.Runner
}

func (b *pyenvBackend) Name() string { return Pyenv }

func (b *pyenvBackend) Create(ctx context.Context, name string, python *semver.Version) error {
	_, err := runManager(ctx, b.runner, "pyenv", "virtualenv", python.Original(), name)
	return err
}

func (b *pyenvBackend) Exists(ctx context.Context, name string) bool {
	_, err := runManager(ctx, b.runner, "pyenv", "prefix", name)
	return err == nil
}

func (b *pyenvBackend) Activate(name string) string { return "pyenv activate " + name }

func (b *pyenvBackend) Deactivate() string { return "pyenv deactivate" }
