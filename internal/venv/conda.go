package venv

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
)

type condaBackend struct {
	runner exec.Runner
}

func (b *condaBackend) Name() string { return Conda }

func (b *condaBackend) Create(ctx context.Context, name string, python *semver.Version) error {
	_, err := runManager(ctx, b.runner, "conda", "create", "--yes", "--quiet", "--name", name, "python="+python.Original())
	return err
}

// Exists looks name up in `conda env list --json`, whose "envs" field holds
// environment prefixes; the last path element is the environment name.
func (b *condaBackend) Exists(ctx context.Context, name string) bool {
	result, err := runManager(ctx, b.runner, "conda", "env", "list", "--json")
	if err != nil {
		return false
	}
	var listing struct {
		Envs []string `json:"envs"`
	}
	if err := json.Unmarshal([]byte(result.Stdout), &listing); err != nil {
		return false
	}
	for _, prefix := range listing.Envs {
		if filepath.Base(prefix) == name {
			return true
		}
	}
	return false
}

func (b *condaBackend) Activate(name string) string { return "conda activate " + name }

func (b *condaBackend) Deactivate() string { return "conda deactivate" }
