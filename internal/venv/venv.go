// Package venv provisions Python virtual environments for generated
// projects through an external manager (pyenv-virtualenv or conda).
package venv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
)

// Backend identifiers accepted on the command line.
const (
	None  = "none"
	Pyenv = "pyenv"
	Conda = "conda"
)

// ErrUnsupportedBackend is returned for identifiers other than None, Pyenv and Conda.
var ErrUnsupportedBackend = errors.New("unsupported virtual environment backend")

// Backend drives one environment manager.
type Backend interface {
	Name() string
	// Create asks the manager for an environment called name pinned to python.
	Create(ctx context.Context, name string, python *semver.Version) error
	// Exists asks the manager whether name is a known environment.
	Exists(ctx context.Context, name string) bool
	// Activate and Deactivate return the shell commands written into
	// the .env and .env.leave hooks.
	Activate(name string) string
	Deactivate() string
}

var constructors = map[string]func(exec.Runner) Backend{
	Pyenv: func(r exec.Runner) Backend { return &pyenvBackend{runner: r} },
	Conda: func(r exec.Runner) Backend { return &condaBackend{runner: r} },
}

// Names lists every accepted identifier, None included.
func Names() []string {
	names := []string{None}
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// Validate reports ErrUnsupportedBackend for unknown identifiers.
func Validate(id string) error {
	if id == None || id == "" {
		return nil
	}
	if _, ok := constructors[id]; !ok {
		return fmt.Errorf("%w %q: supported backends are %s", ErrUnsupportedBackend, id, strings.Join(Names(), ", "))
	}
	return nil
}

// Lookup returns the Backend for id. None (or empty) yields a nil Backend.
func Lookup(id string, runner exec.Runner) (Backend, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	if id == None || id == "" {
		return nil, nil
	}
	return constructors[id](runner), nil
}

// EnvName derives the environment name for a project: bc_<project>,
// with spaces replaced by underscores.
func EnvName(project string) string {
	return "bc_" + strings.ReplaceAll(project, " ", "_")
}

var pythonVersionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// DetectPython asks interpreter for its version ("Python 3.12.1").
// Python 2 prints the version on stderr, so both streams are searched.
func DetectPython(ctx context.Context, runner exec.Runner, interpreter string) (*semver.Version, error) {
	if interpreter == "" {
		interpreter = "python3"
	}
	result, err := runner.Run(ctx, interpreter, []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", interpreter, err)
	}
	if !result.OK() {
		return nil, fmt.Errorf("%s --version exited with status %d: %s", interpreter, result.ExitCode, result.Message())
	}
	return ParsePythonVersion(result.Stdout + " " + result.Stderr)
}

// ParsePythonVersion extracts the first MAJOR.MINOR[.PATCH] from text.
// Pre-release suffixes such as "rc1" are dropped.
func ParsePythonVersion(text string) (*semver.Version, error) {
	match := pythonVersionRe.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("no python version in %q", strings.TrimSpace(text))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parsing python version %q: %w", match, err)
	}
	return v, nil
}

// Satisfies reports whether python meets a requirement such as ">=3.11".
// An empty requirement is always satisfied.
func Satisfies(python *semver.Version, requirement string) (bool, error) {
	if strings.TrimSpace(requirement) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(requirement)
	if err != nil {
		return false, fmt.Errorf("parsing python requirement %q: %w", requirement, err)
	}
	return c.Check(python), nil
}

func runManager(ctx context.Context, runner exec.Runner, name string, args ...string) (exec.Result, error) {
	result, err := runner.Run(ctx, name, args, exec.RunOpts{})
	if err != nil {
		return result, fmt.Errorf("%s not found: %w", name, err)
	}
	if !result.OK() {
		return result, fmt.Errorf("%s %s failed: %s", name, args[0], result.Message())
	}
	return result, nil
}
