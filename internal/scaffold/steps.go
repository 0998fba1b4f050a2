package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thiswillbeyourgithub/browniecutter/internal/envfile"
	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// provisionVenv creates the environment and writes the .env hooks once the
// manager confirms the environment exists. Every failure is a warning.
func (s *Scaffolder) provisionVenv(ctx context.Context, req Request, backend venv.Backend, hooks []File, result *Result) {
	envName := req.EnvName()
	result.EnvName = envName

	python, err := venv.DetectPython(ctx, s.runner, s.python)
	if err != nil {
		result.step(StepVenv, StatusWarning, fmt.Sprintf("could not detect the python version: %v", err))
		return
	}
	result.Python = python.Original()

	if ok, err := venv.Satisfies(python, req.PythonRequires); err == nil && !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("python %s does not satisfy python_requires %s", python.Original(), req.PythonRequires))
	}

	s.logger.Emit(fmt.Sprintf("Creating %s environment '%s' with python %s", backend.Name(), envName, python.Original()))
	if err := backend.Create(ctx, envName, python); err != nil {
		result.step(StepVenv, StatusWarning, fmt.Sprintf("creating environment %s: %v", envName, err))
		return
	}
	if !backend.Exists(ctx, envName) {
		result.step(StepVenv, StatusWarning,
			fmt.Sprintf("%s does not report environment %s, .env hooks not written", backend.Name(), envName))
		return
	}

	paths := make([]string, 0, len(hooks))
	for _, h := range hooks {
		full := filepath.Join(result.Root, filepath.FromSlash(h.Path))
		s.logger.Emit(fmt.Sprintf("Creating file '%s'", full))
		if err := envfile.WriteHook(full, strings.TrimRight(h.Content, "\n")); err != nil {
			result.step(StepVenv, StatusWarning, err.Error())
			return
		}
		result.Files = append(result.Files, h.Path)
		paths = append(paths, full)
	}

	if !envfile.AllExist(paths...) {
		result.step(StepVenv, StatusWarning, "environment marker files are missing after creation")
		return
	}
	result.step(StepVenv, StatusOK, fmt.Sprintf("created %s environment %s (python %s)", backend.Name(), envName, python.Original()))
}

// initRepo initializes a repository in root and commits the created files.
// The .env hooks are listed in .gitignore, so they are never staged.
func (s *Scaffolder) initRepo(ctx context.Context, root string, hooks []File, result *Result) {
	s.logger.Emit(fmt.Sprintf("Initializing git repository in '%s'", root))

	if err := s.git.Init(ctx, root); err != nil {
		result.step(StepGit, StatusWarning, err.Error())
		return
	}
	if err := s.git.Add(ctx, root, tracked(result.Files, hooks)...); err != nil {
		result.step(StepGit, StatusWarning, err.Error())
		return
	}
	sha, err := s.git.Commit(ctx, root, CommitMessage)
	if err != nil {
		result.step(StepGit, StatusWarning, err.Error())
		return
	}
	result.Commit = sha
	result.step(StepGit, StatusOK, "initial commit "+shortSHA(sha))
}

// tracked returns files without the hook paths.
func tracked(files []string, hooks []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !slices.ContainsFunc(hooks, func(h File) bool { return h.Path == f }) {
			out = append(out, f)
		}
	}
	return out
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
