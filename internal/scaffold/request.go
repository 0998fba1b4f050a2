package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// Default request values.
const (
	DefaultVersion        = "0.0.1"
	DefaultPythonRequires = ">=3.11"
	DefaultLicense        = "GPLv3"
)

// Sentinel errors returned by Scaffold. They are wrapped with context;
// match them with errors.Is.
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidVersion     = errors.New("invalid version")
	ErrPathExists         = errors.New("path already exists")
	ErrUnsupportedBackend = venv.ErrUnsupportedBackend
)

// Request describes one project to create.
type Request struct {
	ProjectName        string `yaml:"project_name" json:"project_name" jsonschema:"project and package directory name"`
	ClassName          string `yaml:"class_name,omitempty" json:"class_name,omitempty" jsonschema:"main class name, defaults to the project name"`
	Verbose            bool   `yaml:"verbose" json:"verbose,omitempty" jsonschema:"log every directory and file created"`
	InitVCS            bool   `yaml:"git" json:"git,omitempty" jsonschema:"initialize a git repository with an initial commit"`
	VenvBackend        string `yaml:"venv,omitempty" json:"venv,omitempty" jsonschema:"virtual environment backend: none, pyenv or conda"`
	EnableTypechecking bool   `yaml:"typecheck" json:"typecheck,omitempty" jsonschema:"add typeguard and decorate the main class with @typechecked"`
	BaseDir            string `yaml:"dir,omitempty" json:"dir,omitempty" jsonschema:"parent directory of the project, defaults to the working directory"`
	Version            string `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"initial project version (MAJOR.MINOR.PATCH)"`
	PythonRequires     string `yaml:"python_requires,omitempty" json:"python_requires,omitempty" jsonschema:"python_requires specifier for setup.py"`
	License            string `yaml:"license,omitempty" json:"license,omitempty" jsonschema:"license identifier, e.g. GPLv3 or MIT"`
	Atomic             bool   `yaml:"atomic" json:"atomic,omitempty" jsonschema:"stage the tree in a temp dir and rename it into place"`
}

// WithDefaults returns a copy of r with empty optional fields filled in.
func (r Request) WithDefaults() Request {
	if r.ClassName == "" {
		r.ClassName = r.ProjectName
	}
	if r.VenvBackend == "" {
		r.VenvBackend = venv.None
	}
	if r.BaseDir == "" {
		r.BaseDir = "."
	}
	if r.Version == "" {
		r.Version = DefaultVersion
	}
	if r.PythonRequires == "" {
		r.PythonRequires = DefaultPythonRequires
	}
	if r.License == "" {
		r.License = DefaultLicense
	}
	return r
}

// Validate checks names and version. It does not touch the filesystem
// and does not check the venv backend.
func (r Request) Validate() error {
	if err := validateProjectName(r.ProjectName); err != nil {
		return err
	}
	if err := validateClassName(r.ClassName); err != nil {
		return err
	}
	if _, err := semver.StrictNewVersion(r.Version); err != nil {
		return fmt.Errorf("%w %q: want MAJOR.MINOR.PATCH: %w", ErrInvalidVersion, r.Version, err)
	}
	return nil
}

// Root is the project directory the request creates.
func (r Request) Root() string {
	return filepath.Join(r.BaseDir, r.ProjectName)
}

// EnvName is the virtual environment name for the project.
func (r Request) EnvName() string {
	return venv.EnvName(r.ProjectName)
}

func validateProjectName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: project name is required", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: project name %q is not a directory name", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: project name %q must not contain a path separator", ErrInvalidName, name)
	}
	return nil
}

func validateClassName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: class name is required", ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: class name %q must not contain spaces", ErrInvalidName, name)
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(first) {
		return fmt.Errorf("%w: class name %q must start with a letter", ErrInvalidName, name)
	}
	return nil
}
