package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thiswillbeyourgithub/browniecutter/internal/config"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
	"github.com/thiswillbeyourgithub/browniecutter/internal/scaffold"
	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// createFlags holds the flags for the create command.
type createFlags struct {
	className      string
	verbose        bool
	quiet          bool
	noGit          bool
	venv           string
	typecheck      bool
	versionString  string
	pythonRequires string
	license        string
	dir            string
	from           string
	atomic         bool
	dryRun         bool
	showVersion    bool
}

// newCreateCmd creates the create command.
func newCreateCmd(runner exec.Runner) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [project]",
		Short: "Create a new Python project",
		Long: `Create a new Python project in ./<project>.

The project directory must not exist. browniecutter writes:
  LICENSE.md, README.md, bumpver.toml, setup.py,
  <project>/__init__.py, <project>/__main__.py, <project>/<project>.py
plus .gitignore when a repository is initialized and .env/.env.leave
when a virtual environment is provisioned.

Defaults come from ~/.config/browniecutter/config.yaml and BROWNIECUTTER_*
environment variables; flags override both.

Examples:
  browniecutter create demo                      # class demo, git repo, no venv
  browniecutter create demo --class Demo         # class Demo in demo/demo.py
  browniecutter create demo --venv pyenv         # also create pyenv env bc_demo
  browniecutter create demo --typecheck          # add typeguard and @typechecked
  browniecutter create demo --dry-run            # show the file plan only
  browniecutter create --from request.yaml       # read the request from YAML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, flags, runner)
		},
	}

	cmd.Flags().StringVar(&flags.className, "class", "", "Main class name (default: the project name)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print every directory and file created")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print the summary")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "Skip git init and the initial commit")
	cmd.Flags().StringVar(&flags.venv, "venv", venv.None, "Virtual environment backend: "+strings.Join(venv.Names(), ", "))
	cmd.Flags().BoolVar(&flags.typecheck, "typecheck", false, "Require typeguard and decorate the main class with @typechecked")
	cmd.Flags().StringVar(&flags.versionString, "version-string", scaffold.DefaultVersion, "Initial project version")
	cmd.Flags().StringVar(&flags.pythonRequires, "python-requires", scaffold.DefaultPythonRequires, "python_requires specifier for setup.py")
	cmd.Flags().StringVar(&flags.license, "license", scaffold.DefaultLicense, "License identifier")
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Parent directory of the project")
	cmd.Flags().StringVar(&flags.from, "from", "", "Read the request from a YAML file")
	cmd.Flags().BoolVar(&flags.atomic, "atomic", false, "Stage the tree in a temp dir and rename it into place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be created without doing it")
	cmd.Flags().BoolVar(&flags.showVersion, "version", false, "Print the browniecutter version and exit")

	return cmd
}

// runCreate executes the create command.
func runCreate(cmd *cobra.Command, args []string, flags *createFlags, runner exec.Runner) error {
	printer := newPrinter(cmd)

	if flags.showVersion {
		return outputVersion(printer)
	}

	defaults, err := config.Load(config.FilePath())
	if err != nil {
		exitErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	req, err := buildRequest(cmd, args, flags, defaults)
	if err != nil {
		printer.Error(err)
		return err
	}

	s := scaffold.New(runner,
		scaffold.WithTemplates(templateSet()),
		scaffold.WithPython(defaults.Python),
		scaffold.WithLogger(output.SelectLogger(printer, req.Verbose)),
	)

	if flags.dryRun {
		plan, err := s.Plan(req)
		if err != nil {
			exitErr := toExitError(err)
			printer.Error(exitErr)
			return exitErr
		}
		return outputPlan(printer, plan)
	}

	result, err := s.Scaffold(cmd.Context(), req)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}
	return outputCreateResult(printer, req.WithDefaults(), result)
}

// buildRequest layers the request: built-in defaults, config, --from file,
// the positional project name, then explicitly set flags.
func buildRequest(cmd *cobra.Command, args []string, flags *createFlags, defaults config.Defaults) (scaffold.Request, error) {
	req := scaffold.Request{
		Verbose:            defaults.Verbose,
		InitVCS:            defaults.Git,
		VenvBackend:        defaults.Venv,
		EnableTypechecking: defaults.Typecheck,
		Version:            defaults.Version,
		PythonRequires:     defaults.PythonRequires,
		License:            defaults.License,
	}

	if flags.from != "" {
		data, err := os.ReadFile(flags.from)
		if err != nil {
			return req, output.NewUserErrorWithCause(fmt.Sprintf("reading %s: %v", flags.from, err), err)
		}
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, output.NewUserErrorWithCause(fmt.Sprintf("parsing %s: %v", flags.from, err), err)
		}
	}

	if len(args) > 0 {
		req.ProjectName = args[0]
	}

	changed := cmd.Flags().Changed
	if changed("class") {
		req.ClassName = flags.className
	}
	if changed("verbose") {
		req.Verbose = flags.verbose
	}
	if changed("quiet") && flags.quiet {
		req.Verbose = false
	}
	if changed("no-git") {
		req.InitVCS = !flags.noGit
	}
	if changed("venv") {
		req.VenvBackend = flags.venv
	}
	if changed("typecheck") {
		req.EnableTypechecking = flags.typecheck
	}
	if changed("version-string") {
		req.Version = flags.versionString
	}
	if changed("python-requires") {
		req.PythonRequires = flags.pythonRequires
	}
	if changed("license") {
		req.License = flags.license
	}
	if changed("dir") {
		req.BaseDir = flags.dir
	}
	if changed("atomic") {
		req.Atomic = flags.atomic
	}

	if req.ProjectName == "" {
		return req, output.NewUserError("project name required: pass it as an argument or set project_name in --from")
	}
	return req, nil
}

// templateSet resolves templates from ./.browniecutter/templates, then the
// config directory, then the built-ins.
func templateSet() *templates.Set {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return templates.NewSet(templates.DefaultDirs(cwd, config.Dir())...)
}

// toExitError maps scaffold errors onto exit codes.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, scaffold.ErrPathExists):
		return output.NewConflictErrorWithCause(err.Error(), err)
	case errors.Is(err, scaffold.ErrInvalidName),
		errors.Is(err, scaffold.ErrInvalidVersion),
		errors.Is(err, scaffold.ErrUnsupportedBackend),
		errors.Is(err, templates.ErrUnsafeOutput),
		errors.Is(err, templates.ErrNotFound):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

func outputVersion(printer *output.Printer) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{"version": buildVersion()})
	}
	printer.Println("browniecutter version " + buildVersion())
	return nil
}
