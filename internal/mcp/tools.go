package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
	"github.com/thiswillbeyourgithub/browniecutter/internal/scaffold"
	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
)

// --- Create tool ---

// CreateInput is the input for the create_project tool.
type CreateInput struct {
	ProjectName    string `json:"project_name"              jsonschema:"project and package directory name"`
	ClassName      string `json:"class_name,omitempty"      jsonschema:"main class name (defaults to the project name)"`
	Dir            string `json:"dir,omitempty"             jsonschema:"parent directory of the project (defaults to the server working directory)"`
	NoGit          bool   `json:"no_git,omitempty"          jsonschema:"skip git init and the initial commit"`
	Venv           string `json:"venv,omitempty"            jsonschema:"virtual environment backend: none, pyenv or conda"`
	Typecheck      *bool  `json:"typecheck,omitempty"       jsonschema:"require typeguard and decorate the main class with @typechecked (defaults to the configured value)"`
	Version        string `json:"version,omitempty"         jsonschema:"initial project version (MAJOR.MINOR.PATCH)"`
	PythonRequires string `json:"python_requires,omitempty" jsonschema:"python_requires specifier for setup.py"`
	License        string `json:"license,omitempty"         jsonschema:"license identifier such as GPLv3 or MIT"`
	Atomic         bool   `json:"atomic,omitempty"          jsonschema:"stage the tree in a temp dir and rename it into place"`
	DryRun         bool   `json:"dry_run,omitempty"         jsonschema:"render the file plan without writing anything"`
	Verbose        bool   `json:"verbose,omitempty"         jsonschema:"include creation log lines in the output"`
}

// CreateOutput is the output for the create_project tool.
type CreateOutput struct {
	Root     string                `json:"root"               jsonschema:"project root directory"`
	DryRun   bool                  `json:"dry_run,omitempty"  jsonschema:"true when nothing was written"`
	Dirs     []string              `json:"dirs"               jsonschema:"directories created, relative to root"`
	Files    []string              `json:"files"              jsonschema:"files created, relative to root"`
	Steps    []scaffold.StepResult `json:"steps,omitempty"    jsonschema:"per-step status"`
	Warnings []string              `json:"warnings,omitempty" jsonschema:"non-fatal problems with git or the virtual environment"`
	Commit   string                `json:"commit,omitempty"   jsonschema:"initial commit SHA"`
	EnvName  string                `json:"env_name,omitempty" jsonschema:"virtual environment name"`
	TODOs    []string              `json:"todos"              jsonschema:"placeholders left to fill in by hand"`
	Log      []string              `json:"log,omitempty"      jsonschema:"creation log (verbose only)"`
}

// request applies input on top of the configured defaults.
func (d Defaults) request(input CreateInput) scaffold.Request {
	req := scaffold.Request{
		ProjectName:        input.ProjectName,
		ClassName:          input.ClassName,
		Verbose:            input.Verbose,
		InitVCS:            d.Git && !input.NoGit,
		VenvBackend:        d.Venv,
		EnableTypechecking: d.Typecheck,
		BaseDir:            input.Dir,
		Version:            d.Version,
		PythonRequires:     d.PythonRequires,
		License:            d.License,
		Atomic:             input.Atomic,
	}
	if input.Typecheck != nil {
		req.EnableTypechecking = *input.Typecheck
	}
	if input.Venv != "" {
		req.VenvBackend = input.Venv
	}
	if input.Version != "" {
		req.Version = input.Version
	}
	if input.PythonRequires != "" {
		req.PythonRequires = input.PythonRequires
	}
	if input.License != "" {
		req.License = input.License
	}
	return req
}

func handleCreate(deps Deps) mcp.ToolHandlerFor[CreateInput, CreateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
		req := deps.Defaults.request(input)

		var logged []string
		logger := output.Discard
		if req.Verbose {
			logger = output.LoggerFunc(func(msg string) { logged = append(logged, msg) })
		}
		s := scaffold.New(deps.Runner,
			scaffold.WithTemplates(deps.Templates),
			scaffold.WithPython(deps.Python),
			scaffold.WithLogger(logger),
		)

		if input.DryRun {
			plan, err := s.Plan(req)
			if err != nil {
				return nil, CreateOutput{}, err
			}
			return nil, CreateOutput{
				Root:   plan.Root,
				DryRun: true,
				Dirs:   plan.Dirs,
				Files:  plan.Paths(),
				TODOs:  plan.TODOs(),
			}, nil
		}

		result, err := s.Scaffold(ctx, req)
		if err != nil {
			return nil, CreateOutput{}, fmt.Errorf("creating %s: %w", input.ProjectName, err)
		}
		return nil, CreateOutput{
			Root:     result.Root,
			Dirs:     result.Dirs,
			Files:    result.Files,
			Steps:    result.Steps,
			Warnings: result.Warnings,
			Commit:   result.Commit,
			EnvName:  result.EnvName,
			TODOs:    result.TODOs,
			Log:      logged,
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render_template tool.
type RenderInput struct {
	Name           string `json:"name"                      jsonschema:"template name, e.g. setup or module"`
	ProjectName    string `json:"project_name"              jsonschema:"project and package name"`
	ClassName      string `json:"class_name,omitempty"      jsonschema:"main class name (defaults to the project name)"`
	Venv           string `json:"venv,omitempty"            jsonschema:"virtual environment backend: none, pyenv or conda"`
	Typecheck      *bool  `json:"typecheck,omitempty"       jsonschema:"render with typeguard enabled (defaults to the configured value)"`
	Version        string `json:"version,omitempty"         jsonschema:"project version"`
	PythonRequires string `json:"python_requires,omitempty" jsonschema:"python_requires specifier"`
	License        string `json:"license,omitempty"         jsonschema:"license identifier"`
}

// RenderOutput is the output for the render_template tool.
type RenderOutput struct {
	Name    string `json:"name"    jsonschema:"template name"`
	Source  string `json:"source"  jsonschema:"project, global or built-in"`
	Path    string `json:"path"    jsonschema:"output path relative to the project root"`
	Content string `json:"content" jsonschema:"rendered file content"`
}

func handleRender(deps Deps) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		if input.Name == "" {
			return nil, RenderOutput{}, errors.New("name is required")
		}
		req := deps.Defaults.request(CreateInput{
			ProjectName:    input.ProjectName,
			ClassName:      input.ClassName,
			Venv:           input.Venv,
			Typecheck:      input.Typecheck,
			Version:        input.Version,
			PythonRequires: input.PythonRequires,
			License:        input.License,
		})
		s := scaffold.New(deps.Runner, scaffold.WithTemplates(deps.Templates))
		f, err := s.Render(req, input.Name)
		if err != nil {
			return nil, RenderOutput{}, err
		}
		return nil, RenderOutput{
			Name:    input.Name,
			Source:  f.Source,
			Path:    f.Path,
			Content: f.Content,
		}, nil
	}
}

// --- List tool ---

// ListInput is the input for the list_templates tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list_templates tool.
type ListOutput struct {
	Templates []templates.Info `json:"templates" jsonschema:"available templates"`
}

func handleList(deps Deps) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		set := deps.Templates
		if set == nil {
			set = templates.Builtin()
		}
		return nil, ListOutput{Templates: set.List()}, nil
	}
}
