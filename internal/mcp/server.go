// Package mcp provides a Model Context Protocol server for browniecutter.
// It exposes project creation and template rendering as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
)

// Deps holds what the tool handlers need.
type Deps struct {
	Runner    exec.Runner
	Templates *templates.Set
	// Python is the interpreter queried for the venv Python version.
	Python string
	// Defaults seeds every create_project request before the tool input applies.
	Defaults Defaults
}

// Defaults are the configured values a tool call starts from.
type Defaults struct {
	Git            bool
	Venv           string
	Typecheck      bool
	Version        string
	PythonRequires string
	License        string
}

// NewServer creates an MCP server with all browniecutter tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	if deps.Templates == nil {
		deps.Templates = templates.Builtin()
	}
	if deps.Runner == nil {
		deps.Runner = exec.NewOSRunner()
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "browniecutter",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// createAnnotations returns annotations for project creation: additive,
// never overwriting, and not idempotent because a second call conflicts.
func createAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all browniecutter tools to the server.
func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new Python project: package directory, setup.py, bumpver.toml, README, LICENSE stub, optional git repository and virtual environment. Fails if the directory already exists. Set dry_run to only render the file plan.",
		Annotations: createAnnotations(),
	}, handleCreate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_template",
		Description: "Render one project template (license, readme, bumpver, setup, main, init, module, gitignore, env, env_leave) for a project name without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List available templates with their output path and source (project, global or built-in).",
		Annotations: readOnlyAnnotations(),
	}, handleList(deps))
}
