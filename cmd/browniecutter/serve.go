package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/thiswillbeyourgithub/browniecutter/internal/config"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	bcmcp "github.com/thiswillbeyourgithub/browniecutter/internal/mcp"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(runner exec.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run browniecutter as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "browniecutter": {
        "command": "browniecutter",
        "args": ["serve"]
      }
    }
  }

Available tools: create_project, render_template, list_templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults, err := config.Load(config.FilePath())
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}
			server := bcmcp.NewServer(buildVersion(), bcmcp.Deps{
				Runner:    runner,
				Templates: templateSet(),
				Python:    defaults.Python,
				Defaults: bcmcp.Defaults{
					Git:            defaults.Git,
					Venv:           defaults.Venv,
					Typecheck:      defaults.Typecheck,
					Version:        defaults.Version,
					PythonRequires: defaults.PythonRequires,
					License:        defaults.License,
				},
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
