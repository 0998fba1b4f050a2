// Package main provides the entry point for the browniecutter CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thiswillbeyourgithub/browniecutter/internal/config"
	"github.com/thiswillbeyourgithub/browniecutter/internal/envfile"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor folds the --color persistent flag and TTY detection of the
// command's stdout into a single decision.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the browniecutter CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdWithRunner(exec.NewOSRunner())
}

// newRootCmdWithRunner builds the command tree with runner driving git,
// python and the venv managers.
func newRootCmdWithRunner(runner exec.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browniecutter",
		Short: "A minimal Python project scaffolder",
		Long: `browniecutter - A minimal Python project scaffolder.

browniecutter creates a ready-to-edit Python package:
  - setup.py with a console-script entry point and python-fire CLI
  - bumpver.toml wired to setup.py and the main module
  - README.md and LICENSE.md stubs with TODO_ placeholders
  - An optional git repository with an initial commit
  - An optional pyenv or conda environment with .env auto-activation hooks

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'browniecutter --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, runner)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. ~/.config/browniecutter/env
//
// $CWD/.env is skipped: inside a generated project it is the venv hook.
func loadEnvFiles() {
	_ = envfile.Load(".env.local")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "templates", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, runner exec.Runner) {
	addGroupedCommand(cmd, newCreateCmd(runner), "core")
	addGroupedCommand(cmd, newTemplatesCmd(runner), "templates")
	addGroupedCommand(cmd, newServeCmd(runner), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
