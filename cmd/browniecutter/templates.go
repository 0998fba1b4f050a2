package main

import (
	"github.com/spf13/cobra"

	"github.com/thiswillbeyourgithub/browniecutter/internal/config"
	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
	"github.com/thiswillbeyourgithub/browniecutter/internal/scaffold"
	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// newTemplatesCmd creates the templates command group.
func newTemplatesCmd(runner exec.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List and render project templates",
		Long: `List and render the templates browniecutter writes projects from.

Templates resolve in order:
  1. ./.browniecutter/templates/<name>.tmpl   (project)
  2. ~/.config/browniecutter/templates/<name>.tmpl   (global)
  3. built-in

Override files use text/template syntax with sprig functions and may carry
YAML frontmatter (name, description, output).`,
	}
	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd(runner))
	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			infos := templateSet().List()

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"templates": infos})
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				source := info.Source
				if info.Overrides != "" {
					source += " (overrides " + info.Overrides + ")"
				}
				rows = append(rows, []string{info.Name, info.Output, source, info.Description})
			}
			printer.Table([]string{"NAME", "OUTPUT", "SOURCE", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

// templatesShowFlags holds the flags for templates show.
type templatesShowFlags struct {
	className string
	venv      string
	typecheck bool
}

func newTemplatesShowCmd(runner exec.Runner) *cobra.Command {
	flags := &templatesShowFlags{}

	cmd := &cobra.Command{
		Use:   "show <name> <project>",
		Short: "Render a template to stdout",
		Long: `Render one template for a project name without writing anything.

Examples:
  browniecutter templates show setup demo
  browniecutter templates show module demo --class Demo --typecheck
  browniecutter templates show env demo --venv conda`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			defaults, err := config.Load(config.FilePath())
			if err != nil {
				exitErr := output.NewUserErrorWithCause(err.Error(), err)
				printer.Error(exitErr)
				return exitErr
			}

			req := scaffold.Request{
				ProjectName:        args[1],
				ClassName:          flags.className,
				InitVCS:            defaults.Git,
				VenvBackend:        defaults.Venv,
				EnableTypechecking: defaults.Typecheck || flags.typecheck,
				Version:            defaults.Version,
				PythonRequires:     defaults.PythonRequires,
				License:            defaults.License,
			}
			if cmd.Flags().Changed("venv") {
				req.VenvBackend = flags.venv
			}

			s := scaffold.New(runner, scaffold.WithTemplates(templateSet()))
			f, err := s.Render(req, args[0])
			if err != nil {
				exitErr := toExitError(err)
				printer.Error(exitErr)
				return exitErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"name":    args[0],
					"path":    f.Path,
					"source":  f.Source,
					"content": f.Content,
				})
			}
			printer.Print("%s", f.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.className, "class", "", "Main class name (default: the project name)")
	cmd.Flags().StringVar(&flags.venv, "venv", venv.None, "Virtual environment backend for the env hooks")
	cmd.Flags().BoolVar(&flags.typecheck, "typecheck", false, "Render with typeguard enabled")

	return cmd
}
