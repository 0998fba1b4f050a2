package main

import (
	"fmt"
	"strings"

	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
	"github.com/thiswillbeyourgithub/browniecutter/internal/scaffold"
)

// outputCreateResult prints the result of a successful create.
func outputCreateResult(printer *output.Printer, req scaffold.Request, result *scaffold.Result) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"root":     result.Root,
			"dirs":     result.Dirs,
			"files":    result.Files,
			"steps":    result.Steps,
			"warnings": result.Warnings,
			"commit":   result.Commit,
			"env_name": result.EnvName,
			"python":   result.Python,
			"todos":    result.TODOs,
		})
	}

	styles := printer.Styles()
	printer.Println()
	printer.Print("%s %s\n", styles.Bold.Render("Created"), result.Root)
	for _, step := range result.Steps {
		printStepResult(printer, step)
	}
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}

	printer.Println()
	printer.Box("Next steps", nextSteps(req, result))
	return nil
}

// nextSteps lists what is left to do by hand.
func nextSteps(req scaffold.Request, result *scaffold.Result) string {
	lines := []string{"cd " + result.Root}
	if step, ok := result.Step(scaffold.StepVenv); ok && step.Status == scaffold.StatusOK {
		lines = append(lines, "# .env activates "+result.EnvName+" on cd (autoenv)")
	}
	lines = append(lines, "python -m pip install -e .", req.ProjectName+" --version")
	if len(result.TODOs) > 0 {
		lines = append(lines, "", "Replace the placeholders:", "  "+strings.Join(result.TODOs, ", "))
	}
	return strings.Join(lines, "\n")
}

// outputPlan prints a dry-run plan.
func outputPlan(printer *output.Printer, plan *scaffold.Plan) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "dry_run",
			"root":   plan.Root,
			"dirs":   plan.Dirs,
			"files":  append(append([]scaffold.File{}, plan.Files...), plan.Hooks...),
			"todos":  plan.TODOs(),
		})
	}

	styles := printer.Styles()
	printer.Println()
	printer.Print("%s %s\n", styles.Bold.Render("Dry run: would create"), plan.Root)
	printer.Println()

	rows := make([][]string, 0, len(plan.Files)+len(plan.Hooks))
	for _, f := range append(append([]scaffold.File{}, plan.Files...), plan.Hooks...) {
		rows = append(rows, []string{f.Path, f.Template, f.Source})
	}
	printer.Table([]string{"FILE", "TEMPLATE", "SOURCE"}, rows)
	return nil
}

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, step scaffold.StepResult) {
	icon := styledStepIcon(printer.Styles(), step.Status)
	printer.Print("  %s %s", icon, formatStepName(step.Name))
	if step.Message != "" {
		printer.Print(" %s", printer.Styles().Dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles *output.Styles, status string) string {
	switch status {
	case scaffold.StatusOK:
		return styles.Success.Render("ok")
	case scaffold.StatusSkipped:
		return styles.Dim.Render("--")
	case scaffold.StatusWarning:
		return styles.Warning.Render("!!")
	case scaffold.StatusFailed:
		return styles.Error.Render("XX")
	default:
		return "??"
	}
}

// formatStepName converts internal step names to display names.
func formatStepName(name string) string {
	switch name {
	case scaffold.StepDirs:
		return "Directories"
	case scaffold.StepFiles:
		return "Files"
	case scaffold.StepVenv:
		return "Virtual environment"
	case scaffold.StepGit:
		return "Git repository"
	default:
		return fmt.Sprintf("%q", name)
	}
}
