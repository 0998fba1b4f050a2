package templates

import (
	"embed"
	"fmt"
)

//go:embed builtin/*.tmpl
var builtinFS embed.FS

// Names lists the project templates in write order.
// gitignore is only written when the project gets a repository.
var Names = []string{
	"license",
	"readme",
	"bumpver",
	"setup",
	"main",
	"init",
	"module",
	"gitignore",
}

// HookNames lists the templates rendered only when a venv backend is selected.
var HookNames = []string{"env", "env_leave"}

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*Template, error) {
	path := "builtin/" + name + ".tmpl"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("builtin template %s: %w", name, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	return tmpl, nil
}

// listBuiltins returns info for every built-in template.
func listBuiltins() []Info {
	all := append(append([]string{}, Names...), HookNames...)
	infos := make([]Info, 0, len(all))
	for _, name := range all {
		tmpl, err := loadBuiltin(name)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Output:      tmpl.Output,
			Source:      SourceBuiltin,
		})
	}
	return infos
}
