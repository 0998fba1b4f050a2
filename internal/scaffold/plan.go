package scaffold

import (
	"path/filepath"
	"time"

	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// File is one rendered file, relative to the project root.
type File struct {
	Path     string `json:"path"`
	Template string `json:"template"`
	Source   string `json:"source"`
	Content  string `json:"-"`
}

// Plan is the rendered, not yet written, project tree.
type Plan struct {
	Root  string   `json:"root"`
	Dirs  []string `json:"dirs"`
	Files []File   `json:"files"`
	// Hooks holds .env and .env.leave, rendered only when the backend is known.
	Hooks []File `json:"hooks,omitempty"`
}

// Paths lists every file path in the plan, hooks last.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Files)+len(p.Hooks))
	for _, f := range p.Files {
		paths = append(paths, f.Path)
	}
	for _, f := range p.Hooks {
		paths = append(paths, f.Path)
	}
	return paths
}

func templateData(req Request, backend venv.Backend, now time.Time) templates.Data {
	d := templates.Data{
		ProjectName:    req.ProjectName,
		ClassName:      req.ClassName,
		Version:        req.Version,
		PythonRequires: req.PythonRequires,
		License:        req.License,
		Typecheck:      req.EnableTypechecking,
		Git:            req.InitVCS,
		Venv:           req.VenvBackend,
		EnvName:        req.EnvName(),
		Year:           now.Year(),
	}
	if backend != nil {
		d.Activate = backend.Activate(d.EnvName)
		d.Deactivate = backend.Deactivate()
	}
	return d
}

// render builds the plan for req. Hooks are rendered when backend is non-nil.
func render(set *templates.Set, req Request, backend venv.Backend, now time.Time) (*Plan, error) {
	var names []string
	for _, name := range templates.Names {
		if name == "gitignore" && !req.InitVCS {
			continue
		}
		names = append(names, name)
	}
	var hooks []string
	if backend != nil {
		hooks = templates.HookNames
	}

	registry, err := set.Registry(append(append([]string{}, names...), hooks...)...)
	if err != nil {
		return nil, err
	}

	data := templateData(req, backend, now)
	plan := &Plan{
		Root: req.Root(),
		Dirs: []string{".", req.ProjectName},
	}
	for _, name := range names {
		f, err := renderFile(registry[name], name, data)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, f)
	}
	for _, name := range hooks {
		f, err := renderFile(registry[name], name, data)
		if err != nil {
			return nil, err
		}
		plan.Hooks = append(plan.Hooks, f)
	}
	return plan, nil
}

func renderFile(tmpl *templates.Template, name string, data templates.Data) (File, error) {
	path, err := tmpl.OutputPath(data)
	if err != nil {
		return File{}, err
	}
	content, err := tmpl.Render(data)
	if err != nil {
		return File{}, err
	}
	return File{Path: filepath.ToSlash(path), Template: name, Source: tmpl.Source, Content: content}, nil
}
