package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template sources, in resolution order.
const (
	SourceProject = "project"
	SourceGlobal  = "global"
	SourceBuiltin = "built-in"
)

// Ext is the file extension of template files on disk.
const Ext = ".tmpl"

// ProjectDir is the project-local override directory, relative to the working directory.
const ProjectDir = ".browniecutter/templates"

// Dir is a directory searched for template overrides.
type Dir struct {
	Source string
	Path   string
}

// Info provides template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Output      string `json:"output"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"`
}

// Set resolves templates by name across override directories and the built-ins.
// The zero value resolves built-ins only.
type Set struct {
	dirs []Dir
}

// NewSet returns a Set that searches dirs in order before the built-ins.
// Directories with an empty path are skipped.
func NewSet(dirs ...Dir) *Set {
	kept := make([]Dir, 0, len(dirs))
	for _, d := range dirs {
		if d.Path != "" {
			kept = append(kept, d)
		}
	}
	return &Set{dirs: kept}
}

// Builtin returns a Set that ignores every override directory.
func Builtin() *Set {
	return &Set{}
}

// DefaultDirs returns the override directories for a working directory and
// a config directory. Either argument may be empty.
func DefaultDirs(cwd, configDir string) []Dir {
	var dirs []Dir
	if cwd != "" {
		dirs = append(dirs, Dir{Source: SourceProject, Path: filepath.Join(cwd, filepath.FromSlash(ProjectDir))})
	}
	if configDir != "" {
		dirs = append(dirs, Dir{Source: SourceGlobal, Path: filepath.Join(configDir, "templates")})
	}
	return dirs
}

// Load finds a template by name.
// Resolution order: each override directory in turn, then built-in.
// An override that exists but fails to parse is an error rather than a fallthrough.
func (s *Set) Load(name string) (*Template, error) {
	for _, dir := range s.dirs {
		tmpl, err := loadFromPath(dir.Path, name)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tmpl.Source = dir.Source
		return tmpl, nil
	}

	tmpl, err := loadBuiltin(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	tmpl.Source = SourceBuiltin
	return tmpl, nil
}

// Registry maps template names to loaded templates. Template.Render is a
// pure function of Data, so a Registry renders without touching disk.
type Registry map[string]*Template

// Registry loads each of names once. With no names it loads every built-in
// name and hook.
func (s *Set) Registry(names ...string) (Registry, error) {
	if len(names) == 0 {
		names = append(append([]string{}, Names...), HookNames...)
	}
	registry := make(Registry, len(names))
	for _, name := range names {
		if _, ok := registry[name]; ok {
			continue
		}
		tmpl, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		registry[name] = tmpl
	}
	return registry, nil
}

// List returns every available template. Overrides shadow the built-in of
// the same name, which is then reported through Info.Overrides.
func (s *Set) List() []Info {
	seen := make(map[string]int)
	var infos []Info

	for _, dir := range s.dirs {
		for _, info := range listFromPath(dir) {
			if _, exists := seen[info.Name]; exists {
				continue
			}
			seen[info.Name] = len(infos)
			infos = append(infos, info)
		}
	}

	for _, info := range listBuiltins() {
		if idx, exists := seen[info.Name]; exists {
			infos[idx].Overrides = SourceBuiltin
			continue
		}
		infos = append(infos, info)
	}

	return infos
}

// loadFromPath loads name from dir. A missing file yields an error wrapping os.ErrNotExist.
func loadFromPath(dir, name string) (*Template, error) {
	path := filepath.Join(dir, name+Ext)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	if tmpl.Output == "" {
		if builtin, err := loadBuiltin(name); err == nil {
			tmpl.Output = builtin.Output
		}
	}
	tmpl.Path = path
	return tmpl, nil
}

// listFromPath lists the templates in one override directory.
func listFromPath(dir Dir) []Info {
	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), Ext)
		tmpl, err := loadFromPath(dir.Path, name)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Output:      tmpl.Output,
			Source:      dir.Source,
		})
	}
	return infos
}
