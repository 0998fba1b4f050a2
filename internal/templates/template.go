package templates

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// Template is a named file template with its frontmatter metadata.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Output      string `yaml:"output"`

	// Template body (after frontmatter)
	Content string `yaml:"-"`

	// Source is "project", "global" or "built-in".
	Source string `yaml:"-"`
	// Path is the file the template was read from, empty for built-ins.
	Path string `yaml:"-"`
}

// ErrNotFound is returned when no directory and no built-in provides a template.
var ErrNotFound = errors.New("template not found")

// ErrUnsafeOutput is returned when a template's output path leaves the project root.
var ErrUnsafeOutput = errors.New("template output escapes the project root")

// Render executes the template body against d.
// The result always ends with exactly one newline.
func (t *Template) Render(d Data) (string, error) {
	out, err := execute(t.Name, t.Content, d)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// OutputPath renders the output path and checks it stays under the project root.
// The returned path uses the host separator.
func (t *Template) OutputPath(d Data) (string, error) {
	if strings.TrimSpace(t.Output) == "" {
		return "", fmt.Errorf("template %q has no output path", t.Name)
	}
	out, err := execute(t.Name+".output", t.Output, d)
	if err != nil {
		return "", err
	}
	rel := filepath.FromSlash(strings.TrimSpace(out))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("template %q: %q: %w", t.Name, out, ErrUnsafeOutput)
	}
	return rel, nil
}

func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["classifier"] = func(license string) string {
		return Classifiers[license]
	}
	return funcs
}

func execute(name, body string, d Data) (string, error) {
	tmpl, err := template.New(name).Funcs(funcMap()).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
