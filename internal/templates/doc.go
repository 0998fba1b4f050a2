// Package templates renders the files of a scaffolded Python project.
//
// Each file comes from a named template with YAML frontmatter naming its
// output path. Templates resolve project-local first, then from the user's
// config directory, then from the built-in set embedded in the binary.
// Template bodies use text/template with the sprig function map.
package templates
