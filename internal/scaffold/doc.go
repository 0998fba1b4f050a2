// Package scaffold creates new Python projects.
//
// A Scaffolder validates a Request, creates the project root and its
// package directory, writes every templated file, then optionally
// provisions a virtual environment and initializes a git repository.
// External tools run through an exec.Runner and their failures surface
// as warning steps in the Result instead of errors.
package scaffold
