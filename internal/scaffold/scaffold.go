package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
	"github.com/thiswillbeyourgithub/browniecutter/internal/git"
	"github.com/thiswillbeyourgithub/browniecutter/internal/output"
	"github.com/thiswillbeyourgithub/browniecutter/internal/templates"
	"github.com/thiswillbeyourgithub/browniecutter/internal/venv"
)

// CommitMessage is the message of the initial commit.
const CommitMessage = "Initial commit from browniecutter"

// Scaffolder creates projects. Construct it with New.
type Scaffolder struct {
	runner    exec.Runner
	git       *git.Client
	templates *templates.Set
	logger    output.Logger
	python    string
	now       func() time.Time
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the progress logger. The default discards every message.
func WithLogger(l output.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTemplates sets the template set. The default uses built-ins only.
func WithTemplates(set *templates.Set) Option {
	return func(s *Scaffolder) {
		if set != nil {
			s.templates = set
		}
	}
}

// WithPython sets the interpreter queried for the runtime version.
func WithPython(interpreter string) Option {
	return func(s *Scaffolder) {
		s.python = interpreter
	}
}

// WithClock sets the time source used for the license year.
func WithClock(now func() time.Time) Option {
	return func(s *Scaffolder) {
		s.now = now
	}
}

// New returns a Scaffolder running external tools through runner.
func New(runner exec.Runner, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		runner:    runner,
		git:       git.New(runner),
		templates: templates.Builtin(),
		logger:    output.Discard,
		python:    "python3",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan validates req and renders every file without touching the
// filesystem beyond checking that the root is absent. Unlike Scaffold
// it rejects an unsupported backend before anything else happens.
func (s *Scaffolder) Plan(req Request) (*Plan, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := checkAbsent(req.Root()); err != nil {
		return nil, err
	}
	backend, err := venv.Lookup(req.VenvBackend, s.runner)
	if err != nil {
		return nil, err
	}
	return render(s.templates, req, backend, s.now())
}

// Scaffold creates the project described by req.
//
// Invalid names, an invalid version and an existing root fail before
// anything is written. An unsupported backend fails after the files are
// written unless req.Atomic is set, in which case it fails first and the
// tree is staged in a temporary directory and renamed into place.
// Failures of git or the venv manager are recorded as warning steps.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	root := req.Root()
	if err := checkAbsent(root); err != nil {
		return nil, err
	}

	var backend venv.Backend
	if req.Atomic {
		b, err := venv.Lookup(req.VenvBackend, s.runner)
		if err != nil {
			return nil, err
		}
		backend = b
	}

	plan, err := render(s.templates, req, backend, s.now())
	if err != nil {
		return nil, err
	}

	result := &Result{Root: root}
	if req.Atomic {
		err = s.writeStaged(req, plan, result)
	} else {
		err = s.writeInPlace(req, plan, result)
	}
	if err != nil {
		return result, err
	}

	if req.VenvBackend == venv.None {
		result.step(StepVenv, StatusSkipped, "no backend selected")
	} else {
		if backend == nil {
			backend, err = venv.Lookup(req.VenvBackend, s.runner)
			if err != nil {
				return result, err
			}
			plan, err = render(s.templates, req, backend, s.now())
			if err != nil {
				return result, err
			}
		}
		s.provisionVenv(ctx, req, backend, plan.Hooks, result)
	}

	if req.InitVCS {
		s.initRepo(ctx, root, plan.Hooks, result)
	} else {
		result.step(StepGit, StatusSkipped, "disabled")
	}

	result.TODOs = plan.TODOs()
	s.logger.Emit(CompletionMessage(req.ProjectName, plan))
	return result, nil
}

// Render renders the named template for req. Nothing is written and the
// root is not checked, so it works for projects that already exist.
func (s *Scaffolder) Render(req Request, name string) (File, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return File{}, err
	}
	backend, err := venv.Lookup(req.VenvBackend, s.runner)
	if err != nil {
		return File{}, err
	}
	tmpl, err := s.templates.Load(name)
	if err != nil {
		return File{}, err
	}
	return renderFile(tmpl, name, templateData(req, backend, s.now()))
}

var todoRe = regexp.MustCompile(`TODO_[A-Za-z]+`)

// TODOs lists the distinct TODO_ placeholders left in the plan's files, sorted.
func (p *Plan) TODOs() []string {
	var todos []string
	for _, f := range p.Files {
		todos = append(todos, todoRe.FindAllString(f.Content, -1)...)
	}
	slices.Sort(todos)
	return slices.Compact(todos)
}

// CompletionMessage is logged once a project has been created.
func CompletionMessage(project string, plan *Plan) string {
	msg := fmt.Sprintf("Done creating %s, you can now manually replace all the missing TODO.", project)
	if plan == nil {
		return msg
	}
	if todos := plan.TODOs(); len(todos) > 0 {
		msg += " (" + strings.Join(todos, ", ") + ")"
	}
	return msg
}

func checkAbsent(root string) error {
	_, err := os.Lstat(root)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrPathExists, root)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking %s: %w", root, err)
	}
}
