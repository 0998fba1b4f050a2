// Package exectest provides a recording exec.Runner for tests.
package exectest

import (
	"context"
	"strings"
	"sync"

	"github.com/thiswillbeyourgithub/browniecutter/internal/exec"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// String renders the call as a shell-like command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the Recorder returns for a matched command.
// Do, when set, runs before the result is returned (for simulating side effects).
type Response struct {
	Result exec.Result
	Err    error
	Do     func(call Call)
}

// Recorder implements exec.Runner. Commands are matched by name plus a
// prefix of their arguments; unmatched commands get Default.
type Recorder struct {
	mu        sync.Mutex
	calls     []Call
	responses []match
	Default   Response
}

type match struct {
	name   string
	prefix []string
	resp   Response
}

// New returns a Recorder whose unmatched commands succeed with empty output.
func New() *Recorder {
	return &Recorder{}
}

// On registers a response for name invoked with args starting with prefix.
// Later registrations take precedence.
func (r *Recorder) On(name string, prefix []string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, match{name: name, prefix: prefix, resp: resp})
	return r
}

// Run implements exec.Runner.
func (r *Recorder) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	resp := r.Default
	for i := len(r.responses) - 1; i >= 0; i-- {
		m := r.responses[i]
		if m.name == name && hasPrefix(args, m.prefix) {
			resp = m.resp
			break
		}
	}
	r.mu.Unlock()

	if resp.Do != nil {
		resp.Do(call)
	}
	return resp.Result, resp.Err
}

// Calls returns a copy of every recorded invocation.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Commands returns recorded invocations rendered with Call.String.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.String())
	}
	return out
}

func hasPrefix(args, prefix []string) bool {
	if len(prefix) > len(args) {
		return false
	}
	for i, p := range prefix {
		if args[i] != p {
			return false
		}
	}
	return true
}
