package scaffold

// Step statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
	StatusWarning = "warning"
)

// Step names, in execution order.
const (
	StepDirs  = "directories"
	StepFiles = "files"
	StepVenv  = "venv"
	StepGit   = "git"
)

// StepResult tracks the result of a single scaffolding step.
type StepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Result reports what Scaffold created. Paths in Dirs and Files are
// relative to Root and use forward slashes.
type Result struct {
	Root     string       `json:"root"`
	Dirs     []string     `json:"dirs"`
	Files    []string     `json:"files"`
	Steps    []StepResult `json:"steps"`
	Warnings []string     `json:"warnings,omitempty"`
	Commit   string       `json:"commit,omitempty"`
	EnvName  string       `json:"env_name,omitempty"`
	Python   string       `json:"python,omitempty"`
	TODOs    []string     `json:"todos,omitempty"` // placeholders left in the generated files
}

func (r *Result) step(name, status, message string) {
	r.Steps = append(r.Steps, StepResult{Name: name, Status: status, Message: message})
	if status == StatusWarning || status == StatusFailed {
		r.Warnings = append(r.Warnings, name+": "+message)
	}
}

// Step returns the result of the named step, or false if it never ran.
func (r *Result) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}
