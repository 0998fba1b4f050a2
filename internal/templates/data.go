package templates

// Data is the input every template renders against.
type Data struct {
	ProjectName    string
	ClassName      string
	Version        string
	PythonRequires string
	License        string
	Typecheck      bool
	Git            bool
	Venv           string
	EnvName        string
	Activate       string
	Deactivate     string
	Year           int
}

// HasVenv reports whether a virtual environment backend is selected.
func (d Data) HasVenv() bool {
	return d.Venv != "" && d.Venv != "none"
}

// Requirements lists the install_requires entries of the generated setup.py.
func (d Data) Requirements() []string {
	reqs := []string{"fire >= 0.6.0"}
	if d.Typecheck {
		reqs = append(reqs, "typeguard >= 4.0.0")
	}
	return reqs
}

// Classifiers maps short license identifiers to trove classifiers.
var Classifiers = map[string]string{
	"GPLv3":      "OSI Approved :: GNU General Public License v3 (GPLv3)",
	"GPLv2":      "OSI Approved :: GNU General Public License v2 (GPLv2)",
	"LGPLv3":     "OSI Approved :: GNU Lesser General Public License v3 (LGPLv3)",
	"AGPLv3":     "OSI Approved :: GNU Affero General Public License v3",
	"MIT":        "OSI Approved :: MIT License",
	"BSD":        "OSI Approved :: BSD License",
	"Apache-2.0": "OSI Approved :: Apache Software License",
	"MPL-2.0":    "OSI Approved :: Mozilla Public License 2.0 (MPL 2.0)",
}
