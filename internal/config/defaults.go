package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Defaults are the user-level fallbacks for create flags.
// Flags given on the command line always win.
type Defaults struct {
	Verbose        bool   `mapstructure:"verbose"`
	Git            bool   `mapstructure:"git"`
	Venv           string `mapstructure:"venv"`
	Typecheck      bool   `mapstructure:"typecheck"`
	Version        string `mapstructure:"version"`
	PythonRequires string `mapstructure:"python_requires"`
	License        string `mapstructure:"license"`
	Python         string `mapstructure:"python"`
}

// BuiltinDefaults mirrors the behavior of a bare `browniecutter create <name>`.
func BuiltinDefaults() Defaults {
	return Defaults{
		Verbose:        true,
		Git:            true,
		Venv:           "none",
		Typecheck:      false,
		Version:        "0.0.1",
		PythonRequires: ">=3.11",
		License:        "GPLv3",
		Python:         "python3",
	}
}

// Load reads defaults from the YAML file at path and from BROWNIECUTTER_*
// environment variables. A missing file is not an error; an empty path
// skips the file entirely.
func Load(path string) (Defaults, error) {
	v := viper.New()

	builtin := BuiltinDefaults()
	v.SetDefault("verbose", builtin.Verbose)
	v.SetDefault("git", builtin.Git)
	v.SetDefault("venv", builtin.Venv)
	v.SetDefault("typecheck", builtin.Typecheck)
	v.SetDefault("version", builtin.Version)
	v.SetDefault("python_requires", builtin.PythonRequires)
	v.SetDefault("license", builtin.License)
	v.SetDefault("python", builtin.Python)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return Defaults{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("decoding config: %w", err)
	}
	return d, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
