// Package config resolves the browniecutter configuration directory and
// loads user defaults for the create command.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the configuration directory and the environment prefix.
const AppName = "browniecutter"

// Dir returns the browniecutter configuration directory.
//
// Resolution:
//   - $BROWNIECUTTER_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/browniecutter if set
//   - %AppData%/browniecutter on Windows
//   - ~/.config/browniecutter on macOS and Linux
func Dir() string {
	if dir := os.Getenv("BROWNIECUTTER_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path of the defaults file inside Dir.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
