// Package envfile reads and writes the small dotenv-style files used by
// browniecutter: KEY=VALUE override files loaded at startup, and the
// .env/.env.leave shell hooks written into generated projects.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// WriteHook creates a shell hook file holding one command per line.
// The file must not exist yet.
func WriteHook(path string, commands ...string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	content := strings.Join(commands, "\n") + "\n"
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// AllExist reports whether every path exists as a regular file.
func AllExist(paths ...string) bool {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return false
		}
	}
	return true
}
