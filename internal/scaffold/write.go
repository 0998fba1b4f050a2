package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// writeInPlace creates the root directly. A failure part way leaves
// whatever was already written.
func (s *Scaffolder) writeInPlace(req Request, plan *Plan, result *Result) error {
	if err := os.MkdirAll(req.BaseDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", req.BaseDir, err)
	}
	return s.writeTree(plan.Root, plan.Root, plan, result, false)
}

// writeStaged writes the tree into a temporary sibling of the root and
// renames it into place. Nothing is left behind on failure.
func (s *Scaffolder) writeStaged(req Request, plan *Plan, result *Result) (err error) {
	if err := os.MkdirAll(req.BaseDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", req.BaseDir, err)
	}
	stage, err := os.MkdirTemp(req.BaseDir, "."+req.ProjectName+".staging-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(stage)
			result.Dirs, result.Files = nil, nil
		}
	}()

	if err := s.writeTree(stage, plan.Root, plan, result, true); err != nil {
		return err
	}
	if err := os.Chmod(stage, dirPerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", stage, err)
	}
	// rename(2) replaces an empty directory, so check again right before.
	if err := checkAbsent(plan.Root); err != nil {
		return err
	}
	if err := os.Rename(stage, plan.Root); err != nil {
		return fmt.Errorf("moving %s into place: %w", plan.Root, err)
	}
	return nil
}

// writeTree creates plan's directories and files under dir. Log messages
// and result paths name display, the final location of the tree.
func (s *Scaffolder) writeTree(dir, display string, plan *Plan, result *Result, rootExists bool) error {
	made := make(map[string]bool)
	mkdir := func(rel string) error {
		if made[rel] {
			return nil
		}
		s.logger.Emit(fmt.Sprintf("Creating dir '%s'", filepath.Join(display, filepath.FromSlash(rel))))
		if rel != "." || !rootExists {
			if err := os.Mkdir(filepath.Join(dir, filepath.FromSlash(rel)), dirPerm); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("%w: %s", ErrPathExists, filepath.Join(display, rel))
				}
				return fmt.Errorf("creating directory %s: %w", rel, err)
			}
		}
		made[rel] = true
		result.Dirs = append(result.Dirs, rel)
		return nil
	}

	for _, d := range plan.Dirs {
		if err := mkdir(d); err != nil {
			return err
		}
	}
	result.step(StepDirs, StatusOK, fmt.Sprintf("created %d directories", len(result.Dirs)))

	for _, f := range plan.Files {
		if err := mkdirParents(path.Dir(f.Path), mkdir); err != nil {
			return err
		}
		if err := s.writeFile(dir, display, f); err != nil {
			return err
		}
		result.Files = append(result.Files, f.Path)
	}
	result.step(StepFiles, StatusOK, fmt.Sprintf("wrote %d files", len(result.Files)))
	return nil
}

// mkdirParents creates rel and its missing ancestors, outermost first.
func mkdirParents(rel string, mkdir func(string) error) error {
	if rel == "." || rel == "" {
		return nil
	}
	if err := mkdirParents(path.Dir(rel), mkdir); err != nil {
		return err
	}
	return mkdir(rel)
}

// writeFile creates f under dir. Existing files are never overwritten.
func (s *Scaffolder) writeFile(dir, display string, f File) error {
	s.logger.Emit(fmt.Sprintf("Creating file '%s'", filepath.Join(display, filepath.FromSlash(f.Path))))

	full := filepath.Join(dir, filepath.FromSlash(f.Path))
	file, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrPathExists, filepath.Join(display, f.Path))
		}
		return fmt.Errorf("creating %s: %w", f.Path, err)
	}
	if _, err := file.WriteString(f.Content); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.Path, err)
	}
	return nil
}
