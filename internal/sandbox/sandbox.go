package sandbox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/naming"
)

// ErrOutsideDir is returned when a path does not sit directly inside the
// directory it is checked against.
var ErrOutsideDir = errors.New("path is outside the target directory")

// ValidateChild checks that name is a single path element and returns it
// joined onto dir.
func ValidateChild(dir, name string) (string, error) {
	if reason := naming.InvalidNameReason(name); reason != "" {
		return "", fmt.Errorf("%w: '%s' %s", ErrOutsideDir, name, reason)
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("%w: '%s' is not a bare file name", ErrOutsideDir, name)
	}
	return filepath.Join(dir, name), nil
}

// ValidateRename checks that oldPath and newPath name two different files
// in the same directory. A rename never moves a file between directories.
func ValidateRename(oldPath, newPath string) error {
	oldDir, oldName := filepath.Split(filepath.Clean(oldPath))
	newDir, newName := filepath.Split(filepath.Clean(newPath))

	if _, err := ValidateChild(oldDir, oldName); err != nil {
		return err
	}
	if _, err := ValidateChild(newDir, newName); err != nil {
		return err
	}
	if filepath.Clean(oldDir) != filepath.Clean(newDir) {
		return fmt.Errorf("%w: '%s' and '%s' are in different directories", ErrOutsideDir, oldPath, newPath)
	}
	return nil
}

// SafeWrite atomically writes content to path. Parent directories are created
// as needed and the content lands via a temp file in the same directory.
func SafeWrite(fs afero.Fs, path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Same directory keeps the final rename on one filesystem.
	tmp, err := afero.TempFile(fs, dir, ".file-renamer-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := fs.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
