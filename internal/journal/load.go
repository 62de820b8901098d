package journal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bianoble/file-renamer/internal/plan"
	"github.com/bianoble/file-renamer/internal/sandbox"
)

// Load reads and validates a journal. A missing file is an empty journal.
func Load(fs afero.Fs, path string) (*Journal, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return &Journal{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}

	var j Journal
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing journal %s: %w", path, err)
	}

	if errs := Validate(&j); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &j, nil
}

// Save writes a journal atomically.
func Save(fs afero.Fs, path string, j *Journal) error {
	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}
	if err := sandbox.SafeWrite(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing journal %s: %w", path, err)
	}
	return nil
}

// Append adds run to the journal at path, creating the file if needed.
// Runs with no completed renames are not recorded.
func Append(fs afero.Fs, path string, run Run) error {
	if len(run.Renames) == 0 {
		return nil
	}

	j, err := Load(fs, path)
	if err != nil {
		return err
	}
	j.Runs = append(j.Runs, run)
	return Save(fs, path, j)
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Journal for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(j *Journal) []string {
	var errs []string

	if j.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", j.Version))
	}

	for i, run := range j.Runs {
		prefix := fmt.Sprintf("runs[%d]", i)

		if run.Directory == "" {
			errs = append(errs, fmt.Sprintf("%s: 'directory' is required", prefix))
		}
		if run.Mode != plan.ModePairing && run.Mode != plan.ModeBatch {
			errs = append(errs, fmt.Sprintf("%s: invalid mode '%s' — must be one of: pairing, batch", prefix, run.Mode))
		}
		for k, rec := range run.Renames {
			if rec.OldName == "" || rec.NewName == "" {
				errs = append(errs, fmt.Sprintf("%s.renames[%d]: 'old_name' and 'new_name' are required", prefix, k))
			}
		}
	}

	return errs
}
