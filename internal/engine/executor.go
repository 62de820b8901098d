// Package engine applies approved rename plans to the filesystem.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/logging"
	"github.com/bianoble/file-renamer/internal/naming"
	"github.com/bianoble/file-renamer/internal/plan"
	"github.com/bianoble/file-renamer/internal/sandbox"
)

// ErrInvalidOperations is returned when the operation list itself is
// unusable. Individual filesystem failures never produce it.
var ErrInvalidOperations = errors.New("invalid operation list")

// ErrDestinationExists is recorded when a file appeared at an operation's
// new name after the plan was built.
var ErrDestinationExists = errors.New("destination already exists")

// Executor performs rename operations one at a time, in list order.
type Executor struct {
	Fs              afero.Fs
	Log             *logging.Logger
	CaseInsensitive bool

	// Progress, if set, is called after each operation settles, successfully
	// or not.
	Progress func(done, total int)
}

// NewExecutor returns an Executor on the OS filesystem using the host's case
// sensitivity.
func NewExecutor(log *logging.Logger) *Executor {
	return &Executor{Fs: afero.NewOsFs(), Log: log, CaseInsensitive: naming.DefaultCaseInsensitive()}
}

type staged struct {
	index int
	op    plan.RenameOp
	tmp   string
}

// Execute applies ops in two phases. Every source is first moved to a
// temporary sibling name, then every staged file is moved to its new name.
// Staging first lets chains and swaps inside one plan succeed without ever
// overwriting a file.
//
// A failing operation is recorded and the rest continue; applied renames are
// not rolled back. A file whose final move fails is returned to its old name.
// Cancellation is checked between operations while staging; files already
// staged are still finalized so none is left under a temporary name.
func (e *Executor) Execute(ctx context.Context, ops []plan.RenameOp) (*ExecuteResult, error) {
	if err := e.validate(ops); err != nil {
		return nil, err
	}

	fs := e.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	log := e.Log
	if log == nil {
		log = logging.Nop()
	}

	total := len(ops)
	failures := make([]*RenameError, total)
	renamed := make([]bool, total)
	done := 0
	settle := func() {
		done++
		if e.Progress != nil {
			e.Progress(done, total)
		}
	}
	fail := func(i int, phase string, err error) {
		failures[i] = &RenameError{OldName: ops[i].OldName, NewName: ops[i].NewName, Phase: phase, Err: err}
		log.Warn().Str("old", ops[i].OldName).Str("new", ops[i].NewName).Str("phase", phase).Err(err).Msg("rename failed")
		settle()
	}

	result := &ExecuteResult{Renamed: []plan.RenameOp{}}
	var pending []staged

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			result.Canceled = true
			for j := i; j < total; j++ {
				fail(j, PhaseSkipped, fmt.Errorf("not started: %w", err))
			}
			break
		}

		if _, err := fs.Stat(op.OldPath); err != nil {
			fail(i, PhaseStage, fmt.Errorf("reading source: %w", err))
			continue
		}

		tmp, err := tempSibling(fs, op.OldPath, i)
		if err != nil {
			fail(i, PhaseStage, err)
			continue
		}
		if err := fs.Rename(op.OldPath, tmp); err != nil {
			fail(i, PhaseStage, fmt.Errorf("moving to temporary name: %w", err))
			continue
		}
		log.Debug().Str("old", op.OldName).Str("tmp", filepath.Base(tmp)).Msg("staged")
		pending = append(pending, staged{index: i, op: op, tmp: tmp})
	}

	for _, s := range pending {
		if err := finalize(fs, s); err != nil {
			fail(s.index, PhaseFinalize, err)
			continue
		}
		renamed[s.index] = true
		log.Debug().Str("old", s.op.OldName).Str("new", s.op.NewName).Msg("renamed")
		settle()
	}

	for i, op := range ops {
		if renamed[i] {
			result.Success++
			result.Renamed = append(result.Renamed, op)
		}
		if f := failures[i]; f != nil {
			result.Failed = append(result.Failed, *f)
			result.Errors = append(result.Errors, f.Error())
		}
	}

	return result, nil
}

// finalize moves a staged file to its new name. On any failure the file is
// put back under its old name.
func finalize(fs afero.Fs, s staged) error {
	var moveErr error
	if _, err := fs.Stat(s.op.NewPath); err == nil {
		moveErr = ErrDestinationExists
	} else if err := fs.Rename(s.tmp, s.op.NewPath); err != nil {
		moveErr = err
	} else {
		return nil
	}

	if err := fs.Rename(s.tmp, s.op.OldPath); err != nil {
		return fmt.Errorf("%w; restoring failed, file left as %s: %v", moveErr, filepath.Base(s.tmp), err)
	}
	return moveErr
}

// tempSibling picks an unused hidden name next to path.
func tempSibling(fs afero.Fs, path string, index int) (string, error) {
	dir := filepath.Dir(path)
	for attempt := 0; attempt < 100; attempt++ {
		name := fmt.Sprintf(".file-renamer-%d-%d-%d.tmp", os.Getpid(), index, attempt)
		candidate := filepath.Join(dir, name)
		if _, err := fs.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free temporary name next to %s", filepath.Base(path))
}

// validate rejects lists that no plan could have produced.
func (e *Executor) validate(ops []plan.RenameOp) error {
	if ops == nil {
		return &OperationsError{Errors: []string{"operation list is absent"}}
	}

	var errs []string
	sources := make(map[string]int, len(ops))
	dests := make(map[string]int, len(ops))

	for i, op := range ops {
		prefix := fmt.Sprintf("operations[%d]", i)

		if op.OldPath == "" || op.NewPath == "" {
			errs = append(errs, fmt.Sprintf("%s: old and new paths are required", prefix))
			continue
		}
		if err := sandbox.ValidateRename(op.OldPath, op.NewPath); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", prefix, err))
			continue
		}
		if filepath.Base(op.OldPath) != op.OldName || filepath.Base(op.NewPath) != op.NewName {
			errs = append(errs, fmt.Sprintf("%s: names do not match paths", prefix))
			continue
		}

		src := naming.Key(filepath.Clean(op.OldPath), e.CaseInsensitive)
		dst := naming.Key(filepath.Clean(op.NewPath), e.CaseInsensitive)
		if j, ok := sources[src]; ok {
			errs = append(errs, fmt.Sprintf("%s: renames '%s' again (first in operations[%d])", prefix, op.OldName, j))
		} else {
			sources[src] = i
		}
		if j, ok := dests[dst]; ok {
			errs = append(errs, fmt.Sprintf("%s: new name '%s' already used by operations[%d]", prefix, op.NewName, j))
		} else {
			dests[dst] = i
		}
	}

	if len(errs) > 0 {
		return &OperationsError{Errors: errs}
	}
	return nil
}
