package engine

import (
	"fmt"
	"strings"

	"github.com/bianoble/file-renamer/internal/plan"
)

// Phases a RenameError can come from.
const (
	PhaseCheck    = "check"    // operation rejected before touching the filesystem
	PhaseStage    = "stage"    // moving the file to its temporary name
	PhaseFinalize = "finalize" // moving the file to its new name
	PhaseSkipped  = "skipped"  // never started because execution was cancelled
)

// RenameError describes one operation that did not complete.
type RenameError struct {
	OldName string
	NewName string
	Phase   string
	Err     error
}

func (e RenameError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", e.OldName, e.NewName, e.Err)
}

func (e RenameError) Unwrap() error {
	return e.Err
}

// ExecuteResult holds the outcome of one execution. Failures are listed in
// the order of the operations they belong to.
type ExecuteResult struct {
	Success  int
	Errors   []string
	Failed   []RenameError
	Renamed  []plan.RenameOp
	Canceled bool
}

// OperationsError lists every structural problem in an operation list.
type OperationsError struct {
	Errors []string
}

func (e *OperationsError) Error() string {
	return fmt.Sprintf("%s:\n  - %s", ErrInvalidOperations, strings.Join(e.Errors, "\n  - "))
}

// Is makes errors.Is(err, ErrInvalidOperations) hold.
func (e *OperationsError) Is(target error) bool {
	return target == ErrInvalidOperations
}
