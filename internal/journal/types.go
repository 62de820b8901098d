package journal

import (
	"time"

	"github.com/bianoble/file-renamer/internal/plan"
)

// DefaultFile is the journal file name used when none is configured.
const DefaultFile = ".file-renamer-journal.yaml"

// Journal is the on-disk record of completed rename runs, oldest first.
type Journal struct {
	Version int   `yaml:"version"`
	Runs    []Run `yaml:"runs"`
}

// Run records one execution against one directory.
type Run struct {
	Time      time.Time `yaml:"time"`
	Directory string    `yaml:"directory"`
	Mode      plan.Mode `yaml:"mode"`
	Renames   []Record  `yaml:"renames"`
	Errors    []string  `yaml:"errors,omitempty"`
}

// Record is one rename that completed.
type Record struct {
	OldName    string `yaml:"old_name"`
	NewName    string `yaml:"new_name"`
	SourceName string `yaml:"source_name,omitempty"`
}

// NewRun builds a Run from the operations that were applied.
func NewRun(at time.Time, dir string, mode plan.Mode, renamed []plan.RenameOp, errs []string) Run {
	records := make([]Record, len(renamed))
	for i, op := range renamed {
		records[i] = Record{OldName: op.OldName, NewName: op.NewName, SourceName: op.SourceName}
	}
	return Run{Time: at.UTC(), Directory: dir, Mode: mode, Renames: records, Errors: errs}
}
