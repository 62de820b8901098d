// Package renamer provides the public Go library API for file-renamer.
//
// file-renamer builds reviewable rename plans for the files of one directory
// and applies them. Plans come from one of two workflows: pairing, where each
// target file borrows the base name of a source file, and batch, where a set
// of declarative rules is applied across a file list.
//
// # Basic Usage
//
//	client := renamer.New(renamer.Options{})
//
//	pairs := renamer.NewPairMap([]renamer.Pair{
//	    {Target: "IMG_01.png", Source: "vacation_01.jpg"},
//	})
//	p, err := client.BuildPlanFromPairs("/photos", pairs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Review p.Operations and p.Conflicts, then apply exactly those operations.
//	result, err := client.ExecuteRename(ctx, p.Operations)
package renamer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/engine"
	"github.com/bianoble/file-renamer/internal/journal"
	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/logging"
	"github.com/bianoble/file-renamer/internal/naming"
	"github.com/bianoble/file-renamer/internal/plan"
)

// Planner builds rename plans without touching the filesystem.
type Planner interface {
	BuildPlanFromPairs(dir string, pairs *PairMap) (*Plan, error)
	BuildPlanFromBatch(dir string, fileNames []string, params BatchParams) (*Plan, error)
}

// Executor applies previously built operations.
type Executor interface {
	ExecuteRename(ctx context.Context, ops []RenameOp) (*ExecuteResult, error)
}

// Lister enumerates the files of a directory in natural sort order.
type Lister interface {
	GetFilesInDirectory(dir string) ([]FileEntry, error)
}

// Options configures a Client.
type Options struct {
	// Fs is the filesystem to operate on. Default: the OS filesystem.
	Fs afero.Fs

	// CaseInsensitive forces name comparison with or without case folding.
	// If nil, the host default is used (folding on Windows and macOS).
	CaseInsensitive *bool

	// IncludeHidden lists dot files in GetFilesInDirectory.
	IncludeHidden bool

	// JournalPath, if set, receives a record of every ExecutePlan run.
	// Relative paths are resolved against the plan's directory.
	JournalPath string

	// Logger receives execution logs. Default: discard.
	Logger *logging.Logger

	// Progress, if set, is called after each operation settles.
	Progress func(done, total int)
}

// Client is the main entry point for the file-renamer library.
// It implements Planner, Executor, and Lister.
type Client struct {
	fs            afero.Fs
	planner       *plan.Planner
	executor      *engine.Executor
	includeHidden bool
	journalPath   string
	now           func() time.Time
}

// New creates a new Client.
func New(opts Options) *Client {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	caseInsensitive := naming.DefaultCaseInsensitive()
	if opts.CaseInsensitive != nil {
		caseInsensitive = *opts.CaseInsensitive
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		fs:      fs,
		planner: &plan.Planner{Fs: fs, CaseInsensitive: caseInsensitive},
		executor: &engine.Executor{
			Fs:              fs,
			Log:             log,
			CaseInsensitive: caseInsensitive,
			Progress:        opts.Progress,
		},
		includeHidden: opts.IncludeHidden,
		journalPath:   opts.JournalPath,
		now:           time.Now,
	}
}

// BuildPlanFromPairs builds a pairing plan. It fails only if dir cannot be
// read. A nil map yields an empty plan.
func (c *Client) BuildPlanFromPairs(dir string, pairs *PairMap) (*Plan, error) {
	var ps []Pair
	if pairs != nil {
		ps = pairs.Pairs()
	}
	return c.planner.FromPairs(dir, ps)
}

// BuildPlanFromBatch builds a batch plan over fileNames in the given order.
func (c *Client) BuildPlanFromBatch(dir string, fileNames []string, params BatchParams) (*Plan, error) {
	return c.planner.FromBatch(dir, fileNames, params)
}

// BuildPlanFromBatchEntries builds a batch plan where entries may carry a
// manual override name.
func (c *Client) BuildPlanFromBatchEntries(dir string, entries []BatchEntry, params BatchParams) (*Plan, error) {
	return c.planner.FromBatchEntries(dir, entries, params)
}

// ExecuteRename applies ops in order. Per-operation failures are reported in
// the result; the error is non-nil only for a structurally invalid list.
func (c *Client) ExecuteRename(ctx context.Context, ops []RenameOp) (*ExecuteResult, error) {
	return c.executor.Execute(ctx, ops)
}

// ExecutePlan applies p.Operations and, when a journal is configured,
// records the renames that completed.
func (c *Client) ExecutePlan(ctx context.Context, p *Plan) (*ExecuteResult, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no plan given", ErrInvalidOperations)
	}

	result, err := c.executor.Execute(ctx, p.Operations)
	if err != nil {
		return nil, err
	}

	if c.journalPath != "" {
		path := c.journalPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.Directory, path)
		}
		run := journal.NewRun(c.now(), p.Directory, p.Mode, result.Renamed, result.Errors)
		if err := journal.Append(c.fs, path, run); err != nil {
			return result, fmt.Errorf("recording journal: %w", err)
		}
	}

	return result, nil
}

// GetFilesInDirectory lists the regular files of dir in natural sort order.
func (c *Client) GetFilesInDirectory(dir string) ([]FileEntry, error) {
	return listing.List(c.fs, dir, listing.Options{IncludeHidden: c.includeHidden})
}

var defaultClient = New(Options{})

// BuildPlanFromPairs builds a pairing plan on the OS filesystem.
func BuildPlanFromPairs(dir string, pairs *PairMap) (*Plan, error) {
	return defaultClient.BuildPlanFromPairs(dir, pairs)
}

// BuildPlanFromBatch builds a batch plan on the OS filesystem.
func BuildPlanFromBatch(dir string, fileNames []string, params BatchParams) (*Plan, error) {
	return defaultClient.BuildPlanFromBatch(dir, fileNames, params)
}

// ExecuteRename applies ops on the OS filesystem.
func ExecuteRename(ctx context.Context, ops []RenameOp) (*ExecuteResult, error) {
	return defaultClient.ExecuteRename(ctx, ops)
}

// GetFilesInDirectory lists the visible regular files of dir on the OS
// filesystem.
func GetFilesInDirectory(dir string) ([]FileEntry, error) {
	return defaultClient.GetFilesInDirectory(dir)
}
