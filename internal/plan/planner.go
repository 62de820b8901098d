// Package plan builds rename plans. A Planner reads the target directory
// once per call to learn the working set, computes every resulting name and
// sorts each target into an operation, a conflict, or a silent no-op.
package plan

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/naming"
)

// ErrNoDirectory is returned when a planning call names no directory.
var ErrNoDirectory = errors.New("no target directory given")

// Planner builds plans against a filesystem. It holds configuration only;
// concurrent calls are safe.
type Planner struct {
	Fs              afero.Fs
	CaseInsensitive bool
}

// NewPlanner returns a Planner on the OS filesystem using the host's case
// sensitivity.
func NewPlanner() *Planner {
	return &Planner{Fs: afero.NewOsFs(), CaseInsensitive: naming.DefaultCaseInsensitive()}
}

// BatchEntry is one file of a batch. Override, when set, replaces Name as
// the input of the batch pipeline; Name is still the file that is renamed.
type BatchEntry struct {
	Name     string `yaml:"name"`
	Override string `yaml:"override,omitempty"`
}

// FromPairs builds a pairing plan. Pairs are processed in order, so the
// earlier of two colliding pairs wins and the later becomes a conflict.
func (p *Planner) FromPairs(dir string, pairs []Pair) (*Plan, error) {
	existing, err := p.workingSet(dir)
	if err != nil {
		return nil, err
	}

	items := make([]item, len(pairs))
	for i, pr := range pairs {
		items[i] = item{name: pr.Target, source: pr.Source}
	}

	compute := func(it item, _ int) string {
		return naming.ComputeNewNameFromSource(it.name, it.source)
	}
	return p.resolve(dir, ModePairing, items, existing, compute), nil
}

// FromBatch builds a batch plan over fileNames with no manual overrides.
func (p *Planner) FromBatch(dir string, fileNames []string, params BatchParams) (*Plan, error) {
	entries := make([]BatchEntry, len(fileNames))
	for i, n := range fileNames {
		entries[i] = BatchEntry{Name: n}
	}
	return p.FromBatchEntries(dir, entries, params)
}

// FromBatchEntries builds a batch plan. Sequence numbers are assigned only to
// accepted operations, so numbering stays contiguous across conflicts.
func (p *Planner) FromBatchEntries(dir string, entries []BatchEntry, params BatchParams) (*Plan, error) {
	tr, err := params.Transform()
	if err != nil {
		return nil, err
	}

	existing, err := p.workingSet(dir)
	if err != nil {
		return nil, err
	}

	items := make([]item, len(entries))
	for i, e := range entries {
		items[i] = item{name: e.Name, input: e.Override}
	}

	compute := func(it item, index int) string {
		in := it.name
		if it.input != "" {
			in = it.input
		}
		return naming.ApplyBatchTransforms(in, tr, index)
	}
	return p.resolve(dir, ModeBatch, items, existing, compute), nil
}

// workingSet lists every regular file of dir, hidden ones included, since
// any of them can block a rename.
func (p *Planner) workingSet(dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoDirectory
	}
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	entries, err := listing.List(fs, dir, listing.Options{IncludeHidden: true})
	if err != nil {
		return nil, err
	}
	return listing.Names(entries), nil
}

type item struct {
	name   string // file on disk
	input  string // batch override fed to the pipeline
	source string // pairing source
}

type nameFunc func(it item, index int) string

// resolve runs planning passes until the set of files assumed to be renamed
// away matches the files that actually got operations. The first pass
// assumes every listed target departs; each later pass keeps only the
// targets that produced an operation. The set never grows, so the loop ends,
// and at the fixed point no operation lands on a surviving file.
func (p *Planner) resolve(dir string, mode Mode, items []item, existing []string, compute nameFunc) *Plan {
	departing := make(map[string]bool, len(items))
	for _, it := range items {
		departing[p.key(it.name)] = true
	}

	for {
		result := p.pass(dir, mode, items, existing, departing, compute)

		next := make(map[string]bool, len(result.Operations))
		for _, op := range result.Operations {
			if k := p.key(op.OldName); departing[k] {
				next[k] = true
			}
		}
		if len(next) == len(departing) {
			return result
		}
		departing = next
	}
}

func (p *Planner) pass(dir string, mode Mode, items []item, existing []string, departing map[string]bool, compute nameFunc) *Plan {
	result := &Plan{
		Directory:  dir,
		Mode:       mode,
		Operations: []RenameOp{},
		Conflicts:  []Conflict{},
	}

	present := make(map[string]bool, len(existing)+len(items))
	for _, n := range existing {
		present[p.key(n)] = true
	}
	for _, it := range items {
		present[p.key(it.name)] = true
	}

	claimed := make(map[string]string) // key of new name → target that claimed it
	seen := make(map[string]bool)
	index := 0

	for _, it := range items {
		oldKey := p.key(it.name)
		newName := compute(it, index)

		conflict := func(reason, detail string) {
			result.Conflicts = append(result.Conflicts, Conflict{
				TargetName: it.name,
				SourceName: it.source,
				NewName:    newName,
				Reason:     reason,
				Detail:     detail,
			})
		}

		if seen[oldKey] {
			conflict(ReasonDuplicateTarget, fmt.Sprintf("%s is listed more than once", it.name))
			continue
		}
		seen[oldKey] = true

		if newName == it.name {
			continue
		}

		if reason := naming.InvalidNameReason(newName); reason != "" {
			conflict(ReasonInvalidName, reason)
			continue
		}

		newKey := p.key(newName)
		if prev, ok := claimed[newKey]; ok {
			conflict(ReasonDuplicateName, fmt.Sprintf("also produced by %s", prev))
			continue
		}
		if present[newKey] && !departing[newKey] && newKey != oldKey {
			conflict(ReasonExistingFile, fmt.Sprintf("%s stays in place", newName))
			continue
		}

		result.Operations = append(result.Operations, RenameOp{
			OldPath:    filepath.Join(dir, it.name),
			NewPath:    filepath.Join(dir, newName),
			OldName:    it.name,
			NewName:    newName,
			SourceName: it.source,
		})
		claimed[newKey] = it.name
		index++
	}

	return result
}

func (p *Planner) key(name string) string {
	return naming.Key(name, p.CaseInsensitive)
}
