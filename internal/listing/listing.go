// Package listing enumerates the regular files of a directory in natural
// order. Plan iteration order follows input order, so the order here is part
// of the contract: names are sorted with naming.NaturalLess.
package listing

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/bianoble/file-renamer/internal/naming"
)

// FileEntry is one file of a directory snapshot.
type FileEntry struct {
	Name    string    `yaml:"name"`
	Path    string    `yaml:"path"`
	Size    int64     `yaml:"size"`
	ModTime time.Time `yaml:"mod_time"`
}

// Options controls which entries List returns.
type Options struct {
	// IncludeHidden keeps dot-files. They are skipped by default.
	IncludeHidden bool
}

// List returns the regular files directly inside dir. Directories and other
// non-regular entries are skipped. An empty dir yields an empty list.
func List(fs afero.Fs, dir string, opts Options) ([]FileEntry, error) {
	if dir == "" {
		return []FileEntry{}, nil
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	files := make([]FileEntry, 0, len(infos))
	for _, fi := range infos {
		if !fi.Mode().IsRegular() {
			continue
		}
		if !opts.IncludeHidden && IsHiddenName(fi.Name()) {
			continue
		}
		files = append(files, FileEntry{
			Name:    fi.Name(),
			Path:    filepath.Join(dir, fi.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return naming.NaturalLess(files[i].Name, files[j].Name)
	})
	return files, nil
}

// Names extracts the entry names, preserving order.
func Names(entries []FileEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// IsHiddenName reports whether name is a dot-file. "." and ".." are not
// considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
