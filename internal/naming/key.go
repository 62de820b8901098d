package naming

import (
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultCaseInsensitive reports whether the host's default filesystem
// treats names that differ only in case as the same file.
func DefaultCaseInsensitive() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// Key returns the form of name used to decide whether two names refer to the
// same directory entry. Names are NFC-normalized so that decomposed names
// (as stored by macOS) match their composed spelling; with caseInsensitive
// they are also case-folded.
func Key(name string, caseInsensitive bool) string {
	k := norm.NFC.String(name)
	if caseInsensitive {
		k = cases.Fold().String(k)
	}
	return k
}
