// Package naming holds the pure string transforms shared by the pairing and
// batch planners: extension splitting, numbering, the batch pipeline, name
// validation, natural ordering and comparison keys.
package naming

import "strings"

// SplitExtension splits name into its base and extension. The extension runs
// from the last "." (inclusive) to the end of the name. A name without a "."
// or whose only "." is the leading character has no extension, so ".bashrc"
// yields (".bashrc", "").
func SplitExtension(name string) (base, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// ComputeNewNameFromSource returns the source's base name joined with the
// target's extension. The target keeps its extension; the source only donates
// its base.
func ComputeNewNameFromSource(targetName, sourceName string) string {
	_, ext := SplitExtension(targetName)
	base, _ := SplitExtension(sourceName)
	return base + ext
}
