package naming

import (
	"fmt"
	"strings"
)

// Position selects where a sequence number is inserted.
type Position string

const (
	PositionStart Position = "start" // Number goes before the base name.
	PositionEnd   Position = "end"   // Number goes after the base name, before the extension.
)

// Transform is the resolved form of the batch parameters consumed by
// ApplyBatchTransforms. Every zero field is a no-op.
type Transform struct {
	Find            string
	Replace         string
	Prefix          string
	Suffix          string
	RemoveFromStart int
	RemoveFromEnd   int

	Numbering       bool
	NumberPosition  Position
	NumberWidth     int
	NumberStart     int
	NumberSeparator string
}

// FormatNumber zero-pads n to width digits. Numbers wider than width are
// printed in full.
func FormatNumber(n, width int) string {
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%0*d", width, n)
}

// ApplyNumbering joins the formatted number with base using sep. With
// PositionStart the number precedes base; any other position appends it.
func ApplyNumbering(base string, n int, pos Position, width int, sep string) string {
	num := FormatNumber(n, width)
	if pos == PositionStart {
		return num + sep + base
	}
	return base + sep + num
}

// TrimRunes removes fromEnd runes from the end of s, then fromStart runes from
// the start. Counts that overlap or exceed the length clamp to an empty result.
func TrimRunes(s string, fromStart, fromEnd int) string {
	if fromStart <= 0 && fromEnd <= 0 {
		return s
	}
	r := []rune(s)
	if fromEnd > 0 {
		if fromEnd >= len(r) {
			return ""
		}
		r = r[:len(r)-fromEnd]
	}
	if fromStart > 0 {
		if fromStart >= len(r) {
			return ""
		}
		r = r[fromStart:]
	}
	return string(r)
}

// ApplyBatchTransforms runs the batch pipeline over name. The extension is
// split off first and re-appended last; the stages operate on the base in a
// fixed order: trim, literal replace, prefix, suffix, numbering. index is the
// zero-based position among accepted renames and only matters when numbering
// is enabled.
func ApplyBatchTransforms(name string, t Transform, index int) string {
	base, ext := SplitExtension(name)

	base = TrimRunes(base, t.RemoveFromStart, t.RemoveFromEnd)

	if t.Find != "" {
		base = strings.ReplaceAll(base, t.Find, t.Replace)
	}

	base = t.Prefix + base + t.Suffix

	if t.Numbering {
		base = ApplyNumbering(base, t.NumberStart+index, t.NumberPosition, t.NumberWidth, t.NumberSeparator)
	}

	return base + ext
}
