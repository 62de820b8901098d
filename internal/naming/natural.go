package naming

import "strings"

// NaturalLess orders names so that runs of digits compare by numeric value
// ("file2" < "file10") and letters compare case-insensitively. Equal numbers
// with different zero padding order the shorter run first.
func NaturalLess(a, b string) bool {
	ai, bi := 0, 0
	la, lb := len(a), len(b)

	for ai < la && bi < lb {
		ca, cb := a[ai], b[bi]

		if isDigit(ca) && isDigit(cb) {
			startA, startB := ai, bi
			for ai < la && isDigit(a[ai]) {
				ai++
			}
			for bi < lb && isDigit(b[bi]) {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			if lenA, lenB := ai-startA, bi-startB; lenA != lenB {
				return lenA < lenB
			}
			continue
		}

		if lca, lcb := lowerASCII(ca), lowerASCII(cb); lca != lcb {
			return lca < lcb
		}
		ai++
		bi++
	}

	if la-ai != lb-bi {
		return la-ai < lb-bi
	}
	// Case-insensitively equal: fall back to byte order for a total order.
	return a < b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
