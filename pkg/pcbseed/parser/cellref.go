package parser

import "strings"

// ColumnLetters returns the leading alphabetic prefix of a cell reference,
// e.g. "C" for "C14".
func ColumnLetters(ref string) string {
	for i, r := range ref {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return ref[:i]
		}
	}
	return ref
}

// ColumnNumber converts column letters to a 1-based index ("A" = 1, "AA" = 27).
// It returns 0 for an empty or non-alphabetic name.
func ColumnNumber(name string) int {
	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0
		}
		n = n*26 + int(r-'A'+1)
	}
	return n
}

// ColumnName converts a 1-based column index to letters.
func ColumnName(n int) string {
	if n <= 0 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}
