package reader

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Upper bound for a single source line. Faces of large n-gons exported on a
// single line can exceed the bufio default of 64K.
const maxLineLen = 16 * 1024 * 1024

// Create a line scanner for a UTF-8 text stream. A leading byte order mark
// is stripped.
func newLineScanner(r io.Reader) *bufio.Scanner {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	return scanner
}
