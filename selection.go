package mdedit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Selection is a half-open [Start, End) range of byte offsets into the
// document text. Start == End is a collapsed selection (a cursor).
type Selection struct {
	Start int
	End   int
}

// Validate checks the selection against the document text.
// Offsets must satisfy 0 <= Start <= End <= len(text) and fall on UTF-8
// rune boundaries. Invalid selections are rejected, not clamped: they
// indicate a contract violation at the UI boundary.
func (s Selection) Validate(text string) error {
	if s.Start < 0 || s.End < s.Start || s.End > len(text) {
		return fmt.Errorf("%w: [%d, %d) in text of %d bytes", ErrInvalidSelection, s.Start, s.End, len(text))
	}
	if !isRuneBoundary(text, s.Start) || !isRuneBoundary(text, s.End) {
		return fmt.Errorf("%w: [%d, %d) splits a UTF-8 sequence", ErrInvalidSelection, s.Start, s.End)
	}
	return nil
}

// isRuneBoundary reports whether offset i does not split a UTF-8 sequence.
func isRuneBoundary(text string, i int) bool {
	if i == 0 || i == len(text) {
		return true
	}
	return utf8.RuneStart(text[i])
}

// lineBounds returns the [start, end) byte range of the line containing
// offset pos. The trailing newline is not included.
func lineBounds(text string, pos int) (int, int) {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += pos
	}
	return start, end
}
