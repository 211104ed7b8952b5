// Package tldlist reads newline-delimited TLD lists.
//
// A list holds one entry per line. Surrounding whitespace is trimmed and a line
// is skipped when the trimmed form is empty or starts with "//". Entries are
// returned in file order; they are neither validated, sorted nor deduplicated.
package tldlist

import (
	"os"
	"strings"
	"tldregex/pkg/serrors"
	"unicode/utf8"
)

// CommentPrefix marks a line that carries no entry.
const CommentPrefix = "//"

// ReadFile reads the list stored at path.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInputNotFound, err, "could not read TLD list %q", path)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDecode, err, "could not decode TLD list %q", path)
	}

	return entries, nil
}

// Parse extracts the entries of a list held in memory. It fails when data is not
// valid UTF-8.
func Parse(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, serrors.With(serrors.ErrDecode, "invalid UTF-8 at byte %d", invalidOffset(data))
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func parseLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, CommentPrefix) {
		return "", false
	}

	return line, true
}

// invalidOffset returns the offset of the first byte that does not start a valid
// UTF-8 sequence.
func invalidOffset(data []byte) int {
	offset := 0
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
		data = data[size:]
	}

	return -1
}
