// Package literal encodes strings as the content of double-quoted source literals
// and splits them into width-bounded chunks.
//
// Widths are measured on original characters: a character counts as many units
// as its escaped form occupies, and a chunk boundary never falls inside an
// escape sequence.
package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quoter escapes single characters for a double-quoted string literal of some
// target language.
type Quoter interface {
	// Escape returns the text r occupies inside the literal.
	Escape(r rune) string
}

// JS quotes for JavaScript string literals. With ASCII set, every non-ASCII rune
// is written as a \u escape.
type JS struct {
	ASCII bool
}

// Escape implements Quoter.
func (q JS) Escape(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '"':
		return `\"`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\v':
		return `\v`
	case '\u2028', '\u2029':
		return unicodeEscape(r)
	}

	switch {
	case r < 0x20 || r == 0x7f:
		return fmt.Sprintf(`\x%02x`, r)
	case r < utf8.RuneSelf:
		return string(r)
	case q.ASCII || !unicode.IsPrint(r):
		return unicodeEscape(r)
	default:
		return string(r)
	}
}

// unicodeEscape writes r as \uXXXX, using a surrogate pair above the BMP.
func unicodeEscape(r rune) string {
	if r <= 0xffff {
		return fmt.Sprintf(`\u%04x`, r)
	}
	r -= 0x10000

	return fmt.Sprintf(`\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
}

// Go quotes for Go interpreted string literals, exactly as strconv.Quote does.
type Go struct{}

// Escape implements Quoter.
func (Go) Escape(r rune) string {
	q := strconv.Quote(string(r))

	return q[1 : len(q)-1]
}

// Quote returns the literal content of s without the enclosing quotes.
func Quote(s string, q Quoter) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(q.Escape(r))
	}

	return b.String()
}

// Chunk is a run of original characters together with its escaped form.
type Chunk struct {
	Raw     string
	Escaped string
}

// Width returns the number of characters the chunk occupies between its quotes.
func (c Chunk) Width() int {
	return utf8.RuneCountInString(c.Escaped)
}

// Split greedily cuts s into chunks whose escaped width does not exceed width.
// A character is added to the current chunk unless that would push the chunk
// past width, in which case a new chunk is started. A single character wider
// than width gets a chunk of its own. The last chunk is always returned, so an
// empty s yields one empty chunk. s must be valid UTF-8 and width positive.
func Split(s string, width int, q Quoter) []Chunk {
	var (
		chunks       []Chunk
		raw, escaped strings.Builder
		size         int
	)
	for _, r := range s {
		e := q.Escape(r)
		w := utf8.RuneCountInString(e)
		if raw.Len() > 0 && size+w > width {
			chunks = append(chunks, Chunk{Raw: raw.String(), Escaped: escaped.String()})
			raw.Reset()
			escaped.Reset()
			size = 0
		}
		raw.WriteRune(r)
		escaped.WriteString(e)
		size += w
	}

	return append(chunks, Chunk{Raw: raw.String(), Escaped: escaped.String()})
}
