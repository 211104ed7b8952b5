// Package pattern assembles the suffix regex matching a literal dot followed by
// any one of a list of TLDs at the end of the input.
package pattern

import (
	"regexp"
	"strings"
)

const (
	prefix    = `\.(`
	suffix    = `)$`
	separator = "|"
)

// Escape escapes every regex metacharacter of entry so it matches only itself.
func Escape(entry string) string {
	return regexp.QuoteMeta(entry)
}

// Build returns \.(e1|e2|...)$ with every entry escaped, in the given order.
// An empty list yields \.()$, which matches a trailing dot only.
func Build(entries []string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, entry := range entries {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(Escape(entry))
	}
	b.WriteString(suffix)

	return b.String()
}

// Compile builds the pattern of entries and compiles it.
func Compile(entries []string) (*regexp.Regexp, error) {
	return regexp.Compile(Build(entries))
}
