package render

import (
	"bufio"
	"io"
	"regexp"
	"tldregex/internal/literal"
	"tldregex/pkg/serrors"
)

const (
	jsIndent       = "  "
	jsContinuation = "+\n"
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`) //nolint: gochecknoglobals

// JS renders
//
//	var <name> = new RegExp(
//	  "<chunk_1>"+
//	  "<chunk_n>"
//	);
type JS struct {
	ASCII bool
}

// Quoter implements Renderer.
func (r *JS) Quoter() literal.Quoter {
	return literal.JS{ASCII: r.ASCII}
}

// Validate implements Renderer.
func (r *JS) Validate(name string) error {
	if !jsIdentifier.MatchString(name) {
		return serrors.With(serrors.ErrBadRequest, "invalid JavaScript identifier %q", name)
	}

	return nil
}

// Render implements Renderer.
func (r *JS) Render(w io.Writer, name string, chunks []literal.Chunk) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("var " + name + " = new RegExp(\n")
	for i, c := range chunks {
		if i > 0 {
			_, _ = bw.WriteString(jsContinuation)
		}
		_, _ = bw.WriteString(jsIndent + `"` + c.Escaped + `"`)
	}
	_, _ = bw.WriteString("\n);\n")

	return bw.Flush()
}
