// Package render writes a chunked regex literal as a source declaration.
package render

import (
	"go/token"
	"io"
	"tldregex/internal/literal"
	"tldregex/pkg/serrors"
)

// Supported formats.
const (
	FormatJS = "js"
	FormatGo = "go"
)

// Renderer writes a declaration assigning the concatenation of chunks, compiled
// as a regular expression, to the variable name.
type Renderer interface {
	// Quoter returns the quoter chunk widths must be measured with.
	Quoter() literal.Quoter
	// Validate reports whether name can be declared in the target language.
	Validate(name string) error
	Render(w io.Writer, name string, chunks []literal.Chunk) error
}

// Options configures the renderer returned by ByName.
type Options struct {
	// ASCII escapes non-ASCII characters in js output.
	ASCII bool
	// Package is the package clause of go output.
	Package string
}

// ByName returns the renderer for format. An empty format selects js.
func ByName(format string, opts Options) (Renderer, error) {
	switch format {
	case "", FormatJS:
		return &JS{ASCII: opts.ASCII}, nil
	case FormatGo:
		if !token.IsIdentifier(opts.Package) {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid Go package name %q", opts.Package)
		}

		return &Go{Package: opts.Package}, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown format %q", format)
	}
}
