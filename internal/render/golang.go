package render

import (
	"go/token"
	"io"
	"tldregex/internal/literal"
	"tldregex/pkg/serrors"

	"github.com/dave/jennifer/jen"
)

// generatedHeader follows the convention recognized by Go tooling.
const generatedHeader = "Code generated by tldregex. DO NOT EDIT."

// Go renders a Go source file declaring the regex with regexp.MustCompile.
type Go struct {
	Package string
}

// Quoter implements Renderer. jen.Lit quotes strings with strconv.Quote, which
// is what literal.Go measures.
func (r *Go) Quoter() literal.Quoter {
	return literal.Go{}
}

// Validate implements Renderer.
func (r *Go) Validate(name string) error {
	if !token.IsIdentifier(name) {
		return serrors.With(serrors.ErrBadRequest, "invalid Go identifier %q", name)
	}

	return nil
}

// Render implements Renderer.
func (r *Go) Render(w io.Writer, name string, chunks []literal.Chunk) error {
	f := jen.NewFile(r.Package)
	f.HeaderComment(generatedHeader)

	f.Commentf("%s matches a dot followed by one of the listed TLDs at the end of the input.", name)
	f.Var().Id(name).Op("=").Qual("regexp", "MustCompile").Call(concat(chunks))

	return f.Render(w)
}

// concat joins the chunk literals with +, one literal per line.
func concat(chunks []literal.Chunk) jen.Code {
	if len(chunks) == 0 {
		return jen.Lit("")
	}

	expr := jen.Lit(chunks[0].Raw)
	for _, c := range chunks[1:] {
		expr = expr.Op("+").Line().Lit(c.Raw)
	}

	return expr
}
