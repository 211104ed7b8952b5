package render_test

import (
	"bytes"
	"testing"
	"tldregex/internal/literal"
	"tldregex/internal/render"
	"tldregex/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		opts    render.Options
		want    render.Renderer
		wantErr bool
	}{
		{name: "default is js", format: "", want: &render.JS{}},
		{name: "js ascii", format: render.FormatJS, opts: render.Options{ASCII: true}, want: &render.JS{ASCII: true}},
		{name: "go", format: render.FormatGo, opts: render.Options{Package: "tlds"}, want: &render.Go{Package: "tlds"}},
		{name: "go without package", format: render.FormatGo, wantErr: true},
		{name: "go with bad package", format: render.FormatGo, opts: render.Options{Package: "my-pkg"}, wantErr: true},
		{name: "unknown", format: "python", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.ByName(tt.format, tt.opts)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	js := &render.JS{}
	require.NoError(t, js.Validate("tldRegex"))
	require.NoError(t, js.Validate("$re_1"))
	require.ErrorIs(t, js.Validate(""), serrors.ErrBadRequest)
	require.ErrorIs(t, js.Validate("1re"), serrors.ErrBadRequest)
	require.ErrorIs(t, js.Validate("tld-regex"), serrors.ErrBadRequest)

	golang := &render.Go{Package: "tlds"}
	require.NoError(t, golang.Validate("TLDRegex"))
	require.ErrorIs(t, golang.Validate("$re"), serrors.ErrBadRequest)
	require.ErrorIs(t, golang.Validate("var"), serrors.ErrBadRequest)
}

func TestJSRender(t *testing.T) {
	chunks := literal.Split(`\.(com|net|org)$`, 10, literal.JS{})

	var buf bytes.Buffer
	require.NoError(t, (&render.JS{}).Render(&buf, "tldRegex", chunks))

	want := "var tldRegex = new RegExp(\n" +
		"  \"\\\\.(com|ne\"+\n" +
		"  \"t|org)$\"\n" +
		");\n"
	require.Equal(t, want, buf.String())
}

func TestJSRenderSingleChunk(t *testing.T) {
	chunks := literal.Split(`\.()$`, 70, literal.JS{})

	var buf bytes.Buffer
	require.NoError(t, (&render.JS{}).Render(&buf, "tldRegex", chunks))
	require.Equal(t, "var tldRegex = new RegExp(\n  \"\\\\.()$\"\n);\n", buf.String())
}

func TestJSQuoter(t *testing.T) {
	require.Equal(t, literal.JS{ASCII: true}, (&render.JS{ASCII: true}).Quoter())
	require.Equal(t, literal.Go{}, (&render.Go{}).Quoter())
}

func TestGoRender(t *testing.T) {
	r := &render.Go{Package: "tlds"}
	chunks := literal.Split(`\.(com|net|org)$`, 10, r.Quoter())

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "tldRegex", chunks))

	out := buf.String()
	require.Contains(t, out, "// Code generated by tldregex. DO NOT EDIT.")
	require.Contains(t, out, "package tlds")
	require.Contains(t, out, `import "regexp"`)
	require.Contains(t, out, "var tldRegex = regexp.MustCompile(")
	require.Contains(t, out, `"\\.(com|ne" +`)
	require.Contains(t, out, `"t|org)$")`)
}
