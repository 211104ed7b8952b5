// Package generator turns a TLD list file into a declaration of a regex matching
// any listed TLD as a suffix.
//
// The pipeline is read, filter, escape, join, encode, chunk and render. Output is
// assembled in memory and only returned once every step succeeded.
package generator

import (
	"bytes"
	"context"
	"tldregex/internal/literal"
	"tldregex/internal/pattern"
	"tldregex/internal/render"
	"tldregex/internal/tldlist"
	"tldregex/pkg/logger"
	"tldregex/pkg/serrors"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Defaults reproduce the declaration of the original tooling.
const (
	DefaultVarName = "tldRegex"
	DefaultWidth   = 70
)

// Options configures a Generator.
type Options struct {
	// VarName is the identifier the regex is assigned to.
	VarName string
	// Width bounds the escaped width of every literal chunk.
	Width int
	// Format is the target language, see render.ByName.
	Format string
	// Package is the package clause of go output.
	Package string
	// ASCII escapes non-ASCII characters in js output.
	ASCII bool
	// RejectEmpty fails with serrors.ErrEmptyInput instead of emitting \.()$
	// when no entry survives filtering.
	RejectEmpty bool
}

// Generator renders TLD lists as regex declarations.
type Generator struct {
	opts     Options
	renderer render.Renderer
}

// New validates opts and returns a Generator.
func New(opts Options) (*Generator, error) {
	if opts.Width <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "width must be positive, got %d", opts.Width)
	}

	renderer, err := render.ByName(opts.Format, render.Options{
		ASCII:   opts.ASCII,
		Package: opts.Package,
	})
	if err != nil {
		return nil, err
	}
	if err := renderer.Validate(opts.VarName); err != nil {
		return nil, err
	}

	return &Generator{opts: opts, renderer: renderer}, nil
}

// Pattern reads the list at path and returns its entries together with the
// pattern string \.(e1|e2|...)$.
func (g *Generator) Pattern(ctx context.Context, path string) (string, []string, error) {
	entries, err := tldlist.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	if len(entries) == 0 {
		if g.opts.RejectEmpty {
			return "", nil, serrors.With(serrors.ErrEmptyInput, "TLD list %q has no entries", path)
		}
		logger.Warn(ctx, "TLD list has no entries, pattern only matches a trailing dot", zap.String("path", path))
	}

	p := pattern.Build(entries)
	logger.Debug(ctx, "built pattern",
		zap.String("path", path),
		zap.Int("entries", len(entries)),
		zap.Int("patternLength", len(p)),
	)

	return p, entries, nil
}

// Generate returns the declaration for the list at path.
func (g *Generator) Generate(ctx context.Context, path string) (string, error) {
	p, _, err := g.Pattern(ctx, path)
	if err != nil {
		return "", err
	}

	chunks := literal.Split(p, g.opts.Width, g.renderer.Quoter())
	logger.Debug(ctx, "split pattern literal",
		zap.Int("chunks", len(chunks)),
		zap.Int("width", g.opts.Width),
	)

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, g.opts.VarName, chunks); err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, errors.Wrap(err, "render"), "could not render declaration")
	}

	return buf.String(), nil
}
