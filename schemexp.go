// Package schemexp reads Lisp/Scheme source text into S-expression trees.
//
// The grammar is implemented in package parser with backtracking
// combinators, the resulting values are defined in package ast.
package schemexp

import (
	"bytes"
	"io"

	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/parser"
)

// Reader parses every expression from an io.Reader
type Reader struct {
	r    io.Reader
	opts parser.ParserOptions
}

// Parse reads exactly one expression from in. Surrounding whitespace is
// allowed.
func Parse(in []byte) (ast.Expr, error) {
	p := parser.New()
	return p.ParseExpr(string(in))
}

// ParseAll reads all the whitespace-separated expressions in in.
func ParseAll(in []byte) ([]ast.Expr, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetOptions sets the options used by the underlying parser
func (r *Reader) SetOptions(opts parser.ParserOptions) {
	r.opts = opts
}

// Parse consumes the reader and returns every expression found in it.
func (r *Reader) Parse() ([]ast.Expr, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}

	p := parser.New()
	p.SetOptions(r.opts)
	return p.ParseAll(string(in))
}
