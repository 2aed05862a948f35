package parser

import (
	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/lexer"
)

// DefaultMaxDepth is the nesting limit used when ParserOptions.MaxDepth is
// zero.
const DefaultMaxDepth = 512

// ParserOptions configures a Parser
type ParserOptions struct {
	// MaxDepth is the maximum nesting of parenthesized and quoted forms.
	MaxDepth int

	// Trace logs every named grammar rule attempt.
	Trace bool
}

func (opts ParserOptions) maxDepth() int {
	if opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return opts.MaxDepth
}

// Parser reads S-expressions from text. A Parser keeps no state between
// calls, so Parse, ParseExpr and ParseAll can be called from multiple
// goroutines. SetOptions is not synchronized and must not run concurrently
// with them.
type Parser struct {
	opts ParserOptions
}

// New creates a Parser with default options
func New() *Parser {
	return &Parser{}
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(opts ParserOptions) {
	p.opts = opts
}

// Options returns the parser options
func (p *Parser) Options() ParserOptions {
	return p.opts
}

// Parse reads one expression from the start of in and returns it with the
// text that follows it. On failure the returned text is in itself.
func (p *Parser) Parse(in string) (ast.Expr, string, error) {
	g := newGrammar(p.opts)

	e, rest, err := g.parseExpr(lexer.New(in))
	if err != nil {
		if err.Expected == "" {
			err.Expected = "expression"
		}
		return nil, in, g.failure(err)
	}
	return e, rest.Remaining(), nil
}

// ParseExpr reads exactly one expression. Whitespace around it is allowed,
// anything else is an error.
func (p *Parser) ParseExpr(in string) (ast.Expr, error) {
	g := newGrammar(p.opts)

	e, rest, err := Delimited(Whitespace0, Rule[ast.Expr](g.parseExpr), Whitespace0)(lexer.New(in))
	if err != nil {
		return nil, g.failure(err)
	}
	if !rest.EOF() {
		return nil, g.failure(newError(ErrTrailingInput, rest, "end of input"))
	}
	return e, nil
}

// ParseAll reads a sequence of whitespace-separated expressions that spans
// the whole input.
func (p *Parser) ParseAll(in string) ([]ast.Expr, error) {
	g := newGrammar(p.opts)

	exprs, rest, err := g.program(lexer.New(in))
	if err != nil {
		return nil, g.failure(err)
	}
	if !rest.EOF() {
		return nil, g.failure(newError(ErrTrailingInput, rest, "end of input"))
	}
	return exprs, nil
}

// Parse reads one expression from the start of in using default options.
func Parse(in string) (ast.Expr, string, error) {
	return New().Parse(in)
}

// ParseAll reads every expression in in using default options.
func ParseAll(in string) ([]ast.Expr, error) {
	return New().ParseAll(in)
}
