package parser

import (
	"log"

	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/lexer"
)

// grammar holds the rules for a single parse. Rules are mutually recursive
// through parseExpr.
type grammar struct {
	maxDepth int
	trace    bool

	// farthest is the failure that got furthest into the input, including
	// failures discarded by repetition.
	farthest *Error

	// memo holds element sequences already parsed, the dotted and plain
	// list alternatives share them.
	memo map[memoKey]memoItems

	expr          Rule[ast.Expr]
	items         Rule[[]ast.Expr]
	list          Rule[ast.Expr]
	dotted        Rule[lexer.Token]
	dottedList    Rule[ast.Expr]
	quoted        Rule[ast.Expr]
	parenthesized Rule[ast.Expr]
	program       Rule[[]ast.Expr]
}

func newGrammar(opts ParserOptions) *grammar {
	g := &grammar{
		maxDepth: opts.maxDepth(),
		trace:    opts.Trace,
		memo:     make(map[memoKey]memoItems),
	}

	expr := Rule[ast.Expr](g.parseExpr)

	g.items = g.memoize(Optional(
		Map(
			Pair(expr, ZeroOrMore(Preceded(Whitespace1, expr))),
			func(t Tuple[ast.Expr, []ast.Expr]) []ast.Expr {
				return append([]ast.Expr{t.First}, t.Second...)
			},
		),
		[]ast.Expr{},
	))

	g.list = g.rule("list", Map(g.items, func(items []ast.Expr) ast.Expr {
		return ast.NewList(items...)
	}))

	g.dotted = Delimited(Whitespace0, Char('.'), Whitespace0)

	g.dottedList = g.rule("dotted list", Map(
		Pair(Terminated(g.items, g.dotted), expr),
		func(t Tuple[[]ast.Expr, ast.Expr]) ast.Expr {
			return ast.NewDottedPair(t.First, t.Second)
		},
	))

	g.quoted = g.rule("quoted form", Preceded(
		Char('\''),
		g.nested(Map(expr, func(e ast.Expr) ast.Expr {
			return ast.Quote(e)
		})),
	))

	// The dotted form goes first: it is the longer match and fails without
	// consuming the closing paren of a plain list. Whitespace is allowed
	// after "(" and before ")", so "( a )" and "(a . b )" parse, which the
	// bare "(" (dotted-list | list) ")" production would reject.
	inner := Delimited(Whitespace0, Alt(g.dottedList, g.list), Whitespace0)
	g.parenthesized = g.rule("parenthesized list", Preceded(
		Char('('),
		g.nested(Terminated(inner, Char(')'))),
	))

	g.expr = g.rule("expression", Alt(
		g.rule("atom", atomOrBoolean),
		g.rule("integer", integerLiteral),
		g.rule("text", textLiteral),
		g.quoted,
		g.parenthesized,
	))

	g.program = Delimited(Whitespace0, g.items, Whitespace0)

	return g
}

func (g *grammar) parseExpr(in lexer.Input) (ast.Expr, lexer.Input, *Error) {
	e, rest, err := g.expr(in)
	if err != nil {
		g.track(err)
	}
	return e, rest, err
}

// nested applies r one nesting level deeper and fails once the maximum
// depth is reached.
func (g *grammar) nested(r Rule[ast.Expr]) Rule[ast.Expr] {
	return func(in lexer.Input) (ast.Expr, lexer.Input, *Error) {
		if in.Depth() >= g.maxDepth {
			err := newError(ErrDepthExceeded, in, "")
			g.track(err)
			return nil, in, err
		}
		e, rest, err := r(in.Enter())
		if err != nil {
			return nil, in, err
		}
		return e, rest.Leave(), nil
	}
}

type memoKey struct {
	offset int
	depth  int
}

type memoItems struct {
	items []ast.Expr
	rest  lexer.Input
}

func (g *grammar) memoize(r Rule[[]ast.Expr]) Rule[[]ast.Expr] {
	return func(in lexer.Input) ([]ast.Expr, lexer.Input, *Error) {
		key := memoKey{offset: in.Offset(), depth: in.Depth()}
		if m, ok := g.memo[key]; ok {
			return m.items, m.rest, nil
		}
		items, rest, err := r(in)
		if err != nil {
			return nil, in, err
		}
		g.memo[key] = memoItems{items: items, rest: rest}
		return items, rest, nil
	}
}

// rule names r for error messages and traces.
func (g *grammar) rule(name string, r Rule[ast.Expr]) Rule[ast.Expr] {
	return func(in lexer.Input) (ast.Expr, lexer.Input, *Error) {
		e, rest, err := r(in)
		if err != nil {
			if err.Expected == "" {
				err.Expected = name
			}
			if g.trace {
				log.Printf("parser: %s %v: %v", name, in, err)
			}
			return nil, in, err
		}
		if g.trace {
			log.Printf("parser: %s %v: %v", name, in, e)
		}
		return e, rest, nil
	}
}

func (g *grammar) track(err *Error) {
	if err.deeper(g.farthest) {
		g.farthest = err
	}
}

// failure attaches the farthest failure seen during the parse to err when
// it got further than err itself.
func (g *grammar) failure(err *Error) *Error {
	if g.farthest != nil && g.farthest != err && g.farthest.deeper(err) {
		err.Cause = g.farthest
		err.reach = g.farthest.reach
	}
	return err
}
