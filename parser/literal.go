package parser

import (
	"errors"
	"strconv"

	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/lexer"
)

// textLiteral matches characters between double quotes. There are no
// escape sequences: the first '"' after the opening one ends the literal.
var textLiteral = Map(
	Delimited(Char('"'), Concat(ZeroOrMore(NoneOf('"'))), Char('"')),
	func(s string) ast.Expr {
		return ast.Text(s)
	},
)

// integerLiteral matches a run of digits. A leading sign is not part of
// the literal.
var integerLiteral = TryMap(
	Concat(OneOrMore(Digit)),
	func(digits string, start, end lexer.Input) (ast.Expr, *Error) {
		i64, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			e := newError(ErrInternal, start, "64-bit integer")
			if errors.Is(err, strconv.ErrRange) {
				e.Err = ErrNumericOverflow
			}
			e.reach = end.Offset()
			return nil, e
		}
		return ast.Integer(i64), nil
	},
)

// atomOrBoolean matches an identifier and turns #t and #f into booleans.
var atomOrBoolean = Map(
	Pair(
		OneOf(lexer.ClassLetter, lexer.ClassSymbol),
		ZeroOrMore(OneOf(lexer.ClassAlnum, lexer.ClassSymbol)),
	),
	func(t Tuple[lexer.Token, []lexer.Token]) ast.Expr {
		token := t.First.Text() + lexer.Join(t.Second)
		switch token {
		case "#t":
			return ast.Boolean(true)
		case "#f":
			return ast.Boolean(false)
		}
		return ast.Symbol(token)
	},
)
