package parser

import (
	"strconv"

	"github.com/xiam/schemexp/lexer"
)

// Satisfy matches one character accepted by pred.
func Satisfy(class lexer.Class, pred func(rune) bool, expected string) Rule[lexer.Token] {
	return func(in lexer.Input) (lexer.Token, lexer.Input, *Error) {
		tok, rest, ok := in.Match(class, pred)
		if !ok {
			return lexer.Token{}, in, errorAt(in, expected)
		}
		return tok, rest, nil
	}
}

// OneOf matches one character of the given classes.
func OneOf(classes ...lexer.Class) Rule[lexer.Token] {
	expected := ""
	for i, c := range classes {
		if i > 0 {
			expected += " or "
		}
		expected += c.String()
	}
	return Satisfy(classes[0], lexer.Is(classes...), expected)
}

// Char matches exactly r.
func Char(r rune) Rule[lexer.Token] {
	return Satisfy(lexer.ClassAny, func(c rune) bool {
		return c == r
	}, strconv.QuoteRune(r))
}

// NoneOf matches any character except r.
func NoneOf(r rune) Rule[lexer.Token] {
	return Satisfy(lexer.ClassAny, func(c rune) bool {
		return c != r
	}, "any character but "+strconv.QuoteRune(r))
}

var (
	Letter     = OneOf(lexer.ClassLetter)
	Digit      = OneOf(lexer.ClassDigit)
	Alnum      = OneOf(lexer.ClassAlnum)
	SymbolChar = OneOf(lexer.ClassSymbol)

	// Whitespace1 matches one or more whitespace characters.
	Whitespace1 = OneOrMore(OneOf(lexer.ClassWhitespace))

	// Whitespace0 matches zero or more whitespace characters.
	Whitespace0 = ZeroOrMore(OneOf(lexer.ClassWhitespace))
)

// Concat joins the text of the tokens produced by r.
func Concat(r Rule[[]lexer.Token]) Rule[string] {
	return Map(r, lexer.Join)
}
