package ast

import (
	"strconv"
)

// Symbol is a user-defined name
type Symbol string

// Integer is a numeric literal
type Integer int64

// Text is a string literal
type Text string

// Boolean is the literal #t or #f
type Boolean bool

// Kind returns KindSymbol
func (Symbol) Kind() Kind { return KindSymbol }

// Kind returns KindInteger
func (Integer) Kind() Kind { return KindInteger }

// Kind returns KindText
func (Text) Kind() Kind { return KindText }

// Kind returns KindBoolean
func (Boolean) Kind() Kind { return KindBoolean }

func (s Symbol) String() string {
	return string(s)
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String wraps the text in double quotes. No escaping is applied, so the
// result is only a valid literal when the text has no double quote.
func (t Text) String() string {
	return `"` + string(t) + `"`
}

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (Symbol) expr() {}
func (Integer) expr() {}
func (Text) expr() {}
func (Boolean) expr() {}

var (
	_ = Expr(Symbol(""))
	_ = Expr(Integer(0))
	_ = Expr(Text(""))
	_ = Expr(Boolean(false))
)
