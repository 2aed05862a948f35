package ast

import (
	"strings"
)

// Expr is a parsed S-expression. The set of implementations is closed:
// Symbol, Integer, Text, Boolean, List and DottedPair.
type Expr interface {
	Kind() Kind
	String() string

	expr()
}

// List is a proper list. An empty List is a valid value.
type List []Expr

// DottedPair is an improper list: the Head elements followed by a non-list
// Tail, written (a b . c).
type DottedPair struct {
	Head []Expr
	Tail Expr
}

// NewList creates a list with the given elements, never nil
func NewList(items ...Expr) List {
	if items == nil {
		return List{}
	}
	return List(items)
}

// NewDottedPair creates a dotted pair, the head is never nil
func NewDottedPair(head []Expr, tail Expr) DottedPair {
	if head == nil {
		head = []Expr{}
	}
	return DottedPair{Head: head, Tail: tail}
}

// Quote returns the list (quote e)
func Quote(e Expr) List {
	return List{Symbol("quote"), e}
}

// Kind returns KindList
func (List) Kind() Kind { return KindList }

// Kind returns KindDottedPair
func (DottedPair) Kind() Kind { return KindDottedPair }

func (l List) String() string {
	return "(" + join(l) + ")"
}

func (d DottedPair) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	if len(d.Head) > 0 {
		sb.WriteString(join(d.Head))
		sb.WriteString(" ")
	}
	sb.WriteString(". ")
	if d.Tail != nil {
		sb.WriteString(d.Tail.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Len returns the number of elements in the list
func (l List) Len() int {
	return len(l)
}

// IsQuote returns true if the list is the expansion of 'x
func (l List) IsQuote() bool {
	if len(l) != 2 {
		return false
	}
	s, ok := l[0].(Symbol)
	return ok && s == "quote"
}

func join(items []Expr) string {
	parts := make([]string, 0, len(items))
	for i := range items {
		if items[i] == nil {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, items[i].String())
	}
	return strings.Join(parts, " ")
}

func (List) expr() {}
func (DottedPair) expr() {}

var (
	_ = Expr(List{})
	_ = Expr(DottedPair{})
)
