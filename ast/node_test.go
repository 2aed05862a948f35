package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Expr
		Out string
	}{
		{Symbol("$foo"), `$foo`},
		{Integer(23), `23`},
		{Integer(-9223372036854775808), `-9223372036854775808`},
		{Text("hello"), `"hello"`},
		{Text(""), `""`},
		{Boolean(true), `#t`},
		{Boolean(false), `#f`},
		{List{}, `()`},
		{NewList(), `()`},
		{List{Symbol("a"), Integer(1), Text("b")}, `(a 1 "b")`},
		{List{List{List{}}}, `((()))`},
		{NewDottedPair([]Expr{Symbol("a")}, Symbol("b")), `(a . b)`},
		{NewDottedPair([]Expr{Symbol("a"), Symbol("b")}, Integer(3)), `(a b . 3)`},
		{NewDottedPair(nil, Symbol("x")), `(. x)`},
		{Quote(Integer(52)), `(quote 52)`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}

	assert.Nil(t, Encode(nil))
}

func TestKind(t *testing.T) {
	testCases := []struct {
		In   Expr
		Kind Kind
		Name string
	}{
		{Symbol("a"), KindSymbol, "symbol"},
		{Integer(1), KindInteger, "integer"},
		{Text("a"), KindText, "text"},
		{Boolean(true), KindBoolean, "boolean"},
		{List{}, KindList, "list"},
		{DottedPair{}, KindDottedPair, "dotted pair"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Kind, testCases[i].In.Kind())
		assert.Equal(t, testCases[i].Name, testCases[i].In.Kind().String())
	}

	assert.Equal(t, "invalid", Kind(200).String())
}

func TestNewList(t *testing.T) {
	assert.NotNil(t, NewList())
	assert.Equal(t, List{}, NewList())
	assert.Equal(t, 2, NewList(Symbol("a"), Symbol("b")).Len())

	pair := NewDottedPair(nil, Symbol("x"))
	assert.NotNil(t, pair.Head)
	assert.Equal(t, []Expr{}, pair.Head)
}

func TestQuote(t *testing.T) {
	q := Quote(Symbol("x"))
	assert.True(t, q.IsQuote())
	assert.Equal(t, List{Symbol("quote"), Symbol("x")}, q)

	assert.False(t, List{Symbol("quote")}.IsQuote())
	assert.False(t, List{Symbol("list"), Symbol("x")}.IsQuote())
	assert.False(t, List{Text("quote"), Symbol("x")}.IsQuote())
}

func TestEqual(t *testing.T) {
	a := List{Symbol("a"), NewDottedPair([]Expr{Integer(1)}, Text("t")), Boolean(true)}
	b := List{Symbol("a"), NewDottedPair([]Expr{Integer(1)}, Text("t")), Boolean(true)}
	assert.True(t, Equal(a, b))

	assert.False(t, Equal(Symbol("a"), Text("a")))
	assert.False(t, Equal(List{Integer(1)}, List{Integer(2)}))
	assert.False(t, Equal(List{Integer(1)}, List{Integer(1), Integer(1)}))
	assert.False(t, Equal(
		NewDottedPair([]Expr{Integer(1)}, Integer(2)),
		NewDottedPair([]Expr{Integer(1)}, Integer(3)),
	))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, List{}))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, List{Symbol("a"), NewDottedPair([]Expr{Integer(1)}, Boolean(false))})

	expected := "(list)[2]\n" +
		"    (symbol): a\n" +
		"    (dotted pair)[1]\n" +
		"        (integer): 1\n" +
		"    .\n" +
		"        (boolean): #f\n"
	assert.Equal(t, expected, buf.String())
}
