package schemexp

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/parser"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  ` (a b c) `,
			Out: `(a b c)`,
		},
		{
			In:  "(a\n\t b\n\n c\n)",
			Out: `(a b c)`,
		},
		{
			In:  `(lambda (x . rest) (apply + x rest))`,
			Out: `(lambda (x . rest) (apply + x rest))`,
		},
		{
			In:  `'(1 "two" #t)`,
			Out: `(quote (1 "two" #t))`,
		},
		{
			In:  `(a . (b . (c . ())))`,
			Out: `(a . (b . (c . ())))`,
		},
	}

	for i := range testCases {
		e, err := Parse([]byte(testCases[i].In))
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(e)))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(a b`, parser.ErrUnexpectedEOF},
		{`1 2`, parser.ErrTrailingInput},
		{`)`, parser.ErrUnexpectedCharacter},
		{`99999999999999999999`, parser.ErrNumericOverflow},
	}

	for i := range testCases {
		e, err := Parse([]byte(testCases[i].In))
		assert.Nil(t, e)
		assert.True(t, errors.Is(err, testCases[i].Err), "input %q: %v", testCases[i].In, err)
	}
}

func TestReader(t *testing.T) {
	in := `
(define (fact n)
  (if (= n 0)
      1
      (* n (fact (- n 1)))))

(display (fact 5))
`
	exprs, err := NewReader(strings.NewReader(in)).Parse()
	require.NoError(t, err)
	require.Len(t, exprs, 2)

	assert.Equal(t, `(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))`, exprs[0].String())
	assert.Equal(t, `(display (fact 5))`, exprs[1].String())
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader(`(((x)))`))
	r.SetOptions(parser.ParserOptions{MaxDepth: 2})

	_, err := r.Parse()
	assert.True(t, errors.Is(err, parser.ErrDepthExceeded))
}

func TestReaderError(t *testing.T) {
	failure := errors.New("broken pipe")

	_, err := NewReader(iotest.ErrReader(failure)).Parse()
	assert.Equal(t, failure, err)
}

func TestParseAll(t *testing.T) {
	exprs, err := ParseAll([]byte(`#t #f "x" y 7`))
	require.NoError(t, err)
	assert.Equal(t, []ast.Expr{
		ast.Boolean(true),
		ast.Boolean(false),
		ast.Text("x"),
		ast.Symbol("y"),
		ast.Integer(7),
	}, exprs)
}
