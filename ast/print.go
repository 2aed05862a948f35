package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of an expression tree
func Print(e Expr) {
	Fprint(os.Stdout, e)
}

// Fprint writes a human-readable representation of an expression tree to w
func Fprint(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, e.Kind())
	switch v := e.(type) {

	case List:
		fmt.Fprintf(w, "[%d]\n", len(v))
		for i := range v {
			printLevel(w, v[i], level+1)
		}

	case DottedPair:
		fmt.Fprintf(w, "[%d]\n", len(v.Head))
		for i := range v.Head {
			printLevel(w, v.Head[i], level+1)
		}
		fmt.Fprintf(w, "%s.\n", indent)
		printLevel(w, v.Tail, level+1)

	default:
		fmt.Fprintf(w, ": %s\n", e)
	}
}

// Encode transforms an expression into its text representation
func Encode(e Expr) []byte {
	if e == nil {
		return nil
	}
	return []byte(e.String())
}

// Equal reports whether two expressions have the same structure and values.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case List:
		return equalItems(x, b.(List))
	case DottedPair:
		y := b.(DottedPair)
		return equalItems(x.Head, y.Head) && Equal(x.Tail, y.Tail)
	}
	return a == b
}

func equalItems(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
