package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/schemexp"
	"github.com/xiam/schemexp/ast"
)

func printTree(e ast.Expr) {
	printIndentedTree(e, 0)
}

func printChildren(items []ast.Expr, indentationLevel int) {
	for i := range items {
		printIndentedTree(items[i], indentationLevel)
	}
}

func printIndentedTree(e ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	tag := strings.ReplaceAll(e.Kind().String(), " ", "-")

	switch v := e.(type) {
	case ast.List:
		fmt.Printf("%s<%s>\n", indent, tag)
		printChildren(v, indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, tag)
	case ast.DottedPair:
		fmt.Printf("%s<%s>\n", indent, tag)
		printChildren(v.Head, indentationLevel+1)
		fmt.Printf("%s  <tail>\n", indent)
		printIndentedTree(v.Tail, indentationLevel+2)
		fmt.Printf("%s  </tail>\n", indent)
		fmt.Printf("%s</%s>\n", indent, tag)
	default:
		fmt.Printf("%s<%s>%v</%s>\n", indent, tag, e, tag)
	}
}

func main() {
	input := `(fn_a (fn_b '(89 a b (67 . 3))) (fn_c 66 3 53 "Hello world!" #f))`

	exprs, err := schemexp.ParseAll([]byte(input))
	if err != nil {
		log.Fatal("schemexp.ParseAll:", err)
	}

	for i := range exprs {
		printTree(exprs[i])
	}
}
