package main

import (
	"log"

	"github.com/xiam/schemexp/ast"
	"github.com/xiam/schemexp/parser"
)

func main() {
	input := `(define (greet name . rest) (display '("Hello" name)) #t)`

	expr, rest, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(expr)
	log.Printf("remaining: %q", rest)
}
