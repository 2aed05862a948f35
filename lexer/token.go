package lexer

import (
	"fmt"
)

// Token represents a run of characters matched by a primitive
type Token struct {
	class  Class
	lexeme string

	offset int
	line   int
	col    int
}

// NewToken creates a token that starts at the given position
func NewToken(class Class, lexeme string, offset int, line int, col int) Token {
	return Token{
		class:  class,
		lexeme: lexeme,
		offset: offset,
		line:   line,
		col:    col,
	}
}

// Class returns the character class the token was matched with
func (t Token) Class() Class {
	return t.class
}

// Pos returns the line and column of the first character
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Offset returns the byte offset of the first character
func (t Token) Offset() int {
	return t.offset
}

// Text returns the matched text
func (t Token) Text() string {
	return t.lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.class, t.lexeme, t.line, t.col)
}

// Join concatenates the text of the given tokens.
func Join(tokens []Token) string {
	n := 0
	for i := range tokens {
		n += len(tokens[i].lexeme)
	}
	buf := make([]byte, 0, n)
	for i := range tokens {
		buf = append(buf, tokens[i].lexeme...)
	}
	return string(buf)
}
