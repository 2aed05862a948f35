package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Input is a position within a source text. It is a plain value: advancing
// returns a new Input and leaves the receiver untouched, so any earlier
// Input can be used to backtrack.
type Input struct {
	src string

	offset int
	line   int
	col    int

	depth int
}

// New creates an Input positioned at the start of src
func New(src string) Input {
	return Input{
		src:  src,
		line: 1,
		col:  1,
	}
}

// Peek returns the next character without consuming it. The second return
// value is false at the end of input.
func (in Input) Peek() (rune, bool) {
	if in.offset >= len(in.src) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(in.src[in.offset:])
	return r, true
}

// Next consumes one character and returns it along with the advanced input.
func (in Input) Next() (rune, Input, bool) {
	if in.offset >= len(in.src) {
		return utf8.RuneError, in, false
	}

	r, size := utf8.DecodeRuneInString(in.src[in.offset:])

	next := in
	next.offset += size
	if r == '\n' {
		next.line++
		next.col = 1
	} else {
		next.col++
	}
	return r, next, true
}

// Match consumes one character if pred accepts it.
func (in Input) Match(class Class, pred func(rune) bool) (Token, Input, bool) {
	r, next, ok := in.Next()
	if !ok || !pred(r) {
		return Token{}, in, false
	}
	return NewToken(class, in.src[in.offset:next.offset], in.offset, in.line, in.col), next, true
}

// EOF returns true if there is nothing left to consume
func (in Input) EOF() bool {
	return in.offset >= len(in.src)
}

// Remaining returns the unconsumed text
func (in Input) Remaining() string {
	return in.src[in.offset:]
}

// Offset returns the number of bytes consumed so far
func (in Input) Offset() int {
	return in.offset
}

// Pos returns the line and column of the next character
func (in Input) Pos() (int, int) {
	return in.line, in.col
}

// Depth returns the current nesting depth
func (in Input) Depth() int {
	return in.depth
}

// Enter returns a copy of the input one nesting level deeper.
func (in Input) Enter() Input {
	in.depth++
	return in
}

// Leave returns a copy of the input one nesting level up.
func (in Input) Leave() Input {
	if in.depth > 0 {
		in.depth--
	}
	return in
}

func (in Input) String() string {
	return fmt.Sprintf("[%d %d] @%d", in.line, in.col, in.offset)
}
