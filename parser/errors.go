package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/schemexp/lexer"
)

var (
	ErrUnexpectedCharacter   = errors.New("unexpected character")
	ErrUnexpectedEOF         = errors.New("unexpected EOF")
	ErrNumericOverflow       = errors.New("numeric overflow")
	ErrAllAlternativesFailed = errors.New("all alternatives failed")
	ErrDepthExceeded         = errors.New("maximum nesting depth exceeded")
	ErrTrailingInput         = errors.New("trailing input")
	ErrInternal              = errors.New("internal parser fault")
)

// Error is a parse failure at a position of the input.
type Error struct {
	// Err is one of the Err* sentinels.
	Err error

	Offset int
	Line   int
	Column int

	// Expected names the construct the parser was looking for.
	Expected string

	// Cause is the most specific branch failure of an alternation.
	Cause *Error

	// reach is how far into the input the failing branch got.
	reach int
}

func newError(err error, in lexer.Input, expected string) *Error {
	line, col := in.Pos()
	return &Error{
		Err:      err,
		Offset:   in.Offset(),
		Line:     line,
		Column:   col,
		Expected: expected,
		reach:    in.Offset(),
	}
}

// errorAt creates an error for a failed match of expected at in, telling
// apart the end of input from a mismatching character.
func errorAt(in lexer.Input, expected string) *Error {
	if in.EOF() {
		return newError(ErrUnexpectedEOF, in, expected)
	}
	return newError(ErrUnexpectedCharacter, in, expected)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%d:%d: %v", e.Line, e.Column, e.Err)
	if e.Expected != "" {
		msg += fmt.Sprintf(", expecting %s", e.Expected)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel and, if present, the cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Reach returns the furthest offset the failing parser got to.
func (e *Error) Reach() int {
	return e.reach
}

// deeper returns true if e got further into the input than other.
func (e *Error) deeper(other *Error) bool {
	if other == nil {
		return true
	}
	return e.reach > other.reach
}
