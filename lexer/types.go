package lexer

// Class represents a set of characters a primitive can match
type Class uint8

// Character classes
const (
	ClassInvalid    Class = iota
	ClassLetter           // ASCII letters: [a-zA-Z]
	ClassDigit            // ASCII digits: [0-9]
	ClassAlnum            // Letters and digits
	ClassSymbol           // Punctuation allowed within identifiers
	ClassWhitespace       // Space, tab, newline, carriage return, form feed, vertical tab
	ClassAny              // Any character (used by literal matchers)
)

const (
	letters    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"
	symbols    = "!#$%&|*+-/:<=>?@^_~"
	whitespace = " \t\n\r\f\v"
)

var classValues = map[Class][]rune{
	ClassLetter:     []rune(letters),
	ClassDigit:      []rune(digits),
	ClassAlnum:      []rune(letters + digits),
	ClassSymbol:     []rune(symbols),
	ClassWhitespace: []rune(whitespace),
}

var classNames = map[Class]string{
	ClassInvalid:    "invalid",
	ClassLetter:     "letter",
	ClassDigit:      "digit",
	ClassAlnum:      "alphanumeric",
	ClassSymbol:     "symbol character",
	ClassWhitespace: "whitespace",
	ClassAny:        "character",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassInvalid]
}

// Contains returns true if r belongs to the class
func (c Class) Contains(r rune) bool {
	if c == ClassAny {
		return true
	}
	for _, v := range classValues[c] {
		if v == r {
			return true
		}
	}
	return false
}

// Is returns a predicate that matches any character of the given classes.
func Is(classes ...Class) func(r rune) bool {
	return func(r rune) bool {
		for _, c := range classes {
			if c.Contains(r) {
				return true
			}
		}
		return false
	}
}

var (
	IsLetter     = Is(ClassLetter)
	IsDigit      = Is(ClassDigit)
	IsAlnum      = Is(ClassAlnum)
	IsSymbol     = Is(ClassSymbol)
	IsWhitespace = Is(ClassWhitespace)
)
