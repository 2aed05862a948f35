package ast

// Kind represents the variant of an expression
type Kind uint8

// Expression kinds
const (
	KindInvalid Kind = iota
	KindSymbol
	KindInteger
	KindText
	KindBoolean
	KindList
	KindDottedPair
)

func (k Kind) String() string {
	s, ok := kindName[k]
	if ok {
		return s
	}
	return kindName[KindInvalid]
}

var kindName = map[Kind]string{
	KindInvalid:    "invalid",
	KindSymbol:     "symbol",
	KindInteger:    "integer",
	KindText:       "text",
	KindBoolean:    "boolean",
	KindList:       "list",
	KindDottedPair: "dotted pair",
}
