package regmap

import "strings"

// LineKind is the role of one non-blank input line.
type LineKind int

const (
	NewRegister LineKind = iota
	ContinuationField
)

func (k LineKind) String() string {
	if k == NewRegister {
		return "register"
	}
	return "continuation"
}

// Classifier decides whether a trimmed, non-empty line opens a new
// register or adds a field to the open one.
type Classifier interface {
	Classify(line string) LineKind
}

// TokenShape classifies by token shape: a line whose second token is a
// hex literal declares a register at that address.  It does not care
// about indentation.
type TokenShape struct{}

func (TokenShape) Classify(line string) LineKind {
	toks := strings.Fields(line)
	if len(toks) >= 2 && hasHexPrefix(toks[1]) {
		return NewRegister
	}
	return ContinuationField
}

func hasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
