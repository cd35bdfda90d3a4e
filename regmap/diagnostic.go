package regmap

import "fmt"

// DiagKind classifies a parse anomaly.  None of them stop parsing.
type DiagKind int

const (
	MalformedLine      DiagKind = iota // too few tokens, or a bad hex literal; line dropped
	OrphanContinuation                 // field line with no open register; line dropped
	AddressBelowBase                   // register address below the base page; register rejected
	FieldOverflow                      // field reset does not fit its declared width
	DuplicateField                     // field name repeated within one register
	DuplicateRegister                  // register name repeated in the map
	WideReset                          // composite reset wider than a register word
	EmptyResult                        // no register found at all
)

var diagNames = [...]string{
	MalformedLine:      "malformed line",
	OrphanContinuation: "orphan continuation",
	AddressBelowBase:   "address below base",
	FieldOverflow:      "field overflow",
	DuplicateField:     "duplicate field",
	DuplicateRegister:  "duplicate register",
	WideReset:          "wide reset",
	EmptyResult:        "empty result",
}

func (k DiagKind) String() string {
	if k >= 0 && int(k) < len(diagNames) {
		return diagNames[k]
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Diagnostic reports one anomaly.  Line is 1-based; 0 means the
// anomaly is not tied to a single line.
type Diagnostic struct {
	Kind   DiagKind
	Line   int
	Text   string // offending line, trimmed
	Reason string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Reason)
	}
	return fmt.Sprintf("line %d: %s: %s: %q", d.Line, d.Kind, d.Reason, d.Text)
}
