package regmap

import (
	"fmt"
	"regexp"
	"strconv"
)

// PositionForm tells which syntax a bit position was written in.
type PositionForm int

const (
	POS_UNKNOWN PositionForm = iota // unrecognized; low bit defaults to 0
	POS_RANGE                       // [hi:lo]
	POS_BIT                         // [n]
	POS_BARE                        // n, the legacy form without brackets
)

// BitRange is a parsed bit position.  For POS_BIT and POS_BARE, Hi == Lo.
type BitRange struct {
	Hi   int
	Lo   int
	Form PositionForm
	Text string // token as written
}

var (
	rangeRE = regexp.MustCompile(`^\[?\s*(\d+)\s*:\s*(\d+)\s*\]?$`)
	bitRE   = regexp.MustCompile(`^\[\s*(\d+)\s*\]$`)
)

// ParsePosition parses a bit-position token.  It tries the range form,
// then the single-bit form, then a bare decimal number, and never
// fails: anything else yields a POS_UNKNOWN range with low bit 0.
func ParsePosition(tok string) BitRange {
	if m := rangeRE.FindStringSubmatch(tok); m != nil {
		hi, err1 := strconv.Atoi(m[1])
		lo, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return BitRange{Hi: hi, Lo: lo, Form: POS_RANGE, Text: tok}
		}
	}
	if m := bitRE.FindStringSubmatch(tok); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return BitRange{Hi: n, Lo: n, Form: POS_BIT, Text: tok}
		}
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
		return BitRange{Hi: n, Lo: n, Form: POS_BARE, Text: tok}
	}
	return BitRange{Form: POS_UNKNOWN, Text: tok}
}

// LowBit returns the shift amount encoded by a position token.
func LowBit(tok string) int {
	return ParsePosition(tok).Lo
}

// Width is the number of bits the range declares, or 0 when unknown.
// A bare number gives no width, since the legacy form only names the
// starting bit.
func (b BitRange) Width() int {
	switch b.Form {
	case POS_RANGE:
		if b.Hi < b.Lo {
			return 0
		}
		return b.Hi - b.Lo + 1
	case POS_BIT:
		return 1
	}
	return 0
}

func (b BitRange) String() string {
	switch b.Form {
	case POS_RANGE:
		return fmt.Sprintf("[%d:%d]", b.Hi, b.Lo)
	case POS_BIT:
		return fmt.Sprintf("[%d]", b.Lo)
	case POS_BARE:
		return strconv.Itoa(b.Lo)
	}
	return b.Text
}
