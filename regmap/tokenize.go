package regmap

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record holds the semantic fields of one classified line.
// RegName and Address are only set for NewRegister records.
type Record struct {
	Kind      LineKind
	RegName   string
	Address   uint64
	FieldName string
	Meta      []string // tokens between the field name and the position, e.g. "rw"
	Position  BitRange
	Reset     uint64
}

// Tokenize splits a line into a Record.  The last two tokens are
// always the position and the reset value, whatever sits between them
// and the field name.
func Tokenize(kind LineKind, line string) (Record, error) {
	toks := strings.Fields(line)
	rec := Record{Kind: kind}
	need := MIN_FIELD_TOKENS
	if kind == NewRegister {
		need = MIN_REG_TOKENS
	}
	if len(toks) < need {
		return rec, errors.Errorf("too few tokens for a %s line (%d < %d)", kind, len(toks), need)
	}
	if kind == NewRegister {
		addr, err := parseHex(toks[1])
		if err != nil {
			return rec, errors.Wrapf(err, "bad address %q", toks[1])
		}
		rec.RegName = toks[0]
		rec.Address = addr
		toks = toks[2:]
	}
	n := len(toks)
	reset, err := parseHex(toks[n-1])
	if err != nil {
		return rec, errors.Wrapf(err, "bad reset value %q", toks[n-1])
	}
	rec.FieldName = toks[0]
	rec.Meta = toks[1 : n-2]
	rec.Position = ParsePosition(toks[n-2])
	rec.Reset = reset
	return rec, nil
}

// parseHex parses an unsigned hex literal, with or without 0x prefix.
func parseHex(s string) (uint64, error) {
	digits := s
	if hasHexPrefix(s) {
		digits = s[2:]
	}
	if digits == "" {
		return 0, errors.New("empty hex literal")
	}
	return strconv.ParseUint(digits, 16, 64)
}
