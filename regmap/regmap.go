// Parse hand-written register maps.
//
// A register map is a line-oriented text description of a block of
// hardware registers.  Each register is declared on one line together
// with its first bit-field; further bit-fields of the same register
// follow on continuation lines:
//
//    TIMER 0x40007000 EN  rw [0:0]  0x1
//                     CNT rw [15:1] 0x0
//
// The layout of a register line is
//
//    <name> 0x<address> <field> [<perm>...] <position> 0x<reset>
//
// and of a continuation line
//
//    <field> [<perm>...] <position> 0x<reset>
//
// Only the last two tokens of a line are positional (bit position and
// reset value); anything between the field name and those two tokens
// is metadata and is ignored.
//
// The parser folds the bit-fields of each register into one composite
// reset word and converts absolute addresses into offsets from a
// page-aligned base address derived from the first register.  The
// result is a Map, which is what the code emitters in package emit
// render.
package regmap

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	PAGE_MASK        = 0xFFFFF000 // mask applied to the first register address to get the base address
	REG_BYTE_WIDTH   = 2          // bytes per register word in the generated register file
	REG_WORD_BITS    = 8 * REG_BYTE_WIDTH
	MIN_REG_TOKENS   = 5         // name, address, field, position, reset
	MIN_FIELD_TOKENS = 3         // field, position, reset
	MAX_LINE_BYTES   = 64 * 1024 // longer lines are reported and dropped
)

// ErrNoBaseAddress is returned by Map.Base when no register was ever
// recognized, so there is no address to derive a base from.
var ErrNoBaseAddress = errors.New("base address undefined: no register found")

// Field is a named slice of a register, as read from one line.
type Field struct {
	Name     string   // field name, as written
	Position BitRange // parsed bit position; Lo is the shift amount
	Reset    uint64   // reset content, right-aligned to bit 0
	Line     int      // input line the field came from
}

// Register is one addressable register with its composite reset value.
type Register struct {
	Name    string // upper-cased name, usable as a source-level constant
	RawName string // name as written in the input, for comments
	Address uint64 // absolute address from the input
	Offset  uint64 // Address - base address
	Reset   uint64 // OR of every field's Reset << Position.Lo
}

// Map is the parsed register map.  Registers are kept in declaration
// order.  A Map is not modified after Parser.Finish returns it.
type Map struct {
	Registers []Register
	base      uint64
	hasBase   bool
}

// Base returns the resolved base address, or ErrNoBaseAddress.
func (m *Map) Base() (uint64, error) {
	if !m.hasBase {
		return 0, ErrNoBaseAddress
	}
	return m.base, nil
}

// HasBase reports whether a base address was resolved.
func (m *Map) HasBase() bool {
	return m.hasBase
}

// Empty is true when no register was parsed.
func (m *Map) Empty() bool {
	return len(m.Registers) == 0
}

// MaxOffset returns the highest register offset, or 0 for an empty map.
func (m *Map) MaxOffset() uint64 {
	return lo.MaxBy(m.Registers, func(a, b Register) bool {
		return a.Offset > b.Offset
	}).Offset
}

// Lookup finds the first register with the given name, ignoring case.
func (m *Map) Lookup(name string) (Register, bool) {
	return lo.Find(m.Registers, func(r Register) bool {
		return strings.EqualFold(r.Name, name)
	})
}

// NewMap builds a Map directly from registers and a base address.
// It is meant for callers that assemble a model without parsing text.
func NewMap(base uint64, regs ...Register) *Map {
	return &Map{Registers: regs, base: base, hasBase: true}
}
