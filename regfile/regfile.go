// In-memory image of a generated register file.
//
// A RegFile behaves like the component class emitted by emit.CPP: it
// holds uint16 register words indexed by offset / REG_BYTE_WIDTH, and
// Reset(true) loads each register's composite reset value in map
// order.  It is used to check a golden header against a register map
// without compiling any generated code.
package regfile

import (
	"github.com/jbrzusto/regmap/emit"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/pkg/errors"
)

// MAX_WORDS bounds the register file; a map whose highest offset needs
// more words is refused by New.
const MAX_WORDS = 1 << 20

// RegFile holds the register words of one unit.
type RegFile struct {
	Words []uint16 // reg[CNT_REG_END / REG_BYTE_WIDTH + 1]
	m     *regmap.Map
}

// New allocates a zeroed register file sized for the map.
func New(m *regmap.Map) (*RegFile, error) {
	last := m.MaxOffset() / regmap.REG_BYTE_WIDTH
	if last >= MAX_WORDS {
		return nil, errors.Errorf("register file too large: highest offset 0x%x needs %d words, limit is %d", m.MaxOffset(), last+1, MAX_WORDS)
	}
	return &RegFile{
		Words: make([]uint16, last+1),
		m:     m,
	}, nil
}

// Reset loads reset values when active is true.  When active is false
// nothing happens, matching the generated reset(bool).
func (rf *RegFile) Reset(active bool) {
	if !active {
		return
	}
	for _, r := range rf.m.Registers {
		rf.Words[r.Offset/regmap.REG_BYTE_WIDTH] = uint16(r.Reset)
	}
}

// Peek returns the word holding the given byte offset.
func (rf *RegFile) Peek(offset uint64) (uint16, bool) {
	i := offset / regmap.REG_BYTE_WIDTH
	if i >= uint64(len(rf.Words)) {
		return 0, false
	}
	return rf.Words[i], true
}

// Poke stores a word at the given byte offset.  It returns false if the
// offset is outside the register file.
func (rf *RegFile) Poke(offset uint64, v uint16) bool {
	i := offset / regmap.REG_BYTE_WIDTH
	if i >= uint64(len(rf.Words)) {
		return false
	}
	rf.Words[i] = v
	return true
}

// Verify checks golden expectations against the current register words.
// It also fails when the number of expectations differs from the
// number of registers in the map.
func (rf *RegFile) Verify(exps []emit.Expectation) error {
	if len(exps) != len(rf.m.Registers) {
		return errors.Errorf("golden header has %d records, register map has %d registers", len(exps), len(rf.m.Registers))
	}
	for i, e := range exps {
		if uint64(e.Offset) != rf.m.Registers[i].Offset {
			return errors.Errorf("record %d (%s): offset 0x%x, map has 0x%x", i, e.Name, e.Offset, rf.m.Registers[i].Offset)
		}
		got, ok := rf.Peek(uint64(e.Offset))
		if !ok {
			return errors.Errorf("record %d (%s): offset 0x%x is outside the register file", i, e.Name, e.Offset)
		}
		if got != e.Expected {
			return errors.Errorf("record %d (%s): expected 0x%04x, register holds 0x%04x", i, e.Name, e.Expected, got)
		}
	}
	return nil
}
