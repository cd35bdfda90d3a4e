package emit

import (
	"fmt"
	"strings"

	"github.com/jbrzusto/regmap/regmap"
)

// MMap returns the verilog memory map offset definition for a register.
func MMap(r regmap.Register) string {
	return fmt.Sprintf("`define OFFSET_%-30s 20'h%05x // %s\n", r.Name, r.Offset, r.RawName)
}

// ResetDef returns the verilog definition of a register's reset word.
func ResetDef(r regmap.Register) string {
	return fmt.Sprintf("`define RESET_%-31s %d'h%04x\n", r.Name, regmap.REG_WORD_BITS, uint16(r.Reset))
}

// Def returns the verilog register declaration, sized to one register word.
func Def(r regmap.Register) string {
	return fmt.Sprintf("   reg  [%d-1: 0] %-30s; // offset 0x%03x\n", regmap.REG_WORD_BITS, strings.ToLower(r.Name), r.Offset)
}

// Verilog renders memory map, reset value and register definitions for
// the map, in map order.
func Verilog(m *regmap.Map, unit string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s memory map - base address %s - generated by regmapgen\n\n", strings.ToUpper(unit), baseText(m))
	for _, r := range m.Registers {
		b.WriteString(MMap(r))
	}
	b.WriteString("\n// reset values\n\n")
	for _, r := range m.Registers {
		b.WriteString(ResetDef(r))
	}
	b.WriteString("\n// register definitions\n\n")
	for _, r := range m.Registers {
		b.WriteString(Def(r))
	}
	return b.String(), nil
}
