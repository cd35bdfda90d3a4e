package main

// Show the reset state of one or more registers of a register map.
//
// Usage:
//
//    showreg MAPFILE [REGNAME1 REGNAME2 ...]
//
// where
//  - MAPFILE is a register map (see package regmap)
//  - REGNAMEi is the name of a register, in any case; with no names,
//    all registers are shown
//
// Values are read back from a register file after reset(true), so they
// are what the generated component holds.

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jbrzusto/regmap/regfile"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/samber/lo"
)

// selectRegs picks the registers named in names, in map order, and
// returns the names that matched nothing.
func selectRegs(m *regmap.Map, names []string) (sel []regmap.Register, missing []string) {
	if len(names) == 0 {
		return m.Registers, nil
	}
	sel = lo.Filter(m.Registers, func(r regmap.Register, _ int) bool {
		return lo.ContainsBy(names, func(n string) bool { return strings.EqualFold(n, r.Name) })
	})
	missing = lo.Filter(names, func(n string, _ int) bool {
		_, ok := m.Lookup(n)
		return !ok
	})
	return sel, missing
}

// row formats one register and its word in rf.
func row(rf *regfile.RegFile, r regmap.Register) string {
	val := "----"
	if v, ok := rf.Peek(r.Offset); ok {
		val = fmt.Sprintf("0x%04x", v)
	}
	return fmt.Sprintf("%-30s 0x%08x +0x%03x %s", r.RawName, r.Address, r.Offset, val)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: showreg MAPFILE [REGNAME ...]")
		os.Exit(1)
	}
	m, diags, err := regmap.ParseFile(os.Args[1])
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	for _, d := range diags {
		color.Yellow("%s", d)
	}
	rf, err := regfile.New(m)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	rf.Reset(true)
	sel, missing := selectRegs(m, os.Args[2:])
	for _, r := range sel {
		fmt.Println(row(rf, r))
	}
	for _, n := range missing {
		color.Red("no register named %s", n)
	}
	if len(missing) > 0 {
		os.Exit(1)
	}
}
