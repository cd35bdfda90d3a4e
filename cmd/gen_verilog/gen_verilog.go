package main

// Generate verilog snippets for a register map.
// The snippets create memory map offsets, reset values and register
// definitions for the registers declared in the map file.
//
// Usage:
//
//    gen_verilog MAPFILE
//
// writes generated_mmap.v, generated_resets.v and generated_regdefs.v
// into the current directory.

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/zapr"
	"github.com/jbrzusto/regmap/emit"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// snippet is one generated file: a header line and a per-register renderer.
type snippet struct {
	file   string
	header string
	render func(regmap.Register) string
}

var snippets = []snippet{
	{"generated_mmap.v", "// memory map definitions - generated by gen_verilog.go\n\n", emit.MMap},
	{"generated_resets.v", "// reset values - generated by gen_verilog.go\n\n", emit.ResetDef},
	{"generated_regdefs.v", "// register definitions - generated by gen_verilog.go\n\n", emit.Def},
}

// writeSnippet writes one snippet file for every register in m.
func writeSnippet(s snippet, m *regmap.Map) error {
	f, err := os.Create(s.file)
	if err != nil {
		return errors.Wrapf(err, "creating %s", s.file)
	}
	if err := writeRegs(f, s, m); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", s.file)
	}
	return errors.Wrapf(f.Close(), "closing %s", s.file)
}

// writeRegs writes the snippet header and one line per register to w.
func writeRegs(w io.Writer, s snippet, m *regmap.Map) error {
	if _, err := io.WriteString(w, s.header); err != nil {
		return err
	}
	for _, r := range m.Registers {
		if _, err := io.WriteString(w, s.render(r)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: gen_verilog MAPFILE")
		os.Exit(1)
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zl.Sync()
	m, _, err := regmap.ParseFile(os.Args[1], regmap.WithLogger(zapr.NewLogger(zl)))
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	for _, s := range snippets {
		if err := writeSnippet(s, m); err != nil {
			color.Red("Error: %v", err)
			os.Exit(1)
		}
	}
}
