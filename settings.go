package main

import (
	"strconv"

	"github.com/jbrzusto/regmap/emit"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/pkg/errors"
)

// settings control what regmapgen writes and where.  They are filled
// from defaultSettings and then, if present, from the config file.
type settings struct {
	Output outputSettings `mapstructure:"output"`
	Class  classSettings  `mapstructure:"class"`
	Parse  parseSettings  `mapstructure:"parse"`
}

type outputSettings struct {
	Dir          string `mapstructure:"dir"`           // directory for generated files
	SourceExt    string `mapstructure:"source_ext"`    // extension of the generated source file
	GoldenSuffix string `mapstructure:"golden_suffix"` // suffix of the golden header
	Verilog      bool   `mapstructure:"verilog"`       // also write <name>_mmap.v
	YAML         bool   `mapstructure:"yaml"`          // also write <name>.yaml
}

type classSettings struct {
	Name string `mapstructure:"name"` // class name; empty means the input base name
}

type parseSettings struct {
	PageMask string `mapstructure:"page_mask"` // mask giving the base address from the first register
}

// defaultSettings write a .cpp source and a _golden.h header into the
// working directory.
func defaultSettings() settings {
	return settings{
		Output: outputSettings{
			Dir:          ".",
			SourceExt:    emit.SourceArtifact.Suffix,
			GoldenSuffix: emit.GoldenArtifact.Suffix,
		},
		Parse: parseSettings{
			PageMask: "0x" + strconv.FormatUint(regmap.PAGE_MASK, 16),
		},
	}
}

// pageMask parses the configured page mask; any base Go accepts works.
func (s settings) pageMask() (uint64, error) {
	m, err := strconv.ParseUint(s.Parse.PageMask, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad parse.page_mask %q", s.Parse.PageMask)
	}
	return m, nil
}

// artifacts lists what to write, in writing order.
func (s settings) artifacts() []emit.Artifact {
	src := emit.SourceArtifact
	src.Suffix = s.Output.SourceExt
	gold := emit.GoldenArtifact
	gold.Suffix = s.Output.GoldenSuffix
	arts := []emit.Artifact{src, gold}
	if s.Output.Verilog {
		arts = append(arts, emit.VerilogArtifact)
	}
	if s.Output.YAML {
		arts = append(arts, emit.YAMLArtifact)
	}
	return arts
}
