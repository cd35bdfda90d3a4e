// Package emit renders a parsed register map as source text.
//
// Every renderer is a pure function of a *regmap.Map (plus, for some,
// a unit name) and returns text; writing files is up to the caller.
package emit

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jbrzusto/regmap/regmap"
)

// Renderer produces one artifact for a register map.  unit names the
// generated class or module; renderers that have no use for it ignore it.
type Renderer func(m *regmap.Map, unit string) (string, error)

// Artifact pairs a renderer with the file name suffix it is saved under.
type Artifact struct {
	Name   string // short name for logs
	Suffix string // appended to the snake-cased input base name
	Render Renderer
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"hex":   func(v uint64) string { return fmt.Sprintf("0x%x", v) },
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func render(t *template.Template, data interface{}) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// baseText is the base address as shown in generated comments.
func baseText(m *regmap.Map) string {
	base, err := m.Base()
	if err != nil {
		return "undefined"
	}
	return fmt.Sprintf("0x%x", base)
}

// The artifacts regmapgen knows how to write.  Callers copy and adjust
// Suffix as configured.
var (
	SourceArtifact  = Artifact{Name: "source", Suffix: ".cpp", Render: CPP}
	GoldenArtifact  = Artifact{Name: "golden", Suffix: "_golden.h", Render: func(m *regmap.Map, _ string) (string, error) { return Golden(m) }}
	VerilogArtifact = Artifact{Name: "verilog", Suffix: "_mmap.v", Render: Verilog}
	YAMLArtifact    = Artifact{Name: "yaml", Suffix: ".yaml", Render: YAML}
)
