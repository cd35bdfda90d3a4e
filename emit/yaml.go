package emit

import (
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/samber/lo"
)

type yamlRegister struct {
	Name    string `json:"name"`
	RawName string `json:"rawName,omitempty"`
	Address string `json:"address"`
	Offset  string `json:"offset"`
	Reset   string `json:"reset"`
}

type yamlMap struct {
	Unit        string         `json:"unit"`
	BaseAddress string         `json:"baseAddress"`
	Registers   []yamlRegister `json:"registers"`
}

// YAML dumps the parsed model, one entry per register in map order.
func YAML(m *regmap.Map, unit string) (string, error) {
	doc := yamlMap{
		Unit:        unit,
		BaseAddress: baseText(m),
		Registers: lo.Map(m.Registers, func(r regmap.Register, _ int) yamlRegister {
			raw := r.RawName
			if raw == r.Name {
				raw = ""
			}
			return yamlRegister{
				Name:    r.Name,
				RawName: raw,
				Address: fmt.Sprintf("0x%08x", r.Address),
				Offset:  fmt.Sprintf("0x%03x", r.Offset),
				Reset:   fmt.Sprintf("0x%04x", r.Reset),
			}
		}),
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
