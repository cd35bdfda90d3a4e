package emit

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/jbrzusto/regmap/regmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const EMPTY_GOLDEN = "// No registers found or parsed.\n"

const goldenTemplateText = `#pragma once

#include <cstdint>
#include <vector>

struct RegInfo {
  uint32_t offset;
  uint16_t expected_value;
};

std::vector<RegInfo> golden_regs = {
{{- range .}}
  {0x{{printf "%04x" .Offset}}, 0x{{printf "%04x" .Expected}}}, // {{.Name}}
{{- end}}
};
`

var goldenTemplate = mustTemplate("golden", goldenTemplateText)

type goldenRow struct {
	Offset   uint64
	Expected uint16 // what a uint16_t register holds after reset
	Name     string
}

// Golden renders the verification header: one {offset, expected_value}
// record per register, in map order.  An empty map yields a single
// comment line instead of an empty vector.
func Golden(m *regmap.Map) (string, error) {
	if m.Empty() {
		return EMPTY_GOLDEN, nil
	}
	rows := lo.Map(m.Registers, func(r regmap.Register, _ int) goldenRow {
		return goldenRow{Offset: r.Offset, Expected: uint16(r.Reset), Name: r.RawName}
	})
	return render(goldenTemplate, rows)
}

// Expectation is one record read back from a golden header.
type Expectation struct {
	Offset   uint32
	Expected uint16
	Name     string
}

var goldenLineRE = regexp.MustCompile(`^\s*\{\s*0x([0-9a-fA-F]+)\s*,\s*0x([0-9a-fA-F]+)\s*\}\s*,\s*//\s*(\S+)`)

// ParseGolden reads the records of a header produced by Golden.  Lines
// that are not records are skipped.
func ParseGolden(text string) ([]Expectation, error) {
	var exps []Expectation
	sc := bufio.NewScanner(strings.NewReader(text))
	n := 0
	for sc.Scan() {
		n++
		m := goldenLineRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		off, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "golden line %d: offset", n)
		}
		val, err := strconv.ParseUint(m[2], 16, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "golden line %d: expected value", n)
		}
		exps = append(exps, Expectation{Offset: uint32(off), Expected: uint16(val), Name: m[3]})
	}
	return exps, sc.Err()
}
