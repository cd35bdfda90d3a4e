package emit_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghodss/yaml"
	"github.com/jbrzusto/regmap/emit"
	"github.com/jbrzusto/regmap/regfile"
	"github.com/jbrzusto/regmap/regmap"
)

const timerMap = `TIMER 0x40007000 EN rw [0:0] 0x1
                 CNT rw [15:1] 0x0
ctrl 0x40007004 HI rw [15:8] 0x01
                LO rw [7:0] 0x02
`

func mustParse(text string) *regmap.Map {
	m, _, err := regmap.Parse(strings.NewReader(text))
	Expect(err).NotTo(HaveOccurred())
	return m
}

var _ = Describe("CPP", func() {
	It("renders constants, class and reset body", func() {
		out, err := emit.CPP(mustParse(timerMap), "TimerUnit")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`// TIMERUNIT_APB_S BaseAddress : 0x40007000
constexpr size_t CNT_REG_END = 0x4;
constexpr size_t REG_BYTE_WIDTH = 0x2;

constexpr size_t TIMER = 0x000;
constexpr size_t CTRL = 0x004;

class TimerUnit: public vp::Component {
  public:
    TimerUnit(const Config& conf);
    ~TimerUnit() override = default;

    void reset(bool active);
  private:
    uint16_t reg[CNT_REG_END / REG_BYTE_WIDTH + 1];
};

void TimerUnit::reset(bool active) {
  if (active) {
    reg[TIMER / REG_BYTE_WIDTH] = 0x1;
    reg[CTRL / REG_BYTE_WIDTH] = 0x102;
  }
}
`))
	})

	It("renders an empty map without failing", func() {
		out, err := emit.CPP(mustParse(""), "Empty")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HavePrefix("// EMPTY_APB_S BaseAddress : undefined\nconstexpr size_t CNT_REG_END = 0x0;\n"))
		Expect(out).To(ContainSubstring("  if (active) {\n  }\n"))
	})
})

var _ = Describe("Golden", func() {
	It("renders one record per register in map order", func() {
		out, err := emit.Golden(mustParse(timerMap))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HavePrefix("#pragma once\n"))
		Expect(out).To(HaveSuffix(`std::vector<RegInfo> golden_regs = {
  {0x0000, 0x0001}, // TIMER
  {0x0004, 0x0102}, // ctrl
};
`))
	})

	It("renders a single comment for an empty map", func() {
		out, err := emit.Golden(mustParse("\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(emit.EMPTY_GOLDEN))
		exps, err := emit.ParseGolden(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(exps).To(BeEmpty())
	})

	It("round-trips through the register file", func() {
		m := mustParse(timerMap + "LATE 0x40007002 A rw [3:0] 0xa\n")
		out, err := emit.Golden(m)
		Expect(err).NotTo(HaveOccurred())
		exps, err := emit.ParseGolden(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(exps).To(Equal([]emit.Expectation{
			{Offset: 0, Expected: 0x1, Name: "TIMER"},
			{Offset: 4, Expected: 0x102, Name: "ctrl"},
			{Offset: 2, Expected: 0xa, Name: "LATE"},
		}))

		rf, err := regfile.New(m)
		Expect(err).NotTo(HaveOccurred())
		rf.Reset(true)
		Expect(rf.Verify(exps)).To(Succeed())
	})

	It("matches the reset assignments of the generated source", func() {
		m := mustParse(timerMap)
		src, err := emit.CPP(m, "T")
		Expect(err).NotTo(HaveOccurred())
		gold, err := emit.Golden(m)
		Expect(err).NotTo(HaveOccurred())
		exps, err := emit.ParseGolden(gold)
		Expect(err).NotTo(HaveOccurred())
		for i, r := range m.Registers {
			Expect(src).To(ContainSubstring("reg[%s / REG_BYTE_WIDTH] = 0x%x;", r.Name, exps[i].Expected))
		}
	})
})

var _ = Describe("Verilog", func() {
	It("defines offsets and reset words", func() {
		out, err := emit.Verilog(mustParse(timerMap), "timer")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HavePrefix("// TIMER memory map - base address 0x40007000"))
		Expect(out).To(ContainSubstring("`define OFFSET_CTRL"))
		Expect(out).To(ContainSubstring("20'h00004 // ctrl\n"))
		Expect(out).To(ContainSubstring("16'h0102\n"))
		Expect(out).To(ContainSubstring("   reg  [16-1: 0] timer"))
	})
})

var _ = Describe("YAML", func() {
	It("dumps the model", func() {
		out, err := emit.YAML(mustParse(timerMap), "Timer")
		Expect(err).NotTo(HaveOccurred())
		var doc map[string]interface{}
		Expect(yaml.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc["unit"]).To(Equal("Timer"))
		Expect(doc["baseAddress"]).To(Equal("0x40007000"))
		regs := doc["registers"].([]interface{})
		Expect(regs).To(HaveLen(2))
		second := regs[1].(map[string]interface{})
		Expect(second["name"]).To(Equal("CTRL"))
		Expect(second["rawName"]).To(Equal("ctrl"))
		Expect(second["reset"]).To(Equal("0x0102"))
	})
})

var _ = Describe("Artifacts", func() {
	It("share one map across renderers", func() {
		m := mustParse(timerMap)
		for _, a := range []emit.Artifact{emit.SourceArtifact, emit.GoldenArtifact, emit.VerilogArtifact, emit.YAMLArtifact} {
			out, err := a.Render(m, "Timer")
			Expect(err).NotTo(HaveOccurred(), a.Name)
			Expect(out).To(ContainSubstring("TIMER"), a.Name)
		}
	})
})
