package emit

import (
	"github.com/jbrzusto/regmap/regmap"
)

const cppTemplateText = `// {{upper .Class}}_APB_S BaseAddress : {{.Base}}
constexpr size_t CNT_REG_END = {{hex .MaxOffset}};
constexpr size_t REG_BYTE_WIDTH = {{hex .ByteWidth}};

{{range .Registers}}constexpr size_t {{.Name}} = 0x{{printf "%03x" .Offset}};
{{end}}
class {{.Class}}: public vp::Component {
  public:
    {{.Class}}(const Config& conf);
    ~{{.Class}}() override = default;

    void reset(bool active);
  private:
    uint16_t reg[CNT_REG_END / REG_BYTE_WIDTH + 1];
};

void {{.Class}}::reset(bool active) {
  if (active) {
{{- range .Registers}}
    reg[{{.Name}} / REG_BYTE_WIDTH] = {{hex .Reset}};
{{- end}}
  }
}
`

var cppTemplate = mustTemplate("cpp", cppTemplateText)

type cppData struct {
	Class     string
	Base      string
	MaxOffset uint64
	ByteWidth uint64
	Registers []regmap.Register
}

// CPP renders offset constants and a component class whose
// reset(true) loads every register's composite reset value into the
// register file.  reset(false) does nothing.
func CPP(m *regmap.Map, class string) (string, error) {
	return render(cppTemplate, cppData{
		Class:     class,
		Base:      baseText(m),
		MaxOffset: m.MaxOffset(),
		ByteWidth: regmap.REG_BYTE_WIDTH,
		Registers: m.Registers,
	})
}
