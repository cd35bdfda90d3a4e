package regmap

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// openReg is the register currently collecting fields.
type openReg struct {
	name    string
	address uint64
	offset  uint64
	fields  []Field
}

// Parser turns register-map lines into a Map.  Feed it lines in order
// with Line, then call Finish exactly once to flush the last register.
// A Parser is not safe for concurrent use.
type Parser struct {
	classifier Classifier
	log        logr.Logger
	pageMask   uint64

	base     uint64
	hasBase  bool
	open     *openReg
	rejected bool // last register line was rejected; drop its fields
	regs     []Register
	seen     map[string]int // register name -> first declaration line
	diags    []Diagnostic
	done     bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier replaces the default TokenShape line classifier.
func WithClassifier(c Classifier) Option {
	return func(p *Parser) { p.classifier = c }
}

// WithLogger makes the parser log each anomaly as it is found.
func WithLogger(l logr.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithPageMask changes the mask used to derive the base address.
func WithPageMask(mask uint64) Option {
	return func(p *Parser) { p.pageMask = mask }
}

// NewParser returns a Parser with no open register and no base address.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		classifier: TokenShape{},
		log:        logr.Discard(),
		pageMask:   PAGE_MASK,
		seen:       map[string]int{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Line processes one input line; lineno is 1-based and only used in
// diagnostics.  Blank lines are ignored.
func (p *Parser) Line(lineno int, text string) {
	if p.done {
		return
	}
	line := strings.TrimSpace(text)
	if line == "" {
		return
	}
	kind := p.classifier.Classify(line)
	if kind == ContinuationField && p.open == nil {
		reason := "field line before any register"
		if p.rejected {
			reason = "field of a rejected register"
		}
		p.report(OrphanContinuation, lineno, line, reason)
		return
	}
	rec, err := Tokenize(kind, line)
	if err != nil {
		p.drop(kind, lineno, line, err.Error())
		return
	}
	if kind == NewRegister {
		p.openRegister(lineno, line, rec)
	} else {
		p.addField(lineno, line, rec)
	}
}

// drop reports a malformed line.  A dropped register line also closes
// the open register, so the fields written under it become orphans
// instead of landing in the previous register.
func (p *Parser) drop(kind LineKind, lineno int, line, reason string) {
	p.report(MalformedLine, lineno, line, reason)
	if kind == NewRegister {
		p.closeRegister()
		p.rejected = true
	}
}

// LongLine reports a line longer than MAX_LINE_BYTES; prefix is its
// start, which is enough to tell a register line from a field line.
func (p *Parser) LongLine(lineno int, prefix string) {
	if p.done {
		return
	}
	line := strings.TrimSpace(prefix)
	if len(line) > 40 {
		line = line[:40] + "..."
	}
	p.drop(p.classifier.Classify(line), lineno, line, "line longer than "+itoa(MAX_LINE_BYTES)+" bytes")
}

// openRegister closes the current register and starts a new one.
func (p *Parser) openRegister(lineno int, line string, rec Record) {
	p.closeRegister()
	if !p.hasBase {
		p.base = rec.Address & p.pageMask
		p.hasBase = true
		p.log.V(1).Info("resolved base address", "base", hex(p.base), "line", lineno)
	}
	if rec.Address < p.base {
		p.report(AddressBelowBase, lineno, line, "address "+hex(rec.Address)+" is below base "+hex(p.base))
		p.rejected = true
		return
	}
	p.rejected = false
	name := strings.ToUpper(rec.RegName)
	if first, ok := p.seen[name]; ok {
		p.report(DuplicateRegister, lineno, line, "register "+name+" already declared on line "+itoa(first))
	} else {
		p.seen[name] = lineno
	}
	p.open = &openReg{
		name:    rec.RegName,
		address: rec.Address,
		offset:  rec.Address - p.base,
	}
	p.addField(lineno, line, rec)
}

func (p *Parser) addField(lineno int, line string, rec Record) {
	f := Field{Name: rec.FieldName, Position: rec.Position, Reset: rec.Reset, Line: lineno}
	for _, g := range p.open.fields {
		if g.Name == f.Name {
			p.report(DuplicateField, lineno, line, "field "+f.Name+" already declared on line "+itoa(g.Line))
			break
		}
	}
	if why := overflow(f); why != "" {
		p.report(FieldOverflow, lineno, line, why)
	}
	p.open.fields = append(p.open.fields, f)
}

// closeRegister folds the open register into the map, if it has fields.
func (p *Parser) closeRegister() {
	r := p.open
	p.open = nil
	if r == nil || len(r.fields) == 0 {
		return
	}
	reset := Composite(r.fields)
	if reset>>REG_WORD_BITS != 0 {
		p.report(WideReset, r.fields[0].Line, r.name,
			"composite reset "+hex(reset)+" does not fit in a "+itoa(REG_WORD_BITS)+"-bit register")
	}
	p.regs = append(p.regs, Register{
		Name:    strings.ToUpper(r.name),
		RawName: r.name,
		Address: r.address,
		Offset:  r.offset,
		Reset:   reset,
	})
}

// Finish flushes the open register and returns the map.  Calling it
// again returns an identical map; later calls to Line are ignored.
func (p *Parser) Finish() *Map {
	if !p.done {
		p.closeRegister()
		p.done = true
		if len(p.regs) == 0 {
			p.report(EmptyResult, 0, "", "no registers found")
		}
	}
	return &Map{Registers: p.regs, base: p.base, hasBase: p.hasBase}
}

// Diagnostics returns the anomalies reported so far, in input order.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

func (p *Parser) report(kind DiagKind, lineno int, text, reason string) {
	d := Diagnostic{Kind: kind, Line: lineno, Text: text, Reason: reason}
	p.diags = append(p.diags, d)
	p.log.Info("register map anomaly", "kind", kind.String(), "line", lineno, "text", text, "reason", reason)
}

// Parse reads a whole register map.  The error is only non-nil when
// reading fails; per-line problems are returned as diagnostics.
func Parse(r io.Reader, opts ...Option) (*Map, []Diagnostic, error) {
	p := NewParser(opts...)
	br := bufio.NewReader(r)
	n := 0
	for {
		line, long, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.Diagnostics(), errors.Wrapf(err, "reading line %d", n+1)
		}
		n++
		if long {
			p.LongLine(n, line)
		} else {
			p.Line(n, line)
		}
	}
	m := p.Finish()
	return m, p.Diagnostics(), nil
}

// readLine returns the next line without its line ending.  Only the
// first MAX_LINE_BYTES of a longer line are kept, and long is set.
func readLine(br *bufio.Reader) (string, bool, error) {
	var b []byte
	long := false
	for {
		frag, more, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(b) > 0 || long) {
				return string(b), long, nil
			}
			return "", false, err
		}
		if long || len(b)+len(frag) > MAX_LINE_BYTES {
			if !long {
				b = append(b, frag[:MAX_LINE_BYTES-len(b)]...)
			}
			long = true
		} else {
			b = append(b, frag...)
		}
		if !more {
			return string(b), long, nil
		}
	}
}

// ParseFile opens and parses the register map at path.
func ParseFile(path string, opts ...Option) (*Map, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening register map")
	}
	defer f.Close()
	m, diags, err := Parse(f, opts...)
	if err != nil {
		return nil, diags, errors.Wrapf(err, "parsing %s", path)
	}
	return m, diags, nil
}

func hex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
