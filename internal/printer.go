package internal

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes human readable decode reports.
type Printer struct {
	w io.Writer

	name     *color.Color
	unknown  *color.Color
	dontCare *color.Color
	note     *color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:        w,
		name:     color.New(color.Bold),
		unknown:  color.New(color.FgRed, color.Bold),
		dontCare: color.New(color.FgYellow),
		note:     color.New(color.FgCyan),
	}
	if !colored {
		for _, c := range []*color.Color{p.name, p.unknown, p.dontCare, p.note} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) annotate(name FieldName, value uint32) string {
	var (
		ann string
		ok  bool
	)
	switch {
	case name == FieldOpcode && value != opcodeSpecial:
		ann, ok = OpcodeName(value)
	case name == FieldFunct:
		ann, ok = FunctName(value)
	case name.IsRegister():
		ann, ok = regName(value), true
	default:
		return ""
	}
	if !ok {
		return " " + p.unknown.Sprint("(?)")
	}
	return " " + p.note.Sprintf("(%s)", ann)
}

// Print writes the report of one instruction.
func (p *Printer) Print(instr *Instruction, signals ControlSignals) {
	mnemonic := p.name.Sprint(instr.Mnemonic)
	if !instr.Known() {
		mnemonic = p.unknown.Sprint(instr.Mnemonic)
	}

	fmt.Fprintf(p.w, "Instruction: %s\n", mnemonic)
	fmt.Fprintf(p.w, "- Word: 0x%08x\n", uint32(instr.Word))
	fmt.Fprintf(p.w, "- Type: %s\n", instr.Format)
	fmt.Fprintf(p.w, "- Bits: %s\n", instr.Bits())
	fmt.Fprintf(p.w, "- Assembly: %s\n", Disassemble(instr))
	if ps := Pseudo(instr); ps != "" {
		fmt.Fprintf(p.w, "- Pseudo: %s\n", ps)
	}

	fmt.Fprintln(p.w, "- Fields:")
	named := instr.Fields.Named()
	for pair := named.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(p.w, "\t%s: %d%s\n", pair.Key, pair.Value, p.annotate(pair.Key, pair.Value))
	}

	fmt.Fprintln(p.w, "- Control signals:")
	sigs := signals.Named()
	for pair := sigs.Oldest(); pair != nil; pair = pair.Next() {
		v := pair.Value.String()
		if pair.Value == DontCare {
			v = p.dontCare.Sprint(v)
		}
		fmt.Fprintf(p.w, "\t%s: %s\n", pair.Key, v)
	}
}

// PrintTables writes the opcode and funct tables.
func (p *Printer) PrintTables() {
	fmt.Fprintln(p.w, "Opcodes:")
	for _, e := range OpcodeEntries() {
		fmt.Fprintf(p.w, "\t0b%06b  %-8s  %s\n", e.Code, e.Name, Classify(e.Code))
	}
	fmt.Fprintln(p.w, "Functs:")
	for _, e := range FunctEntries() {
		fmt.Fprintf(p.w, "\t0b%06b  %s\n", e.Code, e.Name)
	}
}

// PrintRegisters writes the register name table.
func (p *Printer) PrintRegisters() {
	for i, name := range registerNames {
		fmt.Fprintf(p.w, "\t%2d  %s\n", i, name)
	}
}
