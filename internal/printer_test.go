package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	t.Run("when add", func(t *testing.T) {
		var buf bytes.Buffer
		instr := DecodeWord(0x00411820)
		NewPrinter(&buf, false).Print(instr, DeriveSignals(instr))

		assert.Equal(t, "Instruction: add\n"+
			"- Word: 0x00411820\n"+
			"- Type: R\n"+
			"- Bits: 00000000010000010001100000100000\n"+
			"- Assembly: add $v1, $v0, $at\n"+
			"- Pseudo: $v1 = $v0 + $at\n"+
			"- Fields:\n"+
			"\topcode: 0\n"+
			"\trs: 2 ($v0)\n"+
			"\trt: 1 ($at)\n"+
			"\trd: 3 ($v1)\n"+
			"\tshamt: 0\n"+
			"\tfunct: 32 (add)\n"+
			"- Control signals:\n"+
			"\tALUSrc: 0\n"+
			"\tBranch: 0\n"+
			"\tMemRead: 0\n"+
			"\tMemToReg: 0\n"+
			"\tMemWrite: 0\n"+
			"\tRegDst: 1\n"+
			"\tRegWrite: 1\n", buf.String())
	})

	t.Run("when lw", func(t *testing.T) {
		var buf bytes.Buffer
		instr := DecodeWord(0x8c230004)
		NewPrinter(&buf, false).Print(instr, DeriveSignals(instr))

		out := buf.String()
		assert.Contains(t, out, "\topcode: 35 (lw)\n")
		assert.Contains(t, out, "\timm: 4\n")
		assert.Contains(t, out, "\tRegDst: 0\n")
	})

	t.Run("when unknown", func(t *testing.T) {
		var buf bytes.Buffer
		instr := DecodeWord(0x00000001)
		NewPrinter(&buf, false).Print(instr, DeriveSignals(instr))

		out := buf.String()
		assert.Contains(t, out, "Instruction: unknown\n")
		assert.Contains(t, out, "- Assembly: .word 0x00000001\n")
		assert.Contains(t, out, "\tfunct: 1 (?)\n")
		assert.NotContains(t, out, "- Pseudo:")
	})
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.PrintTables()
	p.PrintRegisters()

	out := buf.String()
	assert.Contains(t, out, "\t0b000001  bltz      I\n")
	assert.Contains(t, out, "\t0b000010  j         J\n")
	assert.Contains(t, out, "\t0b001100  syscall\n")
	assert.Contains(t, out, "\t31  $ra\n")
}

func TestInstructionView(t *testing.T) {
	instr := DecodeWord(0x080003e8)
	view := NewInstructionView(instr, DeriveSignals(instr))

	assert.Equal(t, "0x080003e8", view.Hex)
	assert.Equal(t, "J", view.Format)
	assert.Equal(t, map[string]uint32{"opcode": 2, "label": 1000}, view.Fields)
	assert.Empty(t, view.Registers)
	assert.Equal(t, "j 0x3e8", view.Assembly)
	assert.Equal(t, "goto 0x3e8", view.Pseudo)
	assert.Equal(t, CategoryOther, view.Category)
}
