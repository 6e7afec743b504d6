package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		word Word
		want Mnemonic
	}{
		{0x00411820, "add"},
		{0x00000000, "sll"},
		{0x0000000c, "syscall"},
		{0x03e00008, "jr"},
		{0x8c230004, "lw"},
		{0xac230004, "sw"},
		{0x10a6000a, "beq"},
		{0x3c081234, "lui"},
		{0xc4000000, "lwc1"},
		{0xe4000000, "swc1"},
		{0x080003e8, "j"},
		{0x0c000100, "jal"},
	}

	for _, c := range cases {
		instr := DecodeWord(c.word)
		assert.Equal(t, c.want, instr.Mnemonic, "word=%s", c.word)
		assert.True(t, instr.Known())
	}
}

func TestResolveOpcodeOneIsBltz(t *testing.T) {
	// bgez and bltz share opcode 1; the later table entry wins whatever rt says
	assert.Equal(t, Mnemonic("bltz"), DecodeWord(0x04000000).Mnemonic)
	assert.Equal(t, Mnemonic("bltz"), DecodeWord(0x04010000).Mnemonic)

	name, ok := OpcodeName(1)
	assert.True(t, ok)
	assert.Equal(t, "bltz", name)

	for _, e := range OpcodeEntries() {
		assert.NotEqual(t, "bgez", e.Name)
	}
}

func TestResolveUnknown(t *testing.T) {
	t.Run("when opcode unassigned", func(t *testing.T) {
		instr := DecodeWord(0xfc000000)
		assert.Equal(t, IType, instr.Format)
		assert.Equal(t, Unknown, instr.Mnemonic)
		assert.False(t, instr.Known())
	})

	t.Run("when funct unassigned", func(t *testing.T) {
		instr := DecodeWord(0x00000001)
		assert.Equal(t, RType, instr.Format)
		assert.True(t, instr.Mnemonic.IsUnknown())
	})

	t.Run("when R-type funct resolves", func(t *testing.T) {
		assert.Equal(t, Mnemonic("add"), Resolve(RType, FieldSet{Format: RType, Funct: 32}))
	})

	t.Run("when I-type opcode unassigned", func(t *testing.T) {
		assert.Equal(t, Unknown, Resolve(IType, FieldSet{Format: IType, Opcode: 0b111111}))
	})
}

func TestTables(t *testing.T) {
	name, ok := OpcodeName(0)
	assert.True(t, ok)
	assert.Equal(t, RTypeMarker, name)

	name, ok = FunctName(0b100000)
	assert.True(t, ok)
	assert.Equal(t, "add", name)

	_, ok = FunctName(0b111111)
	assert.False(t, ok)

	assert.Len(t, OpcodeEntries(), 26)
	assert.Len(t, FunctEntries(), 28)

	entries := FunctEntries()
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Code, entries[i].Code)
	}
}
