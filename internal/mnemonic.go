package internal

// Mnemonic is the resolved name of an instruction. Unknown marks a word whose
// opcode or funct has no table entry.
type Mnemonic string

const Unknown Mnemonic = "unknown"

func (m Mnemonic) IsUnknown() bool {
	return m == Unknown
}

func (m Mnemonic) String() string {
	return string(m)
}

// RTypeMarker is the opcode table entry for opcode 0.
const RTypeMarker = "[R-Type]"

var opcodeTable = buildTable([]tableEntry{
	{0b000000, RTypeMarker},
	// I-Type
	{0b001000, "addi"},
	{0b001001, "addiu"},
	{0b001100, "andi"},
	{0b000100, "beq"},
	{0b000001, "bgez"},
	{0b000111, "bgtz"},
	{0b000110, "blez"},
	{0b000001, "bltz"}, // shares opcode 1 with bgez, last entry wins
	{0b000101, "bne"},
	{0b100000, "lb"},
	{0b100100, "lbu"},
	{0b100001, "lh"},
	{0b100101, "lhu"},
	{0b001111, "lui"},
	{0b100011, "lw"},
	{0b110001, "lwc1"},
	{0b001101, "ori"},
	{0b101000, "sb"},
	{0b001010, "slti"},
	{0b001011, "sltiu"},
	{0b101001, "sh"},
	{0b101011, "sw"},
	{0b111001, "swc1"},
	{0b001110, "xori"},
	// J-Type
	{0b000010, "j"},
	{0b000011, "jal"},
})

var functTable = buildTable([]tableEntry{
	{0b100000, "add"},
	{0b100001, "addu"},
	{0b100100, "and"},
	{0b001101, "break"},
	{0b011010, "div"},
	{0b011011, "divu"},
	{0b001001, "jalr"},
	{0b001000, "jr"},
	{0b010000, "mfhi"},
	{0b010010, "mflo"},
	{0b010001, "mthi"},
	{0b010011, "mtlo"},
	{0b011000, "mult"},
	{0b011001, "multu"},
	{0b100111, "nor"},
	{0b100101, "or"},
	{0b000000, "sll"},
	{0b000100, "sllv"},
	{0b101010, "slt"},
	{0b101011, "sltu"},
	{0b000011, "sra"},
	{0b000111, "srav"},
	{0b000010, "srl"},
	{0b000110, "srlv"},
	{0b100010, "sub"},
	{0b100011, "subu"},
	{0b001100, "syscall"},
	{0b100110, "xor"},
})

type tableEntry struct {
	code uint32
	name string
}

func buildTable(entries []tableEntry) map[uint32]string {
	m := make(map[uint32]string, len(entries))
	for _, e := range entries {
		m[e.code] = e.name
	}
	return m
}

// Resolve looks up the mnemonic of an instruction: funct for R-type, opcode
// otherwise.
func Resolve(format Format, fields FieldSet) Mnemonic {
	var (
		name string
		ok   bool
	)
	if format == RType {
		name, ok = functTable[fields.Funct]
	} else {
		name, ok = opcodeTable[fields.Opcode]
	}
	if !ok {
		return Unknown
	}
	return Mnemonic(name)
}

// OpcodeName annotates an opcode with its table entry.
func OpcodeName(opcode uint32) (string, bool) {
	name, ok := opcodeTable[opcode]
	return name, ok
}

// FunctName annotates a funct code with its table entry.
func FunctName(funct uint32) (string, bool) {
	name, ok := functTable[funct]
	return name, ok
}

// TableEntry is an exported row of a mnemonic table.
type TableEntry struct {
	Code uint32 `json:"code"`
	Name string `json:"name"`
}

// OpcodeEntries lists the effective opcode table sorted by code.
func OpcodeEntries() []TableEntry {
	return sortedEntries(opcodeTable)
}

// FunctEntries lists the funct table sorted by code.
func FunctEntries() []TableEntry {
	return sortedEntries(functTable)
}

func sortedEntries(m map[uint32]string) []TableEntry {
	out := make([]TableEntry, 0, len(m))
	for code := uint32(0); code < 64; code++ {
		if name, ok := m[code]; ok {
			out = append(out, TableEntry{Code: code, Name: name})
		}
	}
	return out
}
