package internal

type Format string

const (
	RType Format = "R"
	IType Format = "I"
	JType Format = "J"
)

const (
	opcodeSpecial = 0b000000
	opcodeJ       = 0b000010
	opcodeJAL     = 0b000011
)

// Classify maps an opcode to its instruction format. Only the low 6 bits of
// opcode are considered.
func Classify(opcode uint32) Format {
	switch opcode & 0x3f {
	case opcodeSpecial:
		return RType
	case opcodeJ, opcodeJAL:
		return JType
	default:
		return IType
	}
}

func (f Format) String() string {
	return string(f)
}
