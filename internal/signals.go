package internal

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Signal is a tri-state datapath control value.
type Signal uint8

const (
	Zero Signal = iota
	One
	DontCare
)

func (s Signal) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	}
	return "X"
}

// MarshalJSON encodes don't-care as null.
func (s Signal) MarshalJSON() ([]byte, error) {
	if s == DontCare {
		return []byte("null"), nil
	}
	return json.Marshal(int(s))
}

func bit(b bool) Signal {
	if b {
		return One
	}
	return Zero
}

// ControlSignals is the signal vector of a single-cycle datapath.
type ControlSignals struct {
	ALUSrc   Signal `json:"ALUSrc"`
	Branch   Signal `json:"Branch"`
	MemRead  Signal `json:"MemRead"`
	MemToReg Signal `json:"MemToReg"`
	MemWrite Signal `json:"MemWrite"`
	RegDst   Signal `json:"RegDst"`
	RegWrite Signal `json:"RegWrite"`
}

// Named returns the signals in datapath order.
func (cs ControlSignals) Named() *orderedmap.OrderedMap[string, Signal] {
	om := orderedmap.New[string, Signal]()
	om.Set("ALUSrc", cs.ALUSrc)
	om.Set("Branch", cs.Branch)
	om.Set("MemRead", cs.MemRead)
	om.Set("MemToReg", cs.MemToReg)
	om.Set("MemWrite", cs.MemWrite)
	om.Set("RegDst", cs.RegDst)
	om.Set("RegWrite", cs.RegWrite)
	return om
}

// Category is the datapath class of an opcode.
type Category string

const (
	CategoryRType  Category = "r-type"
	CategoryLoad   Category = "load"
	CategoryStore  Category = "store"
	CategoryBranch Category = "branch"
	CategoryOther  Category = "other"
)

func IsLoad(opcode uint32) bool {
	switch opcode {
	case 0b100000, 0b100100, 0b100001, 0b100101, 0b100011: // lb lbu lh lhu lw
		return true
	}
	return false
}

func IsStore(opcode uint32) bool {
	switch opcode {
	case 0b101000, 0b101001, 0b101011: // sb sh sw
		return true
	}
	return false
}

func IsBranch(opcode uint32) bool {
	switch opcode {
	case 0b000100, 0b000001, 0b000111, 0b000110, 0b000101: // beq bgez/bltz bgtz blez bne
		return true
	}
	return false
}

// Categorize classifies an instruction for signal synthesis. Opcodes outside
// the load, store and branch sets fall in CategoryOther, including j, jal and
// unassigned opcodes.
func Categorize(format Format, opcode uint32) Category {
	switch {
	case IsLoad(opcode):
		return CategoryLoad
	case IsStore(opcode):
		return CategoryStore
	case IsBranch(opcode):
		return CategoryBranch
	case format == RType:
		return CategoryRType
	}
	return CategoryOther
}

// Synthesize derives the control signals of instr.
func Synthesize(instr *Instruction) ControlSignals {
	opcode := instr.Fields.Opcode
	isLoad := IsLoad(opcode)
	isStore := IsStore(opcode)
	isBranch := IsBranch(opcode)
	isR := instr.Format == RType

	cs := ControlSignals{
		ALUSrc:   bit(!(isR || isBranch)),
		Branch:   bit(isBranch),
		MemRead:  bit(isLoad),
		MemWrite: bit(isStore),
		RegWrite: bit(!(isBranch || isStore)),
	}

	switch {
	case isLoad:
		cs.MemToReg = One
	case isStore || isBranch:
		cs.MemToReg = DontCare
	default:
		cs.MemToReg = Zero
	}

	if isStore || isBranch {
		cs.RegDst = DontCare
	} else {
		cs.RegDst = bit(isR)
	}

	return cs
}
