package internal

import (
	"fmt"
	"strings"

	"github.com/firodj/mipsdecode/internal/codegen"
)

type ArgType string

const (
	ArgNone  ArgType = ""
	ArgImm   ArgType = "imm"
	ArgReg   ArgType = "reg"
	ArgMem   ArgType = "mem"
	ArgLabel ArgType = "label"
)

// Argument is a rendered operand of an instruction.
type Argument struct {
	Type   ArgType
	Reg    uint32
	ValOfs uint32
}

func RegArg(reg uint32) *Argument {
	return &Argument{Type: ArgReg, Reg: reg}
}

func ImmArg(v uint32) *Argument {
	return &Argument{Type: ArgImm, ValOfs: v}
}

func MemArg(base, ofs uint32) *Argument {
	return &Argument{Type: ArgMem, Reg: base, ValOfs: ofs}
}

func LabelArg(v uint32) *Argument {
	return &Argument{Type: ArgLabel, ValOfs: v}
}

func (arg *Argument) ValueStr(isDec bool) string {
	if isDec {
		return fmt.Sprintf("%d", arg.ValOfs)
	}
	return fmt.Sprintf("0x%x", arg.ValOfs)
}

// Str renders the operand in assembler syntax.
func (arg *Argument) Str(isDec bool) string {
	switch arg.Type {
	case ArgImm, ArgLabel:
		return arg.ValueStr(isDec)
	case ArgReg:
		return regName(arg.Reg)
	case ArgMem:
		return arg.ValueStr(isDec) + "(" + regName(arg.Reg) + ")"
	}
	return "??"
}

func (arg *Argument) IsZero() bool {
	return (arg.Type == ArgImm && arg.ValOfs == 0) || (arg.Type == ArgReg && arg.Reg == 0)
}

// ToPseudo converts the operand to an expression node. Register $zero becomes
// the number 0.
func (arg *Argument) ToPseudo() codegen.ASTNode {
	switch arg.Type {
	case ArgImm, ArgLabel:
		return &codegen.ASTNumber{Value: int(arg.ValOfs)}
	case ArgReg:
		if arg.Reg == 0 {
			return &codegen.ASTNumber{Value: 0}
		}
		return codegen.Symbol(regName(arg.Reg))
	case ArgMem:
		var addr codegen.ASTNode = codegen.Symbol(regName(arg.Reg))
		if arg.ValOfs != 0 {
			addr = &codegen.ASTBinary{
				Op:    "+",
				Left:  addr,
				Right: &codegen.ASTNumber{Value: int(arg.ValOfs)},
			}
		}
		return &codegen.ASTPointer{Sz: "u32", Expr: addr}
	}

	panic("unknown argument type")
}

// Syntax is the operand layout of a mnemonic.
type Syntax int

const (
	SyntaxNone      Syntax = iota // break, syscall
	SyntaxRdRsRt                  // add rd, rs, rt
	SyntaxRsRt                    // div rs, rt
	SyntaxRdRs                    // jalr rd, rs
	SyntaxRs                      // jr rs
	SyntaxRd                      // mfhi rd
	SyntaxRdRtSa                  // sll rd, rt, sa
	SyntaxRdRtRs                  // sllv rd, rt, rs
	SyntaxRtRsImm                 // addi rt, rs, immediate
	SyntaxRsRtLabel               // beq rs, rt, label
	SyntaxRsLabel                 // bgez rs, label
	SyntaxRtMem                   // lw rt, immediate(rs)
	SyntaxRtImm                   // lui rt, immediate
	SyntaxLabel                   // j label
)

var mnemonicSyntax = map[Mnemonic]Syntax{
	"add": SyntaxRdRsRt, "addu": SyntaxRdRsRt, "and": SyntaxRdRsRt, "nor": SyntaxRdRsRt,
	"or": SyntaxRdRsRt, "slt": SyntaxRdRsRt, "sltu": SyntaxRdRsRt, "sub": SyntaxRdRsRt,
	"subu": SyntaxRdRsRt, "xor": SyntaxRdRsRt,

	"div": SyntaxRsRt, "divu": SyntaxRsRt, "mult": SyntaxRsRt, "multu": SyntaxRsRt,

	"break": SyntaxNone, "syscall": SyntaxNone,

	"jalr": SyntaxRdRs,
	"jr":   SyntaxRs, "mthi": SyntaxRs, "mtlo": SyntaxRs,
	"mfhi": SyntaxRd, "mflo": SyntaxRd,

	"sll": SyntaxRdRtSa, "sra": SyntaxRdRtSa, "srl": SyntaxRdRtSa,
	"sllv": SyntaxRdRtRs, "srav": SyntaxRdRtRs, "srlv": SyntaxRdRtRs,

	"addi": SyntaxRtRsImm, "addiu": SyntaxRtRsImm, "andi": SyntaxRtRsImm, "ori": SyntaxRtRsImm,
	"slti": SyntaxRtRsImm, "sltiu": SyntaxRtRsImm, "xori": SyntaxRtRsImm,

	"beq": SyntaxRsRtLabel, "bne": SyntaxRsRtLabel,
	"bgez": SyntaxRsLabel, "bgtz": SyntaxRsLabel, "blez": SyntaxRsLabel, "bltz": SyntaxRsLabel,

	"lb": SyntaxRtMem, "lbu": SyntaxRtMem, "lh": SyntaxRtMem, "lhu": SyntaxRtMem, "lw": SyntaxRtMem,
	"lwc1": SyntaxRtMem, "sb": SyntaxRtMem, "sh": SyntaxRtMem, "sw": SyntaxRtMem, "swc1": SyntaxRtMem,

	"lui": SyntaxRtImm,

	"j": SyntaxLabel, "jal": SyntaxLabel,
}

// Arguments returns the operands of instr in assembler order. Unknown
// instructions have none.
func Arguments(instr *Instruction) []*Argument {
	syntax, ok := mnemonicSyntax[instr.Mnemonic]
	if !ok {
		return nil
	}
	f := instr.Fields
	switch syntax {
	case SyntaxRdRsRt:
		return []*Argument{RegArg(f.Rd), RegArg(f.Rs), RegArg(f.Rt)}
	case SyntaxRsRt:
		return []*Argument{RegArg(f.Rs), RegArg(f.Rt)}
	case SyntaxRdRs:
		return []*Argument{RegArg(f.Rd), RegArg(f.Rs)}
	case SyntaxRs:
		return []*Argument{RegArg(f.Rs)}
	case SyntaxRd:
		return []*Argument{RegArg(f.Rd)}
	case SyntaxRdRtSa:
		return []*Argument{RegArg(f.Rd), RegArg(f.Rt), ImmArg(f.Shamt)}
	case SyntaxRdRtRs:
		return []*Argument{RegArg(f.Rd), RegArg(f.Rt), RegArg(f.Rs)}
	case SyntaxRtRsImm:
		return []*Argument{RegArg(f.Rt), RegArg(f.Rs), ImmArg(f.Imm)}
	case SyntaxRsRtLabel:
		return []*Argument{RegArg(f.Rs), RegArg(f.Rt), LabelArg(f.Imm)}
	case SyntaxRsLabel:
		return []*Argument{RegArg(f.Rs), LabelArg(f.Imm)}
	case SyntaxRtMem:
		return []*Argument{RegArg(f.Rt), MemArg(f.Rs, f.Imm)}
	case SyntaxRtImm:
		return []*Argument{RegArg(f.Rt), ImmArg(f.Imm)}
	case SyntaxLabel:
		return []*Argument{LabelArg(f.Label)}
	}
	return nil
}

// Disassemble renders instr in assembler syntax, e.g. "add $v1, $v0, $at".
func Disassemble(instr *Instruction) string {
	if !instr.Known() {
		return fmt.Sprintf(".word 0x%08x", uint32(instr.Word))
	}
	args := Arguments(instr)
	if len(args) == 0 {
		return instr.Mnemonic.String()
	}
	strs := make([]string, len(args))
	for i, arg := range args {
		// shift amounts read better in decimal
		strs[i] = arg.Str(arg.Type == ArgImm && mnemonicSyntax[instr.Mnemonic] == SyntaxRdRtSa)
	}
	return instr.Mnemonic.String() + " " + strings.Join(strs, ", ")
}
