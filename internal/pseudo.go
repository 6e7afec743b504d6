package internal

import (
	"github.com/firodj/mipsdecode/internal/codegen"
)

type PseudoPrint func(instr *Instruction, args []*Argument) codegen.ASTNode

var mnemonicToPseudo map[Mnemonic]PseudoPrint = map[Mnemonic]PseudoPrint{
	"add":   PseudoAssign,
	"addu":  PseudoAssign,
	"addi":  PseudoAssign,
	"addiu": PseudoAssign,
	"sub":   PseudoAssign,
	"subu":  PseudoAssign,
	"and":   PseudoAssign,
	"andi":  PseudoAssign,
	"or":    PseudoAssign,
	"ori":   PseudoAssign,
	"xor":   PseudoAssign,
	"xori":  PseudoAssign,
	"nor":   PseudoAssign,
	"slt":   PseudoAssign,
	"slti":  PseudoAssign,
	"sltu":  PseudoAssign,
	"sltiu": PseudoAssign,
	"sll":   PseudoAssign,
	"sllv":  PseudoAssign,
	"sra":   PseudoAssign,
	"srav":  PseudoAssign,
	"srl":   PseudoAssign,
	"srlv":  PseudoAssign,

	"lui": PseudoLoadUpper,

	"lb":  PseudoLoad,
	"lbu": PseudoLoad,
	"lh":  PseudoLoad,
	"lhu": PseudoLoad,
	"lw":  PseudoLoad,

	"sb": PseudoStore,
	"sh": PseudoStore,
	"sw": PseudoStore,

	"beq":  PseudoBranch,
	"bne":  PseudoBranch,
	"bgez": PseudoBranch,
	"bgtz": PseudoBranch,
	"blez": PseudoBranch,
	"bltz": PseudoBranch,

	"j":    PseudoJump,
	"jr":   PseudoJump,
	"jal":  PseudoCall,
	"jalr": PseudoCall,

	"mfhi": PseudoMove,
	"mflo": PseudoMove,
	"mthi": PseudoMove,
	"mtlo": PseudoMove,

	"mult":    PseudoIntrinsic,
	"multu":   PseudoIntrinsic,
	"div":     PseudoIntrinsic,
	"divu":    PseudoIntrinsic,
	"syscall": PseudoIntrinsic,
	"break":   PseudoIntrinsic,
}

// Pseudo renders instr as a C-like statement. Instructions without a
// rendering, unknown ones included, give "".
func Pseudo(instr *Instruction) string {
	node := PseudoNode(instr)
	if node == nil {
		return ""
	}
	if s, ok := node.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

func PseudoNode(instr *Instruction) codegen.ASTNode {
	if fn, ok := mnemonicToPseudo[instr.Mnemonic]; ok {
		return fn(instr, Arguments(instr))
	}
	return nil
}

// destination operands keep their register name, $zero included
func dest(arg *Argument) codegen.ASTNode {
	return codegen.Symbol(regName(arg.Reg))
}

func PseudoAssign(instr *Instruction, args []*Argument) codegen.ASTNode {
	op := ""
	arg1Signed := false
	arg2Signed := false

	switch instr.Mnemonic {
	case "add", "addu", "addi", "addiu":
		op = "+"
	case "sub", "subu":
		op = "-"
	case "and", "andi":
		op = "&"
	case "or", "ori", "nor":
		op = "|"
	case "xor", "xori":
		op = "^"
	case "sltu", "sltiu":
		op = "<"
	case "slti":
		op = "<"
		arg1Signed = true
	case "slt":
		op = "<"
		arg1Signed = true
		arg2Signed = true
	case "sll", "sllv":
		op = "<<"
	case "sra", "srav":
		op = ">>"
		arg1Signed = true
	case "srl", "srlv":
		op = ">>"
	}

	if len(args) != 3 || op == "" {
		panic("invalid number of argument")
	}

	left := args[1].ToPseudo()
	if arg1Signed {
		left = &codegen.ASTUnary{Op: "(s32)", Expr: left}
	}
	right := args[2].ToPseudo()
	if arg2Signed {
		right = &codegen.ASTUnary{Op: "(s32)", Expr: right}
	}

	var expr codegen.ASTNode = &codegen.ASTBinary{Op: op, Left: left, Right: right}
	if instr.Mnemonic == "nor" {
		expr = &codegen.ASTUnary{Op: "~", Expr: expr}
	}

	return codegen.Assign(dest(args[0]), expr)
}

func PseudoLoadUpper(instr *Instruction, args []*Argument) codegen.ASTNode {
	return codegen.Assign(dest(args[0]), &codegen.ASTBinary{
		Op:    "<<",
		Left:  args[1].ToPseudo(),
		Right: &codegen.ASTNumber{Value: 16},
	})
}

var accessSize = map[Mnemonic]string{
	"lb":  "s8",
	"lbu": "u8",
	"lh":  "s16",
	"lhu": "u16",
	"lw":  "u32",
	"sb":  "u8",
	"sh":  "u16",
	"sw":  "u32",
}

func memory(instr *Instruction, arg *Argument) codegen.ASTNode {
	ptr := arg.ToPseudo().(*codegen.ASTPointer)
	ptr.Sz = accessSize[instr.Mnemonic]
	return ptr
}

func PseudoLoad(instr *Instruction, args []*Argument) codegen.ASTNode {
	return codegen.Assign(dest(args[0]), memory(instr, args[1]))
}

func PseudoStore(instr *Instruction, args []*Argument) codegen.ASTNode {
	return codegen.Assign(memory(instr, args[1]), args[0].ToPseudo())
}

var branchCond = map[Mnemonic]string{
	"beq":  "==",
	"bne":  "!=",
	"bgez": ">=",
	"bgtz": ">",
	"blez": "<=",
	"bltz": "<",
}

func PseudoBranch(instr *Instruction, args []*Argument) codegen.ASTNode {
	cond := &codegen.ASTBinary{
		Op:   branchCond[instr.Mnemonic],
		Left: args[0].ToPseudo(),
	}
	if len(args) == 3 {
		cond.Right = args[1].ToPseudo()
	} else {
		cond.Left = &codegen.ASTUnary{Op: "(s32)", Expr: cond.Left}
		cond.Right = &codegen.ASTNumber{Value: 0}
	}
	return &codegen.ASTIf{
		Cond: cond,
		Then: &codegen.ASTGoto{Target: args[len(args)-1].ToPseudo()},
	}
}

func PseudoJump(instr *Instruction, args []*Argument) codegen.ASTNode {
	return &codegen.ASTGoto{Target: args[0].ToPseudo()}
}

func PseudoCall(instr *Instruction, args []*Argument) codegen.ASTNode {
	target := args[len(args)-1].ToPseudo()
	link := "$ra"
	if instr.Mnemonic == "jalr" {
		link = regName(args[0].Reg)
	}
	return codegen.Assign(codegen.Symbol(link), &codegen.ASTCall{Expr: target})
}

func PseudoMove(instr *Instruction, args []*Argument) codegen.ASTNode {
	switch instr.Mnemonic {
	case "mfhi":
		return codegen.Assign(dest(args[0]), codegen.Symbol("hi"))
	case "mflo":
		return codegen.Assign(dest(args[0]), codegen.Symbol("lo"))
	case "mthi":
		return codegen.Assign(codegen.Symbol("hi"), args[0].ToPseudo())
	}
	return codegen.Assign(codegen.Symbol("lo"), args[0].ToPseudo())
}

func PseudoIntrinsic(instr *Instruction, args []*Argument) codegen.ASTNode {
	call := &codegen.ASTCall{Expr: codegen.Symbol(instr.Mnemonic.String())}
	for _, arg := range args {
		call.Args = append(call.Args, arg.ToPseudo())
	}
	return call
}
