package internal

import (
	"fmt"
)

// InstructionView is the plain data rendered by the CLI and the HTTP API.
type InstructionView struct {
	Word      uint32            `json:"word"`
	Hex       string            `json:"hex"`
	Bits      string            `json:"bits"`
	Format    string            `json:"format"`
	Mnemonic  string            `json:"mnemonic"`
	Known     bool              `json:"known"`
	Category  Category          `json:"category"`
	Fields    map[string]uint32 `json:"fields"`
	Registers map[string]string `json:"registers,omitempty"`
	Assembly  string            `json:"assembly"`
	Pseudo    string            `json:"pseudo,omitempty"`
	Signals   ControlSignals    `json:"signals"`
}

func NewInstructionView(instr *Instruction, signals ControlSignals) *InstructionView {
	view := &InstructionView{
		Word:      uint32(instr.Word),
		Hex:       fmt.Sprintf("0x%08x", uint32(instr.Word)),
		Bits:      instr.Bits(),
		Format:    instr.Format.String(),
		Mnemonic:  instr.Mnemonic.String(),
		Known:     instr.Known(),
		Category:  instr.Category(),
		Fields:    make(map[string]uint32),
		Registers: make(map[string]string),
		Assembly:  Disassemble(instr),
		Pseudo:    Pseudo(instr),
		Signals:   signals,
	}

	named := instr.Fields.Named()
	for pair := named.Oldest(); pair != nil; pair = pair.Next() {
		view.Fields[string(pair.Key)] = pair.Value
		if pair.Key.IsRegister() {
			view.Registers[string(pair.Key)] = regName(pair.Value)
		}
	}

	return view
}
