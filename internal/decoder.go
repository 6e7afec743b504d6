package internal

import (
	"github.com/sirupsen/logrus"
)

// Instruction is a decoded word. It is a plain value; decoding the same word
// twice gives equal instructions.
type Instruction struct {
	Word     Word
	Format   Format
	Fields   FieldSet
	Mnemonic Mnemonic
}

// Known tells whether the mnemonic was found in the tables.
func (instr *Instruction) Known() bool {
	return !instr.Mnemonic.IsUnknown()
}

func (instr *Instruction) Bits() string {
	return instr.Word.Bits()
}

// Category is the datapath class used by the signal synthesizer.
func (instr *Instruction) Category() Category {
	return Categorize(instr.Format, instr.Fields.Opcode)
}

func (instr *Instruction) String() string {
	return Disassemble(instr)
}

// DecodeWord classifies word, extracts its fields and resolves the mnemonic.
func DecodeWord(word Word) *Instruction {
	format := Classify(field(word, 0, 6))
	fields := Extract(word, format)
	return &Instruction{
		Word:     word,
		Format:   format,
		Fields:   fields,
		Mnemonic: Resolve(format, fields),
	}
}

// DeriveSignals returns the datapath control signals of instr.
func DeriveSignals(instr *Instruction) ControlSignals {
	return Synthesize(instr)
}

// Decoder wraps DecodeWord with diagnostics for words that do not resolve.
type Decoder struct {
	log logrus.FieldLogger
}

func NewDecoder(log logrus.FieldLogger) *Decoder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Decoder{log: log}
}

// Decode decodes word and its control signals. An unknown mnemonic is not an
// error; it is reported in the result and logged at debug level.
func (dec *Decoder) Decode(word Word) (*Instruction, ControlSignals) {
	instr := DecodeWord(word)
	if !instr.Known() {
		fields := logrus.Fields{
			"word":   word.String(),
			"format": instr.Format.String(),
			"opcode": instr.Fields.Opcode,
		}
		if instr.Format == RType {
			fields["funct"] = instr.Fields.Funct
		}
		dec.log.WithFields(fields).Debug("unknown instruction")
	}
	return instr, DeriveSignals(instr)
}

// DecodeQueue decodes every word in q in order.
func (dec *Decoder) DecodeQueue(q *Queue[Word], fn func(*Instruction, ControlSignals)) {
	q.Drain(func(w Word) {
		fn(dec.Decode(w))
	})
}
