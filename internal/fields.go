package internal

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type FieldName string

const (
	FieldOpcode FieldName = "opcode"
	FieldRs     FieldName = "rs"
	FieldRt     FieldName = "rt"
	FieldRd     FieldName = "rd"
	FieldShamt  FieldName = "shamt"
	FieldFunct  FieldName = "funct"
	FieldImm    FieldName = "imm"
	FieldLabel  FieldName = "label"
)

// FieldSpec is a named bit range [Start, End) of a word.
type FieldSpec struct {
	Name  FieldName
	Start int
	End   int
}

func (spec FieldSpec) Width() int {
	return spec.End - spec.Start
}

var layouts = map[Format][]FieldSpec{
	RType: {
		{FieldOpcode, 0, 6},
		{FieldRs, 6, 11},
		{FieldRt, 11, 16},
		{FieldRd, 16, 21},
		{FieldShamt, 21, 26},
		{FieldFunct, 26, 32},
	},
	IType: {
		{FieldOpcode, 0, 6},
		{FieldRs, 6, 11},
		{FieldRt, 11, 16},
		{FieldImm, 16, 32},
	},
	JType: {
		{FieldOpcode, 0, 6},
		{FieldLabel, 6, 32},
	},
}

// Layout returns the field layout of format, in word order.
func Layout(format Format) []FieldSpec {
	specs := layouts[format]
	out := make([]FieldSpec, len(specs))
	copy(out, specs)
	return out
}

// FieldSet holds the extracted fields of a word. Only the fields present in
// the layout of Format are meaningful; the others stay zero.
type FieldSet struct {
	Format Format
	Opcode uint32
	Rs     uint32
	Rt     uint32
	Rd     uint32
	Shamt  uint32
	Funct  uint32
	Imm    uint32
	Label  uint32
}

// Extract splits word into the fields of format. Values are unsigned, no sign
// extension is applied to imm.
func Extract(word Word, format Format) FieldSet {
	fs := FieldSet{Format: format}
	for _, spec := range layouts[format] {
		*fs.ref(spec.Name) = field(word, spec.Start, spec.End)
	}
	return fs
}

func (fs *FieldSet) ref(name FieldName) *uint32 {
	switch name {
	case FieldOpcode:
		return &fs.Opcode
	case FieldRs:
		return &fs.Rs
	case FieldRt:
		return &fs.Rt
	case FieldRd:
		return &fs.Rd
	case FieldShamt:
		return &fs.Shamt
	case FieldFunct:
		return &fs.Funct
	case FieldImm:
		return &fs.Imm
	case FieldLabel:
		return &fs.Label
	}
	panic("unknown field " + string(name))
}

// Get returns the value of a field and whether the format has it.
func (fs FieldSet) Get(name FieldName) (uint32, bool) {
	for _, spec := range layouts[fs.Format] {
		if spec.Name == name {
			return *fs.ref(name), true
		}
	}
	return 0, false
}

// Named returns the fields of the format in layout order.
func (fs FieldSet) Named() *orderedmap.OrderedMap[FieldName, uint32] {
	om := orderedmap.New[FieldName, uint32]()
	for _, spec := range layouts[fs.Format] {
		om.Set(spec.Name, *fs.ref(spec.Name))
	}
	return om
}

// IsRegister tells whether a field holds a register index.
func (name FieldName) IsRegister() bool {
	return name == FieldRs || name == FieldRt || name == FieldRd
}
