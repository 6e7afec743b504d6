package internal

import (
	"fmt"
	"strconv"
)

// Word is a raw 32-bit instruction word.
type Word uint32

const WordBits = 32

// RangeError reports a bit range or register index outside its bounds.
type RangeError struct {
	What  string
	Start int
	End   int
}

func (e *RangeError) Error() string {
	if e.End < 0 {
		return fmt.Sprintf("%s %d out of range", e.What, e.Start)
	}
	return fmt.Sprintf("%s [%d,%d) out of range", e.What, e.Start, e.End)
}

// ReadBits returns the unsigned value of bits [start, end) of word. Bit 0 is
// the most significant bit, matching the layout diagrams of the instruction
// formats.
func ReadBits(word Word, start, end int) (uint32, error) {
	if start < 0 || end > WordBits || start >= end {
		return 0, &RangeError{What: "bit range", Start: start, End: end}
	}
	width := uint(end - start)
	shift := uint(WordBits - end)
	mask := uint64(1)<<width - 1
	return uint32((uint64(word) >> shift) & mask), nil
}

// field is ReadBits for the fixed layouts, which are always in range.
func field(word Word, start, end int) uint32 {
	v, err := ReadBits(word, start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// Bits renders the word as a 32 character binary string.
func (w Word) Bits() string {
	return fmt.Sprintf("%032b", uint32(w))
}

func (w Word) String() string {
	return "0x" + strconv.FormatUint(uint64(w), 16)
}
