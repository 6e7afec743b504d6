package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const NumRegisters = 32

var ErrNameNotFound = errors.New("register name not found")

var registerNames = [NumRegisters]string{
	"$zero", "$at", "$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp", "$sp", "$s8", "$ra",
}

var registerIndexes = func() map[string]int {
	m := make(map[string]int, NumRegisters)
	for i, name := range registerNames {
		m[name] = i
	}
	return m
}()

// RegisterName returns the symbolic name of register index.
func RegisterName(index int) (string, error) {
	if index < 0 || index >= NumRegisters {
		return "", &RangeError{What: "register index", Start: index, End: -1}
	}
	return registerNames[index], nil
}

// RegisterIndex returns the index of a symbolic register name such as "$sp".
func RegisterIndex(name string) (int, error) {
	if i, ok := registerIndexes[name]; ok {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrNameNotFound, name)
}

// LookupRegister resolves ref given as an index ("29"), a name ("$sp") or a
// name without the dollar sign ("sp").
func LookupRegister(ref string) (int, string, error) {
	if index, err := strconv.Atoi(ref); err == nil {
		name, err := RegisterName(index)
		if err != nil {
			return -1, "", err
		}
		return index, name, nil
	}

	if !strings.HasPrefix(ref, "$") {
		ref = "$" + ref
	}
	index, err := RegisterIndex(ref)
	if err != nil {
		return -1, "", err
	}
	return index, ref, nil
}

// regName is RegisterName for 5-bit fields, which are always in range.
func regName(index uint32) string {
	return registerNames[index&0x1f]
}
