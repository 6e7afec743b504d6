package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoundTrip(t *testing.T) {
	for i := 0; i < NumRegisters; i++ {
		name, err := RegisterName(i)
		require.NoError(t, err)

		index, err := RegisterIndex(name)
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}
}

func TestRegisterName(t *testing.T) {
	name, err := RegisterName(0)
	require.NoError(t, err)
	assert.Equal(t, "$zero", name)

	name, err = RegisterName(29)
	require.NoError(t, err)
	assert.Equal(t, "$sp", name)

	name, err = RegisterName(31)
	require.NoError(t, err)
	assert.Equal(t, "$ra", name)

	for _, bad := range []int{-1, 32, 100} {
		_, err := RegisterName(bad)
		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr), "index %d", bad)
		assert.Equal(t, bad, rangeErr.Start)
	}
}

func TestRegisterIndex(t *testing.T) {
	index, err := RegisterIndex("$s8")
	require.NoError(t, err)
	assert.Equal(t, 30, index)

	for _, bad := range []string{"", "sp", "$fp", "$32"} {
		_, err := RegisterIndex(bad)
		assert.ErrorIs(t, err, ErrNameNotFound)
	}
}

func TestLookupRegister(t *testing.T) {
	for _, ref := range []string{"29", "$sp", "sp"} {
		index, name, err := LookupRegister(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, 29, index, ref)
		assert.Equal(t, "$sp", name, ref)
	}

	_, _, err := LookupRegister("32")
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))

	_, _, err = LookupRegister("fp")
	assert.ErrorIs(t, err, ErrNameNotFound)
}
