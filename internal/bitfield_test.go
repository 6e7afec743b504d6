package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBits(t *testing.T) {
	cases := []struct {
		word       Word
		start, end int
		want       uint32
	}{
		{0x80000000, 0, 1, 1},
		{0x80000000, 1, 32, 0},
		{0x00000001, 31, 32, 1},
		{0xffffffff, 0, 32, 0xffffffff},
		{0x8c230004, 0, 6, 0b100011},
		{0x8c230004, 6, 11, 1},
		{0x8c230004, 11, 16, 3},
		{0x8c230004, 16, 32, 4},
		{0x0000ffff, 16, 32, 0xffff},
	}

	for _, c := range cases {
		got, err := ReadBits(c.word, c.start, c.end)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "word=%s [%d,%d)", c.word, c.start, c.end)
	}
}

func TestReadBitsRange(t *testing.T) {
	bad := [][2]int{{-1, 3}, {5, 5}, {6, 5}, {0, 33}, {32, 32}}

	for _, r := range bad {
		_, err := ReadBits(0x12345678, r[0], r[1])
		require.Error(t, err)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, r[0], rangeErr.Start)
		assert.Equal(t, r[1], rangeErr.End)
	}
}

func TestWordBits(t *testing.T) {
	w := Word(0x00411820)
	assert.Equal(t, "00000000010000010001100000100000", w.Bits())
	assert.Len(t, w.Bits(), 32)
	assert.Equal(t, "0x411820", w.String())
}
