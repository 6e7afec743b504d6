package internal

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	cases := map[string]Word{
		"0b101":        5,
		"0B101":        5,
		"0o17":         15,
		"0O17":         15,
		"0x8C230004":   0x8c230004,
		"0X1f":         0x1f,
		" 42 ":         42,
		"0":            0,
		"4294967295":   0xffffffff,
		"0xffff_ffff":  0xffffffff,
		"0b1111_0000":  0xf0,
		"000000000042": 42,
	}

	for lit, want := range cases {
		got, err := ParseInt(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, got, lit)
	}
}

func TestParseIntErrors(t *testing.T) {
	t.Run("when out of range", func(t *testing.T) {
		_, err := ParseInt("4294967296")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "4294967296", parseErr.Literal)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	for _, lit := range []string{"", "0x", "0xZZ", "-1", "0b102", "abc", "0o8"} {
		t.Run("when "+lit, func(t *testing.T) {
			_, err := ParseInt(lit)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
		})
	}
}

func TestParseAll(t *testing.T) {
	q, err := ParseAll([]string{"1", "0x2", "0b11"})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, Word(1), q.Pop())
	assert.Equal(t, Word(2), q.Pop())
	assert.Equal(t, Word(3), q.Pop())

	_, err = ParseAll([]string{"1", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "literal #2")

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
