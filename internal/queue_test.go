package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := Queue[string]{}

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
	q.Push("a")
	q.Push("b", "c")

	assert.Equal(t, 3, q.Len())
	x := q.Pop()
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "a", x)

	var rest []string
	q.Drain(func(s string) {
		rest = append(rest, s)
	})
	assert.Equal(t, []string{"b", "c"}, rest)
	assert.True(t, q.Empty())
}
