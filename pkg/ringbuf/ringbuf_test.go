package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_PushAndEvict(t *testing.T) {
	r := New[int](3)
	assert.False(t, r.Push(1))
	assert.False(t, r.Push(2))
	assert.False(t, r.Push(3))
	assert.Equal(t, 3, r.Len())

	assert.True(t, r.Push(4))
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{2, 3, 4}, r.Slice())
	assert.Equal(t, 2, r.At(0))
	assert.Equal(t, 4, r.Last())
}

func TestRing_SetAfterRotation(t *testing.T) {
	r := New[string](2)
	r.Push("a")
	r.Push("b")
	r.Push("c")

	r.SetLast("C")
	r.Set(0, "B")
	assert.Equal(t, []string{"B", "C"}, r.Slice())
}

func TestRing_Reset(t *testing.T) {
	r := New[int](2)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 2, r.Cap())

	r.Push(9)
	assert.Equal(t, []int{9}, r.Slice())
}

func TestRing_OutOfRange(t *testing.T) {
	r := New[int](2)
	assert.Panics(t, func() { r.At(0) })
	assert.Panics(t, func() { r.SetLast(1) })
	assert.Panics(t, func() { New[int](0) })
}
