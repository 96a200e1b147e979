// Package ringbuf provides a fixed capacity ring buffer that overwrites its
// oldest element once full. Elements are addressed by logical position, so
// callers never observe the rotation of the underlying slice.
//
// The buffer is not safe for concurrent use.
package ringbuf

// Ring is a bounded FIFO of T. Position 0 is the oldest element.
type Ring[T any] struct {
	buf  []T
	head int // physical position of the oldest element
	size int
}

// New creates a ring with the given capacity. capacity must be positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be greater than zero")
	}

	return &Ring[T]{
		buf: make([]T, capacity),
	}
}

// Push appends v. When the ring is full the oldest element is overwritten
// and evicted reports true.
func (r *Ring[T]) Push(v T) (evicted bool) {
	if r.size < len(r.buf) {
		r.buf[r.physical(r.size)] = v
		r.size++
		return false
	}

	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	return true
}

// At returns the element at logical position i.
func (r *Ring[T]) At(i int) T {
	r.check(i)
	return r.buf[r.physical(i)]
}

// Set overwrites the element at logical position i.
func (r *Ring[T]) Set(i int, v T) {
	r.check(i)
	r.buf[r.physical(i)] = v
}

// SetLast overwrites the newest element. It panics on an empty ring.
func (r *Ring[T]) SetLast(v T) {
	r.Set(r.size-1, v)
}

// Last returns the newest element. It panics on an empty ring.
func (r *Ring[T]) Last() T {
	return r.At(r.size - 1)
}

func (r *Ring[T]) Len() int {
	return r.size
}

func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Reset drops every element but keeps the capacity.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head = 0
	r.size = 0
}

// Slice copies the elements out in logical order.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[r.physical(i)]
	}
	return out
}

func (r *Ring[T]) physical(i int) int {
	return (r.head + i) % len(r.buf)
}

func (r *Ring[T]) check(i int) {
	if i < 0 || i >= r.size {
		panic("ringbuf: position out of range")
	}
}
