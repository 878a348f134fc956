package iterrange

import (
	"unsafe"

	"github.com/mgnsk/heapfree/internal/assert"
)

// SliceCursor is a random access cursor over a slice.
// The zero value is a null cursor.
type SliceCursor[T any] struct {
	s []T
	i int
}

// Of returns a range over all elements of s.
func Of[T any](s []T) Range[SliceCursor[T], *T] {
	return New[SliceCursor[T], *T](SliceCursor[T]{s: s}, SliceCursor[T]{s: s, i: len(s)})
}

// Next implements Cursor.
func (c SliceCursor[T]) Next() SliceCursor[T] {
	assert.That(c.i < len(c.s), ErrOutOfRange, "cannot increment past the end of a slice")
	return SliceCursor[T]{s: c.s, i: c.i + 1}
}

// Prev implements Cursor.
func (c SliceCursor[T]) Prev() SliceCursor[T] {
	assert.That(c.i > 0, ErrOutOfRange, "cannot decrement past the beginning of a slice")
	return SliceCursor[T]{s: c.s, i: c.i - 1}
}

// Equal implements Cursor. Cursors are equal if they index the same slice
// header, so sub-slices sharing an array are told apart by length and capacity.
// Slices with zero capacity own no storage and are all equal to each other.
func (c SliceCursor[T]) Equal(o SliceCursor[T]) bool {
	return unsafe.SliceData(c.s) == unsafe.SliceData(o.s) &&
		len(c.s) == len(o.s) &&
		cap(c.s) == cap(o.s) &&
		c.i == o.i
}

// Get implements Cursor.
func (c SliceCursor[T]) Get() *T {
	assert.That(c.i >= 0 && c.i < len(c.s), ErrOutOfRange, "cannot dereference the end of a slice")
	return &c.s[c.i]
}

// Advance implements RandomAccess.
func (c SliceCursor[T]) Advance(n int) SliceCursor[T] {
	i := c.i + n
	assert.That(i >= 0 && i <= len(c.s), ErrOutOfRange, "cannot advance outside of a slice")
	return SliceCursor[T]{s: c.s, i: i}
}

// Distance implements RandomAccess.
func (c SliceCursor[T]) Distance(o SliceCursor[T]) int {
	return o.i - c.i
}
