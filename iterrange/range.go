/*
Package iterrange wraps a pair of cursors into a sized, indexable range.

Any bidirectional cursor works. Cursors that also implement RandomAccess get
O(1) Len and At, all others are walked from the beginning.
*/
package iterrange

import (
	"iter"

	"github.com/mgnsk/heapfree/internal/assert"
	"github.com/pkg/errors"
)

// ErrOutOfRange is the cause of a violation when an index or cursor leaves the range.
var ErrOutOfRange = errors.New("out of range")

// Cursor is a bidirectional position yielding V.
type Cursor[C any, V any] interface {
	// Next returns the following position.
	Next() C
	// Prev returns the preceding position.
	Prev() C
	// Equal reports whether both cursors point at the same position.
	Equal(C) bool
	// Get returns the element at the position.
	Get() V
}

// RandomAccess is implemented by cursors that can jump in O(1).
type RandomAccess[C any] interface {
	// Advance returns the position n steps away.
	Advance(n int) C
	// Distance returns the number of steps from the receiver to c.
	Distance(c C) int
}

// Range is a view over [begin, end). It owns nothing.
//
// The zero value is an empty range.
type Range[C Cursor[C, V], V any] struct {
	begin, end C
}

// New creates a range from begin up to, not including, end.
func New[C Cursor[C, V], V any](begin, end C) Range[C, V] {
	return Range[C, V]{begin: begin, end: end}
}

// Begin returns the first position.
func (r Range[C, V]) Begin() C {
	return r.begin
}

// End returns the position past the last element.
func (r Range[C, V]) End() C {
	return r.end
}

// Empty reports whether the range has no elements.
func (r Range[C, V]) Empty() bool {
	return r.begin.Equal(r.end)
}

// Len returns the number of elements.
//
// NOTE: This is an O(n) operation unless the cursor implements RandomAccess.
func (r Range[C, V]) Len() int {
	// Null cursors can not measure a distance.
	if r.Empty() {
		return 0
	}

	if ra, ok := any(r.begin).(RandomAccess[C]); ok {
		return ra.Distance(r.end)
	}

	n := 0
	for it := r.begin; !it.Equal(r.end); it = it.Next() {
		n++
	}
	return n
}

// Front returns the first element.
func (r Range[C, V]) Front() V {
	assert.That(!r.Empty(), ErrOutOfRange, "cannot access the front of an empty range")
	return r.begin.Get()
}

// Back returns the last element.
func (r Range[C, V]) Back() V {
	assert.That(!r.Empty(), ErrOutOfRange, "cannot access the back of an empty range")
	return r.end.Prev().Get()
}

// At returns the element at index i.
func (r Range[C, V]) At(i int) V {
	return r.seek(i).Get()
}

// Slice returns the sub-range [i, j).
func (r Range[C, V]) Slice(i, j int) Range[C, V] {
	assert.That(i <= j, ErrOutOfRange, "invalid slice bounds")
	begin := r.cursor(i)
	return Range[C, V]{
		begin: begin,
		end:   Range[C, V]{begin: begin, end: r.end}.cursor(j - i),
	}
}

// All returns an iterator over the elements in order.
func (r Range[C, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := r.begin; !it.Equal(r.end); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// seek returns the cursor at element i.
func (r Range[C, V]) seek(i int) C {
	it := r.cursor(i)
	assert.That(!it.Equal(r.end), ErrOutOfRange, "index past the last element")
	return it
}

// cursor returns the position i steps from begin, end included.
func (r Range[C, V]) cursor(i int) C {
	assert.That(i >= 0, ErrOutOfRange, "negative index")

	if ra, ok := any(r.begin).(RandomAccess[C]); ok && !r.Empty() {
		assert.That(i <= ra.Distance(r.end), ErrOutOfRange, "index past the end")
		return ra.Advance(i)
	}

	it := r.begin
	for n := 0; n < i; n++ {
		assert.That(!it.Equal(r.end), ErrOutOfRange, "index past the end")
		it = it.Next()
	}
	return it
}
