/*
Package heapfree implements a chain: an intrusive, non-owning circular doubly linked list.

The caller allocates each Segment (on the stack, globally or inside another
struct) and links it into a Chain. The chain never allocates, copies or frees
segments; it only rewires their links.

	var c heapfree.Chain[int]

	a := c.PlaceBack(42)
	b := c.PlaceBack(5)
	defer a.Release()
	defer b.Release()

	*c.At(1) = 10

	for v := range c.All() {
		fmt.Println(*v)
	}

Iterators track a segment, not a position: they stay valid as long as the
segment is part of the chain, even across unlinking and relinking.

Breaking a contract (linking a linked segment, unlinking twice, walking past
the end, using an iterator with the wrong chain) is a Violation and goes to the
abort path, see SetAbortFunc.

Chains and segments are not safe for concurrent use.
*/
package heapfree

import (
	"iter"

	"github.com/mgnsk/heapfree/internal/assert"
	"github.com/mgnsk/heapfree/iterrange"
)

// Chain is the header of a ring of segments. Its sentinel link marks both the
// beginning and the end of the ring.
//
// The zero value is a ready to use empty chain.
// A chain must not be copied after first use, use MoveFrom or Swap instead.
type Chain[T any] struct {
	noCopy noCopy
	head   Link[T]
}

// init makes the sentinel of a zero chain self-referential.
func (c *Chain[T]) init() *Link[T] {
	if c.head.next == nil {
		c.head.next = &c.head
		c.head.prev = &c.head
	}
	return &c.head
}

// Empty reports whether no segments are linked.
func (c *Chain[T]) Empty() bool {
	return c.head.next == nil || c.head.next == &c.head
}

// Len returns the number of linked segments.
//
// NOTE: This is an O(n) operation.
func (c *Chain[T]) Len() (count int) {
	for l := c.init().next; l != &c.head; l = l.next {
		count++
	}
	return count
}

// Begin returns an iterator to the first value or End if the chain is empty.
func (c *Chain[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{c: c, l: c.init().next}}
}

// End returns the iterator past the last value.
func (c *Chain[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{c: c, l: c.init()}}
}

// Front returns the first value.
func (c *Chain[T]) Front() *T {
	assert.That(!c.Empty(), ErrEmpty, "cannot access the front of an empty chain")
	return &c.head.next.seg.value
}

// Back returns the last value.
func (c *Chain[T]) Back() *T {
	assert.That(!c.Empty(), ErrEmpty, "cannot access the back of an empty chain")
	return &c.head.prev.seg.value
}

// At returns the value at index i.
//
// NOTE: This is an O(n) operation.
func (c *Chain[T]) At(i int) *T {
	return c.Values().At(i)
}

// Link inserts s immediately before pos and returns an iterator to it.
// pos may be End. s must be unlinked and pos must belong to c.
func (c *Chain[T]) Link(pos Iterator[T], s *Segment[T]) Iterator[T] {
	pos.check("link at")
	assert.That(pos.c == c, ErrForeignChain, "cannot link at an iterator of another chain")
	assert.That(!s.IsLinked(), ErrAlreadyLinked, "cannot link a segment that is already linked")
	assert.That(pos.l.next != nil, ErrNotLinked, "cannot link next to an unlinked segment")

	l := s.self()
	l.insertBefore(pos.l)

	return Iterator[T]{cursor[T]{c: c, l: l}}
}

// LinkAfter inserts s immediately after pos, which must not be End.
func (c *Chain[T]) LinkAfter(pos Iterator[T], s *Segment[T]) Iterator[T] {
	return c.Link(pos.Next(), s)
}

// LinkFront inserts s at the front of the chain.
func (c *Chain[T]) LinkFront(s *Segment[T]) Iterator[T] {
	return c.Link(c.Begin(), s)
}

// LinkBack inserts s at the back of the chain.
func (c *Chain[T]) LinkBack(s *Segment[T]) Iterator[T] {
	return c.Link(c.End(), s)
}

// Unlink removes the segment at it from the chain and returns an iterator to the
// following value. The segment itself is left to the caller.
func (c *Chain[T]) Unlink(it Iterator[T]) Iterator[T] {
	it.check("unlink")
	assert.That(it.c == c, ErrForeignChain, "cannot unlink an iterator of another chain")
	assert.That(!it.isEnd(), ErrPastEnd, "cannot unlink the end iterator")
	assert.That(it.l.next != nil, ErrNotLinked, "cannot unlink a segment that is not linked")

	next := it.Next()
	it.l.unlink()

	return next
}

// Clear unlinks every segment. No segment is released.
func (c *Chain[T]) Clear() {
	cur := c.head.next
	c.head.next = &c.head
	c.head.prev = &c.head

	for cur != nil && cur != &c.head {
		next := cur.next
		cur.next = nil
		cur.prev = nil
		cur = next
	}
}

// Release detaches all segments. It is the end of the chain's life.
func (c *Chain[T]) Release() {
	c.Clear()
}

// Place creates a segment holding v and links it before pos.
// The caller owns the returned segment.
func (c *Chain[T]) Place(pos Iterator[T], v T) *Segment[T] {
	s := NewSegment(v)
	c.Link(pos, s)
	return s
}

// PlaceWith creates a segment, initializes its value in place and links it before pos.
func (c *Chain[T]) PlaceWith(pos Iterator[T], init func(v *T)) *Segment[T] {
	s := NewSegmentWith(init)
	c.Link(pos, s)
	return s
}

// PlaceFront creates a segment holding v at the front of the chain.
func (c *Chain[T]) PlaceFront(v T) *Segment[T] {
	return c.Place(c.Begin(), v)
}

// PlaceBack creates a segment holding v at the back of the chain.
func (c *Chain[T]) PlaceBack(v T) *Segment[T] {
	return c.Place(c.End(), v)
}

// IteratorOf returns an iterator to s.
//
// It verifies that s is linked into c by walking the ring, which is O(n).
func (c *Chain[T]) IteratorOf(s *Segment[T]) Iterator[T] {
	assert.That(c.Contains(s), ErrNotMember, "cannot create an iterator to a segment that is not part of the chain")
	return Iterator[T]{cursor[T]{c: c, l: s.self()}}
}

// UncheckedIteratorOf returns an iterator to s without verifying that s is linked into c.
// The iterator is broken if it is not.
func (c *Chain[T]) UncheckedIteratorOf(s *Segment[T]) Iterator[T] {
	return Iterator[T]{cursor[T]{c: c, l: s.self()}}
}

// Contains reports whether s is linked into c.
//
// NOTE: This is an O(n) operation.
func (c *Chain[T]) Contains(s *Segment[T]) bool {
	if !s.IsLinked() {
		return false
	}

	head := c.init()
	for l := s.link.next; ; l = l.next {
		switch l {
		case &s.link:
			return false
		case head:
			return true
		}
	}
}

// Values returns the range of values.
func (c *Chain[T]) Values() iterrange.Range[Iterator[T], *T] {
	return iterrange.New[Iterator[T], *T](c.Begin(), c.End())
}

// ConstValues returns the range of value copies.
func (c *Chain[T]) ConstValues() iterrange.Range[ConstIterator[T], T] {
	return iterrange.New[ConstIterator[T], T](c.Begin().Const(), c.End().Const())
}

// Segments returns the range of segments.
func (c *Chain[T]) Segments() iterrange.Range[SegmentIterator[T], *Segment[T]] {
	return iterrange.New[SegmentIterator[T], *Segment[T]](c.Begin().Segments(), c.End().Segments())
}

// Links returns the range of raw links, excluding the sentinel.
func (c *Chain[T]) Links() iterrange.Range[LinkIterator[T], *Link[T]] {
	return iterrange.New[LinkIterator[T], *Link[T]](c.Begin().Links(), c.End().Links())
}

// All returns an iterator over the values from front to back.
// See AllSegments for the changes allowed during iteration.
func (c *Chain[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for s := range c.AllSegments() {
			if !yield(&s.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
// See AllSegments for the changes allowed during iteration.
func (c *Chain[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		head := c.init()
		for l := head.prev; l != head; {
			prev := l.prev
			if !yield(&l.seg.value) {
				return
			}
			l = c.resume(l, prev, l.prev)
		}
	}
}

// AllSegments returns an iterator over the segments from front to back.
//
// While a segment is yielded, the caller may unlink or release it and may
// unlink, release or link any other segment of the chain. Unlinking both the
// current segment and the one following it is a violation, clearing the chain
// ends the iteration.
func (c *Chain[T]) AllSegments() iter.Seq[*Segment[T]] {
	return func(yield func(*Segment[T]) bool) {
		head := c.init()
		for l := head.next; l != head; {
			next := l.next
			if !yield(l.seg) {
				return
			}
			l = c.resume(l, next, l.next)
		}
	}
}

// resume returns the link to visit after cur was yielded. saved is the
// neighbor of cur before the yield and now its neighbor after it.
func (c *Chain[T]) resume(cur, saved, now *Link[T]) *Link[T] {
	switch {
	case cur.next != nil:
		return now
	case c.Empty():
		return &c.head
	}

	assert.That(saved.next != nil, ErrNotLinked, "cannot continue iterating after unlinking the current and the following segment")

	return saved
}

// MoveFrom transfers all segments of src to c, in order. src becomes empty.
// Segments previously linked into c are detached.
func (c *Chain[T]) MoveFrom(src *Chain[T]) {
	if c == src {
		return
	}

	c.Clear()

	// An empty ring points at the old sentinel, there are no neighbors to fix.
	if src.Empty() {
		src.init()
		return
	}

	c.head.next = src.head.next
	c.head.prev = src.head.prev
	c.head.fixNeighbors()

	src.head.next = &src.head
	src.head.prev = &src.head
}

// Swap exchanges the segments of c and other.
func (c *Chain[T]) Swap(other *Chain[T]) {
	switch {
	case c == other:
	case c.Empty():
		c.MoveFrom(other)
	case other.Empty():
		other.MoveFrom(c)
	default:
		c.head.next, other.head.next = other.head.next, c.head.next
		c.head.prev, other.head.prev = other.head.prev, c.head.prev
		c.head.fixNeighbors()
		other.head.fixNeighbors()
	}
}
