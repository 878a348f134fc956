package heapfree

import "github.com/mgnsk/heapfree/internal/assert"

// cursor is the traversal shared by all iterator modes.
// It tracks a link, not a position, so it survives relinking of its segment.
type cursor[T any] struct {
	c *Chain[T]
	l *Link[T]
}

func (p cursor[T]) check(op string) {
	assert.That(p.c != nil && p.l != nil, ErrNullIterator, "cannot ", op, " a null chain iterator")
}

func (p cursor[T]) isEnd() bool {
	p.check("compare")
	return p.l == &p.c.head
}

func (p cursor[T]) next() cursor[T] {
	p.check("increment")
	assert.That(!p.isEnd(), ErrPastEnd, "cannot increment the end iterator")
	assert.That(p.l.next != nil, ErrNotLinked, "cannot increment an iterator to an unlinked segment")
	return cursor[T]{c: p.c, l: p.l.next}
}

func (p cursor[T]) prev() cursor[T] {
	p.check("decrement")
	assert.That(p.l.prev != nil, ErrNotLinked, "cannot decrement an iterator to an unlinked segment")
	assert.That(p.l.prev != &p.c.head, ErrBeforeBegin, "cannot decrement the begin iterator")
	return cursor[T]{c: p.c, l: p.l.prev}
}

func (p cursor[T]) segment() *Segment[T] {
	p.check("dereference")
	assert.That(!p.isEnd(), ErrPastEnd, "cannot dereference the end iterator")
	return p.l.seg
}

func (p cursor[T]) link() *Link[T] {
	p.check("dereference")
	return p.l
}

// Iterator is a bidirectional cursor over the values of a chain.
//
// It stays valid as long as its segment exists and is part of the chain.
// Unlinking the segment and linking it back into the same chain revalidates it.
// The zero value is a null iterator, equal only to other null iterators.
type Iterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following element or the end.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.next()}
}

// Prev returns an iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{it.prev()}
}

// Equal reports whether both iterators refer to the same link of the same chain.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.cursor == o.cursor
}

// IsEnd reports whether it is the end iterator of its chain.
func (it Iterator[T]) IsEnd() bool {
	return it.isEnd()
}

// IsNull reports whether it is the zero iterator.
func (it Iterator[T]) IsNull() bool {
	return it.c == nil
}

// Get returns a pointer to the value.
func (it Iterator[T]) Get() *T {
	return it.Value()
}

// Value returns a pointer to the value.
func (it Iterator[T]) Value() *T {
	return &it.segment().value
}

// Segment returns the segment it points at.
func (it Iterator[T]) Segment() *Segment[T] {
	return it.segment()
}

// Const returns a read-only iterator to the same element.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{p: it.cursor}
}

// Segments returns a segment iterator to the same element.
func (it Iterator[T]) Segments() SegmentIterator[T] {
	return SegmentIterator[T](it)
}

// Links returns a raw link iterator to the same element.
func (it Iterator[T]) Links() LinkIterator[T] {
	return LinkIterator[T](it)
}

// ConstIterator is an Iterator that hands out copies of values.
// An Iterator converts to a ConstIterator with Const, never the other way round:
// the cursor is a named field so the two types do not share a layout.
type ConstIterator[T any] struct {
	p cursor[T]
}

// Next returns an iterator to the following element or the end.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it.p.next()}
}

// Prev returns an iterator to the preceding element.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{it.p.prev()}
}

// Equal reports whether both iterators refer to the same link of the same chain.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return it.p == o.p
}

// IsEnd reports whether it is the end iterator of its chain.
func (it ConstIterator[T]) IsEnd() bool {
	return it.p.isEnd()
}

// IsNull reports whether it is the zero iterator.
func (it ConstIterator[T]) IsNull() bool {
	return it.p.c == nil
}

// Get returns a copy of the value.
func (it ConstIterator[T]) Get() T {
	return it.p.segment().value
}

// SegmentIterator is a cursor over the segments of a chain.
type SegmentIterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following segment or the end.
func (it SegmentIterator[T]) Next() SegmentIterator[T] {
	return SegmentIterator[T]{it.next()}
}

// Prev returns an iterator to the preceding segment.
func (it SegmentIterator[T]) Prev() SegmentIterator[T] {
	return SegmentIterator[T]{it.prev()}
}

// Equal reports whether both iterators refer to the same link of the same chain.
func (it SegmentIterator[T]) Equal(o SegmentIterator[T]) bool {
	return it.cursor == o.cursor
}

// IsEnd reports whether it is the end iterator of its chain.
func (it SegmentIterator[T]) IsEnd() bool {
	return it.isEnd()
}

// IsNull reports whether it is the zero iterator.
func (it SegmentIterator[T]) IsNull() bool {
	return it.c == nil
}

// Get returns the segment.
func (it SegmentIterator[T]) Get() *Segment[T] {
	return it.segment()
}

// Value returns a pointer to the value of the segment.
func (it SegmentIterator[T]) Value() *T {
	return &it.segment().value
}

// Values returns a value iterator to the same element.
func (it SegmentIterator[T]) Values() Iterator[T] {
	return Iterator[T](it)
}

// LinkIterator is a cursor over the raw links of a chain.
// Unlike the other modes it may dereference the end, yielding the sentinel.
type LinkIterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following link.
func (it LinkIterator[T]) Next() LinkIterator[T] {
	return LinkIterator[T]{it.next()}
}

// Prev returns an iterator to the preceding link.
func (it LinkIterator[T]) Prev() LinkIterator[T] {
	return LinkIterator[T]{it.prev()}
}

// Equal reports whether both iterators refer to the same link of the same chain.
func (it LinkIterator[T]) Equal(o LinkIterator[T]) bool {
	return it.cursor == o.cursor
}

// IsEnd reports whether it points at the chain's sentinel.
func (it LinkIterator[T]) IsEnd() bool {
	return it.isEnd()
}

// IsNull reports whether it is the zero iterator.
func (it LinkIterator[T]) IsNull() bool {
	return it.c == nil
}

// Get returns the link.
func (it LinkIterator[T]) Get() *Link[T] {
	return it.link()
}
