package heapfree

import "github.com/mgnsk/heapfree/internal/assert"

// Segment stores one value of a chain and the link that ties it into the chain's ring.
//
// The caller owns the segment's memory: it may live on the stack, in a global or
// embedded in another struct. A chain only rewires links, it never allocates segments.
//
// The zero value is an unlinked segment holding the zero value of T.
// A segment must not be copied after first use, use CopyFrom, Clone or MoveFrom instead.
type Segment[T any] struct {
	noCopy noCopy
	link   Link[T]
	value  T
}

// NewSegment creates an unlinked segment holding v.
func NewSegment[T any](v T) *Segment[T] {
	return &Segment[T]{value: v}
}

// NewSegmentWith creates an unlinked segment and initializes its value in place.
func NewSegmentWith[T any](init func(v *T)) *Segment[T] {
	s := &Segment[T]{}
	init(&s.value)
	return s
}

// Value returns a pointer to the stored value.
func (s *Segment[T]) Value() *T {
	return &s.value
}

// Get returns a copy of the stored value.
func (s *Segment[T]) Get() T {
	return s.value
}

// Set replaces the stored value. The link state is unchanged.
func (s *Segment[T]) Set(v T) {
	s.value = v
}

// IsLinked reports whether s is part of some chain.
func (s *Segment[T]) IsLinked() bool {
	return s.link.next != nil
}

// Link returns the raw link of s.
func (s *Segment[T]) Link() *Link[T] {
	return s.self()
}

// Unlink removes s from its chain.
func (s *Segment[T]) Unlink() {
	assert.That(s.IsLinked(), ErrNotLinked, "cannot unlink a segment that is not linked")
	s.link.unlink()
}

// Clone returns a new unlinked segment holding a copy of the value.
func (s *Segment[T]) Clone() *Segment[T] {
	return &Segment[T]{value: s.value}
}

// CopyFrom copies the value of src into s.
// Neither segment's link state changes.
func (s *Segment[T]) CopyFrom(src *Segment[T]) {
	s.value = src.value
}

// MoveFrom moves both the value and the ring position of src into s.
//
// If s is linked, it is unlinked first. Afterwards s sits exactly where src was
// and src is unlinked and holds the zero value.
func (s *Segment[T]) MoveFrom(src *Segment[T]) {
	if s == src {
		return
	}

	if s.IsLinked() {
		s.link.unlink()
	}

	s.value = src.value
	var zero T
	src.value = zero

	if !src.IsLinked() {
		return
	}

	l := s.self()
	l.next = src.link.next
	l.prev = src.link.prev
	src.link.next = nil
	src.link.prev = nil
	l.fixNeighbors()
}

// Move returns a new segment that took over the value and ring position of s.
func (s *Segment[T]) Move() *Segment[T] {
	dst := &Segment[T]{}
	dst.MoveFrom(s)
	return dst
}

// Swap exchanges the values and ring positions of s and other.
// The neighbors of both segments are repaired, including when s and other are adjacent.
func (s *Segment[T]) Swap(other *Segment[T]) {
	if s == other {
		return
	}

	var tmp Segment[T]
	tmp.MoveFrom(s)
	s.MoveFrom(other)
	other.MoveFrom(&tmp)
}

// Release ends the life of s: it is unlinked if linked and its value is reset.
func (s *Segment[T]) Release() {
	if s.IsLinked() {
		s.link.unlink()
	}
	var zero T
	s.value = zero
}

func (s *Segment[T]) self() *Link[T] {
	s.link.seg = s
	return &s.link
}

// noCopy lets go vet's copylocks check flag segments and chains copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
