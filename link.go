package heapfree

// Link is the pair of ring pointers embedded in every segment.
// A chain's sentinel is a Link too.
//
// Both pointers are nil while the link is unlinked. While linked,
// l.next.prev == l and l.prev.next == l.
type Link[T any] struct {
	next, prev *Link[T]
	// seg is the owning segment or nil for a sentinel.
	seg *Segment[T]
}

// Next returns the following link or nil if l is unlinked.
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

// Prev returns the preceding link or nil if l is unlinked.
func (l *Link[T]) Prev() *Link[T] {
	return l.prev
}

// Segment returns the segment embedding l or nil for a sentinel.
func (l *Link[T]) Segment() *Segment[T] {
	return l.seg
}

// IsLinked reports whether l is part of a ring.
func (l *Link[T]) IsLinked() bool {
	return l.next != nil
}

// IsSentinel reports whether l is the header of a chain.
func (l *Link[T]) IsSentinel() bool {
	return l.seg == nil
}

// insertBefore links the unlinked l between mark.prev and mark.
func (l *Link[T]) insertBefore(mark *Link[T]) {
	p := mark.prev
	l.prev = p
	l.next = mark
	mark.prev = l
	p.next = l
}

// unlink repairs the neighbors and clears l.
func (l *Link[T]) unlink() {
	l.next.prev = l.prev
	l.prev.next = l.next
	l.next = nil
	l.prev = nil
}

// fixNeighbors points the neighbors of l back at l after l's memory changed.
// It must not be called on an empty sentinel.
func (l *Link[T]) fixNeighbors() {
	l.next.prev = l
	l.prev.next = l
}
