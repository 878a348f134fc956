/*
Package event dispatches calls to listeners stored in a heapfree chain.

Each listener is a segment owned by the caller. Registering links it into the
event's chain, releasing it unregisters it:

	var ev event.Event[Point]

	l := ev.On(func(p Point) {
		fmt.Println(p.X, p.Y)
	})
	defer l.Release()

	if err := ev.Fire(Point{1, 2}); err != nil {
		// No listeners.
	}

Methods are bound by registering a closure over the receiver.
*/
package event

import (
	"github.com/mgnsk/heapfree"
	"github.com/pkg/errors"
)

// ErrNoListeners is returned when an event is fired without listeners.
var ErrNoListeners = errors.New("no listeners")

// Listener is a registered event handler.
// The listener stays registered until it is released or unlinked.
type Listener[A any] = heapfree.Segment[func(A)]

// Event holds a chain of listeners receiving an argument of type A.
// Use a struct for A to pass several values.
//
// The zero value is an event without listeners.
// An Event is not safe for concurrent use, see Queue.
type Event[A any] struct {
	listeners heapfree.Chain[func(A)]
}

// On registers fn as the last listener.
func (e *Event[A]) On(fn func(A)) *Listener[A] {
	return e.listeners.PlaceBack(fn)
}

// Attach links an existing unlinked listener as the last listener.
func (e *Event[A]) Attach(l *Listener[A]) {
	e.listeners.LinkBack(l)
}

// TryFire calls every listener in registration order and reports whether there were any.
// A listener may release itself or other listeners while being called,
// but not itself together with the listener registered right after it.
func (e *Event[A]) TryFire(arg A) bool {
	fired := false
	for l := range e.listeners.AllSegments() {
		fired = true
		l.Get()(arg)
	}
	return fired
}

// Fire calls every listener in registration order.
// It returns ErrNoListeners if there were none.
func (e *Event[A]) Fire(arg A) error {
	if !e.TryFire(arg) {
		return errors.WithStack(ErrNoListeners)
	}
	return nil
}

// Len returns the number of listeners.
func (e *Event[A]) Len() int {
	return e.listeners.Len()
}

// Empty reports whether there are no listeners.
func (e *Event[A]) Empty() bool {
	return e.listeners.Empty()
}

// Clear unregisters all listeners.
func (e *Event[A]) Clear() {
	e.listeners.Clear()
}

// MoveFrom takes over all listeners of src.
func (e *Event[A]) MoveFrom(src *Event[A]) {
	e.listeners.MoveFrom(&src.listeners)
}

// Swap exchanges the listeners of e and other.
func (e *Event[A]) Swap(other *Event[A]) {
	e.listeners.Swap(&other.listeners)
}
