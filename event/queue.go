package event

import (
	"sync"
)

// Queue is an Event guarded by a lock.
//
// Listeners are called with the read lock held, so they must not register
// or unregister listeners on the same queue.
//
// The zero value is an empty queue ready for use.
type Queue[A any] struct {
	mu sync.RWMutex
	ev Event[A]
}

// Register adds fn as the last listener.
func (q *Queue[A]) Register(fn func(A)) *Listener[A] {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.ev.On(fn)
}

// Unregister removes a listener previously returned by Register.
func (q *Queue[A]) Unregister(l *Listener[A]) {
	q.mu.Lock()
	defer q.mu.Unlock()

	l.Unlink()
}

// Notify calls every listener in registration order.
// It returns ErrNoListeners if there were none.
func (q *Queue[A]) Notify(arg A) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.ev.Fire(arg)
}

// TryNotify calls every listener in registration order and reports whether there were any.
func (q *Queue[A]) TryNotify(arg A) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.ev.TryFire(arg)
}

// Len returns the number of listeners.
func (q *Queue[A]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.ev.Len()
}

// IsEmpty reports whether the queue has no listeners.
func (q *Queue[A]) IsEmpty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.ev.Empty()
}

// Clear unregisters all listeners.
func (q *Queue[A]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.ev.Clear()
}
