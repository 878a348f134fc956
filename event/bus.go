package event

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

// Bus is a set of named queues. It is safe for concurrent use.
type Bus[A any] struct {
	topics *xsync.MapOf[string, *Queue[A]]
	logger logrus.FieldLogger
}

// NewBus creates a bus.
func NewBus[A any](opts ...Option) *Bus[A] {
	o := newDefaultBusOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	b := &Bus[A]{
		topics: xsync.NewMapOf[*Queue[A]](),
		logger: o.logger,
	}

	for _, name := range o.topics {
		b.Topic(name)
	}

	return b
}

// Topic returns the queue of the named topic, creating it if needed.
func (b *Bus[A]) Topic(name string) *Queue[A] {
	q, _ := b.topics.LoadOrCompute(name, func() *Queue[A] {
		return &Queue[A]{}
	})
	return q
}

// Subscribe registers fn on the named topic.
func (b *Bus[A]) Subscribe(name string, fn func(A)) *Subscription[A] {
	q := b.Topic(name)
	return &Subscription[A]{
		queue:    q,
		listener: q.Register(fn),
	}
}

// Publish notifies the listeners of the named topic.
// It returns an error wrapping ErrNoListeners if the topic does not exist or has no listeners.
func (b *Bus[A]) Publish(name string, arg A) error {
	q, ok := b.topics.Load(name)
	if !ok {
		return errors.Wrapf(ErrNoListeners, "topic %q does not exist", name)
	}

	if err := q.Notify(arg); err != nil {
		return errors.Wrapf(err, "topic %q", name)
	}

	return nil
}

// TryPublish notifies the listeners of the named topic and reports whether there were any.
func (b *Bus[A]) TryPublish(name string, arg A) bool {
	if q, ok := b.topics.Load(name); ok && q.TryNotify(arg) {
		return true
	}

	b.logger.WithField("topic", name).Debug("published without listeners")

	return false
}

// Remove deletes the named topic and unregisters its listeners.
func (b *Bus[A]) Remove(name string) bool {
	q, ok := b.topics.LoadAndDelete(name)
	if !ok {
		return false
	}

	n := q.Len()
	q.Clear()

	b.logger.WithFields(logrus.Fields{
		"topic":     name,
		"listeners": n,
	}).Info("topic removed")

	return true
}

// Topics returns the sorted names of all topics.
func (b *Bus[A]) Topics() []string {
	names := make([]string, 0, b.topics.Size())
	b.topics.Range(func(name string, _ *Queue[A]) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Subscription is a listener registered on a bus topic.
type Subscription[A any] struct {
	queue    *Queue[A]
	listener *Listener[A]
}

// Close unregisters the listener. It is safe to call more than once
// and after the topic was removed.
func (s *Subscription[A]) Close() error {
	s.queue.mu.Lock()
	defer s.queue.mu.Unlock()

	s.listener.Release()

	return nil
}
