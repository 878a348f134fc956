package main

import (
	"github.com/mgnsk/heapfree"
	"github.com/mgnsk/heapfree/event"
	"github.com/sirupsen/logrus"
)

type point struct {
	X, Y int
}

func main() {
	log := logrus.New()

	// Contract violations are logged before the process exits.
	restore := heapfree.SetAbortFunc(heapfree.LogAndExit(log))
	defer restore()

	// Segments live on the stack of main. The chain only links them.
	var (
		c       heapfree.Chain[int]
		a, b, d heapfree.Segment[int]
	)

	a.Set(42)
	b.Set(5)
	d.Set(13)

	c.LinkBack(&a)
	c.LinkBack(&b)
	c.LinkBack(&d)
	defer c.Release()

	log.WithField("value", *c.At(1)).Info("second element")

	*c.At(1) = 10

	for v := range c.All() {
		log.WithField("value", *v).Info("element")
	}

	var moved event.Event[point]

	l := moved.On(func(p point) {
		log.WithFields(logrus.Fields{
			"x": p.X,
			"y": p.Y,
		}).Info("moved")
	})
	defer l.Release()

	if err := moved.Fire(point{X: 1, Y: 2}); err != nil {
		log.WithError(err).Error("firing event")
	}
}
