package event_test

import (
	"sync/atomic"

	"github.com/mgnsk/heapfree/event"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/sync/errgroup"
)

var _ = Describe("publishing on a bus", func() {
	var (
		bus  *event.Bus[string]
		hook *test.Hook
	)

	BeforeEach(func() {
		var logger *logrus.Logger
		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		bus = event.NewBus[string](
			event.WithLogger(logger),
			event.WithTopics("orders", "audit"),
		)
	})

	Specify("preset topics exist", func() {
		Expect(bus.Topics()).To(Equal([]string{"audit", "orders"}))
		Expect(bus.Topic("orders").IsEmpty()).To(BeTrue())
	})

	When("topic has subscribers", func() {
		var got []string

		BeforeEach(func() {
			got = nil
			bus.Subscribe("orders", func(s string) { got = append(got, "first:"+s) })
			bus.Subscribe("orders", func(s string) { got = append(got, "second:"+s) })
		})

		Specify("they are called in subscription order", func() {
			Expect(bus.Publish("orders", "x")).To(Succeed())
			Expect(got).To(Equal([]string{"first:x", "second:x"}))
		})

		Specify("a closed subscription is skipped", func() {
			sub := bus.Subscribe("orders", func(s string) { got = append(got, "third:"+s) })
			Expect(sub.Close()).To(Succeed())
			Expect(sub.Close()).To(Succeed())

			Expect(bus.TryPublish("orders", "y")).To(BeTrue())
			Expect(got).To(Equal([]string{"first:y", "second:y"}))
		})

		Specify("removing the topic unregisters them", func() {
			sub := bus.Subscribe("orders", func(string) {})

			Expect(bus.Remove("orders")).To(BeTrue())
			Expect(bus.Remove("orders")).To(BeFalse())
			Expect(bus.Topics()).To(Equal([]string{"audit"}))
			Expect(sub.Close()).To(Succeed())

			entry := hook.LastEntry()
			Expect(entry.Level).To(Equal(logrus.InfoLevel))
			Expect(entry.Data).To(HaveKeyWithValue("topic", "orders"))
			Expect(entry.Data).To(HaveKeyWithValue("listeners", 3))
		})
	})

	When("topic has no subscribers", func() {
		Specify("Publish fails", func() {
			err := bus.Publish("audit", "x")
			Expect(err).To(MatchError(event.ErrNoListeners))
			Expect(err.Error()).To(Equal(`topic "audit": no listeners`))
		})

		Specify("TryPublish logs at debug level", func() {
			Expect(bus.TryPublish("audit", "x")).To(BeFalse())

			entry := hook.LastEntry()
			Expect(entry).NotTo(BeNil())
			Expect(entry.Level).To(Equal(logrus.DebugLevel))
			Expect(entry.Data).To(HaveKeyWithValue("topic", "audit"))
		})
	})

	DescribeTable("publishing to a missing topic",
		func(publish func(*event.Bus[string]) error) {
			err := publish(bus)
			Expect(err).To(MatchError(event.ErrNoListeners))
			Expect(bus.Topics()).NotTo(ContainElement("missing"))
		},
		Entry("Publish", func(b *event.Bus[string]) error {
			return b.Publish("missing", "x")
		}),
		Entry("TryPublish", func(b *event.Bus[string]) error {
			if !b.TryPublish("missing", "x") {
				return event.ErrNoListeners
			}
			return nil
		}),
	)
})

var _ = Describe("concurrent use of a bus", func() {
	Specify("subscribers and publishers do not race", func() {
		bus := event.NewBus[int]()

		var (
			total atomic.Int64
			eg    errgroup.Group
		)

		const n = 8

		for i := range n {
			eg.Go(func() error {
				sub := bus.Subscribe("numbers", func(v int) { total.Add(int64(v)) })
				if i%2 == 0 {
					return sub.Close()
				}
				return nil
			})
		}
		Expect(eg.Wait()).To(Succeed())
		Expect(bus.Topic("numbers").Len()).To(Equal(n / 2))

		for range n {
			eg.Go(func() error {
				return bus.Publish("numbers", 1)
			})
		}
		Expect(eg.Wait()).To(Succeed())
		Expect(total.Load()).To(Equal(int64(n * n / 2)))
	})
})
