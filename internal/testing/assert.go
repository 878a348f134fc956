package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/heapfree"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// PanicWithViolation succeeds if the function panics with a violation caused by err.
func PanicWithViolation(err error) types.GomegaMatcher {
	return PanicWith(And(
		BeAssignableToTypeOf(&heapfree.Violation{}),
		MatchError(err),
	))
}

// ExpectValidChain walks the ring of c in both directions and checks that
// every link points back at its neighbors and the walk ends at the sentinel.
func ExpectValidChain[T any](g *WithT, c *heapfree.Chain[T]) {
	head := c.End().Links().Get()
	n := c.Len()

	g.Expect(head.IsSentinel()).To(BeTrue())
	g.Expect(c.Empty()).To(Equal(n == 0))

	{
		l := head
		for i := 0; i <= n; i++ {
			g.Expect(l.IsLinked()).To(BeTrue())
			g.Expect(l.Next().Prev()).To(BeIdenticalTo(l))
			l = l.Next()
		}

		g.Expect(l).To(BeIdenticalTo(head))
	}

	{
		l := head
		for i := 0; i <= n; i++ {
			g.Expect(l.Prev().Next()).To(BeIdenticalTo(l))
			l = l.Prev()
		}

		g.Expect(l).To(BeIdenticalTo(head))
	}
}

// ExpectEmptyChain checks that c has no segments and its sentinel points at itself.
func ExpectEmptyChain[T any](g *WithT, c *heapfree.Chain[T]) {
	head := c.End().Links().Get()

	g.Expect(c.Len()).To(Equal(0))
	g.Expect(c.Empty()).To(BeTrue())
	g.Expect(c.Segments().Len()).To(Equal(0))
	g.Expect(c.Segments().Empty()).To(BeTrue())
	g.Expect(head.Next()).To(BeIdenticalTo(head))
	g.Expect(head.Prev()).To(BeIdenticalTo(head))
}

// Segments returns the segments of c in order.
func Segments[T any](c *heapfree.Chain[T]) []*heapfree.Segment[T] {
	var segs []*heapfree.Segment[T]
	for s := range c.AllSegments() {
		segs = append(segs, s)
	}
	return segs
}

// Values returns copies of the values of c in order.
func Values[T any](c *heapfree.Chain[T]) []T {
	var values []T
	for v := range c.All() {
		values = append(values, *v)
	}
	return values
}

// ExpectSegments checks that c links exactly segs, in order, by identity.
func ExpectSegments[T any](g *WithT, c *heapfree.Chain[T], segs ...*heapfree.Segment[T]) {
	got := Segments(c)

	g.Expect(got).To(HaveLen(len(segs)))
	for i, s := range segs {
		g.Expect(got[i]).To(BeIdenticalTo(s), "segment %d", i)
	}

	ExpectValidChain(g, c)
}
