package heapfree

import (
	"github.com/mgnsk/heapfree/internal/assert"
	"github.com/mgnsk/heapfree/iterrange"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Causes of contract violations, matched with errors.Is against the Violation.
var (
	// ErrAlreadyLinked indicates linking a segment that is part of a chain.
	ErrAlreadyLinked = errors.New("segment already linked")
	// ErrNotLinked indicates using a segment as if it were linked.
	ErrNotLinked = errors.New("segment not linked")
	// ErrForeignChain indicates using an iterator with a chain it does not belong to.
	ErrForeignChain = errors.New("iterator of another chain")
	// ErrNotMember indicates creating an iterator over a segment that is not in the chain.
	ErrNotMember = errors.New("segment not in chain")
	// ErrPastEnd indicates dereferencing or advancing the end iterator.
	ErrPastEnd = errors.New("iterator past end")
	// ErrBeforeBegin indicates decrementing the begin iterator.
	ErrBeforeBegin = errors.New("iterator before begin")
	// ErrNullIterator indicates using the zero iterator.
	ErrNullIterator = errors.New("null iterator")
	// ErrEmpty indicates accessing the front or back of an empty chain.
	ErrEmpty = errors.New("chain is empty")
	// ErrOutOfRange indicates an index past the last element.
	ErrOutOfRange = iterrange.ErrOutOfRange
)

// Violation is a broken contract. The abort path receives it.
type Violation = assert.Violation

// AbortFunc handles a violation. It must not return normally.
type AbortFunc = assert.AbortFunc

// SetAbortFunc replaces the abort path and returns a function restoring the previous one.
//
// The default abort path panics with the *Violation.
func SetAbortFunc(f AbortFunc) (restore func()) {
	return assert.SetAbortFunc(f)
}

// LogAndExit returns an AbortFunc that logs the violation and terminates the process.
func LogAndExit(logger logrus.FieldLogger) AbortFunc {
	return func(v *Violation) {
		logger.WithFields(logrus.Fields{
			"file":  v.File,
			"line":  v.Line,
			"cause": v.Err,
		}).Fatal(v.Msg)
	}
}
