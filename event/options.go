package event

import "github.com/sirupsen/logrus"

// Option is a bus configuration option.
type Option interface {
	apply(*busOptions)
}

type busOptions struct {
	logger logrus.FieldLogger
	topics []string
}

func newDefaultBusOptions() busOptions {
	return busOptions{
		logger: logrus.StandardLogger(),
	}
}

// WithLogger option configures the logger of the bus.
//
// The default is the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *busOptions) {
		if logger == nil {
			panic("event: nil logger")
		}
		opts.logger = logger
	})
}

// WithTopics option creates the named topics up front.
func WithTopics(names ...string) Option {
	return funcOption(func(opts *busOptions) {
		opts.topics = append(opts.topics, names...)
	})
}

type funcOption func(*busOptions)

func (o funcOption) apply(opts *busOptions) {
	o(opts)
}
