package system

import "github.com/rs/zerolog"

type options struct {
	observer Observer
	logger   zerolog.Logger
}

// Option configures a Resolver or JumpGate.
type Option func(*options)

// WithObserver registers the notification sink.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{observer: nopObserver{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
