package binding

import (
	"time"

	"github.com/vortex-fintech/go-brmask/logger"
	"github.com/vortex-fintech/go-brmask/timeutil"
)

// DefaultPasteDelay is how long a paste waits before the field is re-checked.
const DefaultPasteDelay = 10 * time.Millisecond

type Options struct {
	Logger     logger.LoggerInterface
	Metrics    Metrics
	Clock      timeutil.Clock
	PasteDelay time.Duration
}

type Option func(*Options)

func WithLogger(l logger.LoggerInterface) Option {
	return func(o *Options) { o.Logger = l }
}
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
func WithClock(c timeutil.Clock) Option {
	return func(o *Options) { o.Clock = c }
}
func WithPasteDelay(d time.Duration) Option {
	return func(o *Options) { o.PasteDelay = d }
}

func buildOptions(opts []Option) Options {
	o := Options{PasteDelay: DefaultPasteDelay}
	for _, f := range opts {
		if f != nil {
			f(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Metrics == nil {
		o.Metrics = nopMetrics{}
	}
	if o.Clock == nil {
		o.Clock = timeutil.UTCClock{}
	}
	if o.PasteDelay < 0 {
		o.PasteDelay = 0
	}
	return o
}
