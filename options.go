package lockbox

import (
	"log/slog"
	"time"

	"github.com/lumetric/lockbox-go/internal/config"
)

// Option configures a client using the functional options pattern.
type Option func(*config.Options)

// applyOptions builds the internal options from functional options.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithHost sets the instrument's hostname or IP address.
func WithHost(host string) Option {
	return func(o *config.Options) {
		o.Host = host
	}
}

// WithPort sets the instrument's RCI port.
// The default is 1998, the port LockBox instruments listen on.
func WithPort(port int) Option {
	return func(o *config.Options) {
		o.Port = port
	}
}

// WithDialTimeout bounds the TCP connect attempt.
func WithDialTimeout(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.DialTimeout = timeout
	}
}

// WithReadTimeout bounds how long a query waits for the first reply byte.
// A silent instrument fails with *QueryError after this long instead of
// hanging.
func WithReadTimeout(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.ReadTimeout = timeout
	}
}

// WithSettleDelay sets the wait between writing a query and reading its
// reply. The protocol has no acknowledgement; this delay is what correlates
// replies with queries. The default is tuned for a LockBox on a quiet LAN.
func WithSettleDelay(delay time.Duration) Option {
	return func(o *config.Options) {
		o.SettleDelay = delay
	}
}

// WithRetryDelay sets the extra wait before the single automatic waveform
// retry.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *config.Options) {
		o.RetryDelay = delay
	}
}

// WithPollWindow sets the quiet period that ends a reply drain. Larger
// values tolerate replies that dribble in; smaller values make queries
// snappier.
func WithPollWindow(window time.Duration) Option {
	return func(o *config.Options) {
		o.PollWindow = window
	}
}

// WithChannelCount sets the number of interleaved channels in waveform
// replies. The scope and spectrum subsystems of the LockBox interleave two,
// which is the default.
func WithChannelCount(n int) Option {
	return func(o *config.Options) {
		o.ChannelCount = n
	}
}
