// Package config defines the configuration surface for the lockbox client.
//
// Options are populated through the functional options declared in the root
// package and passed down at Connect time. Timing values default to the
// empirically chosen latencies of the instrument; they are configuration
// rather than constants because the protocol gives no response-time
// guarantee.
package config

import (
	"log/slog"
	"time"
)

// Default timing values, tuned against the physical instrument.
const (
	// DefaultDialTimeout bounds the TCP connect.
	DefaultDialTimeout = 5 * time.Second

	// DefaultReadTimeout bounds a single blocking read on the stream.
	DefaultReadTimeout = 2 * time.Second

	// DefaultSettleDelay is the wait between writing a query and reading the
	// reply. The protocol has no acknowledgement; this is the only
	// correlation mechanism available.
	DefaultSettleDelay = 200 * time.Millisecond

	// DefaultRetryDelay is the extra wait before the single waveform retry.
	DefaultRetryDelay = 300 * time.Millisecond

	// DefaultPollWindow is how long a drain keeps reading once bytes stop
	// arriving.
	DefaultPollWindow = 50 * time.Millisecond

	// DefaultChannelCount is the number of interleaved channels in bulk
	// waveform replies. The scope and spectrum subsystems of this instrument
	// always interleave two.
	DefaultChannelCount = 2
)

// DefaultPort is the instrument's RCI listening port.
const DefaultPort = 1998

// Options configures the behavior of the lockbox client.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Host is the instrument's hostname or IP address.
	Host string

	// Port is the instrument's RCI port. Zero means DefaultPort.
	Port int

	// DialTimeout bounds the TCP connect attempt.
	DialTimeout time.Duration

	// ReadTimeout bounds a single blocking read; a query that never produces
	// a reply surfaces as a QueryError instead of hanging.
	ReadTimeout time.Duration

	// SettleDelay is the wait inserted after writing a query before the
	// reply drain starts.
	SettleDelay time.Duration

	// RetryDelay is the additional wait before the one automatic waveform
	// retry.
	RetryDelay time.Duration

	// PollWindow is the quiet period that ends a reply drain.
	PollWindow time.Duration

	// ChannelCount is the number of interleaved channels in waveform
	// replies. Zero means DefaultChannelCount.
	ChannelCount int
}

// Normalize fills zero-valued fields with defaults.
func (o *Options) Normalize() {
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.DialTimeout == 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = DefaultReadTimeout
	}
	if o.SettleDelay == 0 {
		o.SettleDelay = DefaultSettleDelay
	}
	if o.RetryDelay == 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	if o.PollWindow == 0 {
		o.PollWindow = DefaultPollWindow
	}
	if o.ChannelCount == 0 {
		o.ChannelCount = DefaultChannelCount
	}
}
