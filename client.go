package lockbox

import (
	"context"
)

// Client is a session with one LockBox instrument.
//
// A client is created disconnected; Connect brings the session up and Close
// or Disconnect tears it down. Unlike a raw socket, a client survives its
// session: after Disconnect it may be connected again, which is also the
// recovery path for a dropped connection.
//
// All operations are safe for concurrent use. The RCI cannot multiplex, so
// concurrent calls serialize: each blocks until the in-flight exchange
// completes.
type Client interface {
	// Connect dials the instrument, drains its greeting banner, and brings
	// the session up. Fails with *ConnectionError on a refused, unreachable,
	// or timed-out dial, and with ErrAlreadyConnected on a live session.
	Connect(ctx context.Context) error

	// Disconnect closes the session. Idempotent: disconnecting an already
	// disconnected client is a no-op, not an error.
	Disconnect() error

	// Close is Disconnect under the name defer expects. Use it to guarantee
	// the socket is released on every exit path.
	Close() error

	// IsConnected reports whether the session is up.
	IsConnected() bool

	// Send writes a directive without waiting for a reply.
	// Fails with ErrNotConnected (no I/O attempted) or *WriteError.
	Send(command string) error

	// Query writes a query and returns the trimmed reply value: the text
	// after "=" on the first delimiter-bearing line of the reply burst. A
	// burst without such a line yields "" and a nil error. I/O failures and
	// a silent instrument surface as *QueryError.
	Query(command string) (string, error)

	// QueryNumeric is Query plus scalar decoding, including SI magnitude
	// suffixes. An empty or undecodable reply fails with
	// *InvalidResponseError.
	QueryNumeric(command string) (float64, error)

	// QueryWaveform is Query plus waveform decoding: channel (1-based)
	// selects one of the interleaved acquisition channels, and the result
	// always has exactly length samples (zero-padded or truncated). A reply
	// without samples is retried exactly once; a second failure yields the
	// all-zero buffer.
	QueryWaveform(command string, channel, length int) ([]float64, error)
}

// NewClient creates a disconnected client.
//
//	client := lockbox.NewClient(
//	    lockbox.WithHost("10.0.0.5"),
//	    lockbox.WithLogger(slog.Default()),
//	)
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(opts ...Option) Client {
	return newClientImpl(opts)
}

// Dial creates a client and connects it in one call.
func Dial(ctx context.Context, opts ...Option) (Client, error) {
	client := NewClient(opts...)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}
