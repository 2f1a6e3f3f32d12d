package lockbox

import (
	"context"

	"github.com/lumetric/lockbox-go/internal/client"
)

// clientWrapper adapts the internal client to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

func newClientImpl(opts []Option) Client {
	return &clientWrapper{impl: client.New(applyOptions(opts))}
}

// Connect dials the instrument and brings the session up.
func (c *clientWrapper) Connect(ctx context.Context) error {
	return c.impl.Connect(ctx)
}

// Disconnect closes the session.
func (c *clientWrapper) Disconnect() error {
	return c.impl.Disconnect()
}

// Close is Disconnect under the name defer expects.
func (c *clientWrapper) Close() error {
	return c.impl.Disconnect()
}

// IsConnected reports whether the session is up.
func (c *clientWrapper) IsConnected() bool {
	return c.impl.IsConnected()
}

// Send writes a directive without waiting for a reply.
func (c *clientWrapper) Send(command string) error {
	return c.impl.Send(command)
}

// Query writes a query and returns the trimmed reply value.
func (c *clientWrapper) Query(command string) (string, error) {
	return c.impl.Query(command)
}

// QueryNumeric is Query plus scalar decoding.
func (c *clientWrapper) QueryNumeric(command string) (float64, error) {
	return c.impl.QueryNumeric(command)
}

// QueryWaveform is Query plus waveform decoding.
func (c *clientWrapper) QueryWaveform(command string, channel, length int) ([]float64, error) {
	return c.impl.QueryWaveform(command, channel, length)
}
