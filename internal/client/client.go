package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/lumetric/lockbox-go/internal/config"
	"github.com/lumetric/lockbox-go/internal/errors"
	"github.com/lumetric/lockbox-go/internal/protocol"
	"github.com/lumetric/lockbox-go/internal/transport"
)

// State is the session lifecycle state.
type State int

const (
	// StateDisconnected means no stream is open.
	StateDisconnected State = iota
	// StateConnecting means a dial is in progress.
	StateConnecting
	// StateConnected means the channel is live.
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Client owns the transport and the command channel for one instrument.
//
// The transport is held exclusively: every exchange goes through the
// channel, and the channel exists only between Connect and Disconnect. A
// disconnected client may be connected again.
type Client struct {
	log  *slog.Logger
	opts *config.Options

	mu      sync.RWMutex
	state   State
	conn    *transport.Conn
	channel *protocol.Channel
}

// New creates a disconnected client. Options are normalized here; a nil
// logger disables logging.
func New(opts *config.Options) *Client {
	opts.Normalize()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}

	return &Client{
		log:  log.With("component", "session"),
		opts: opts,
	}
}

// Connect dials the instrument and brings the session up.
//
// Any bytes the instrument volunteers within the settle window (the greeting
// banner it emits on attach) are discarded before the first real command.
// A refused, unreachable, or timed-out dial yields a ConnectionError; the
// caller decides whether to retry.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDisconnected {
		return errors.ErrAlreadyConnected
	}
	if c.opts.Host == "" {
		return &errors.ConnectionError{Addr: "", Err: fmt.Errorf("no host configured")}
	}

	addr := net.JoinHostPort(c.opts.Host, strconv.Itoa(c.opts.Port))
	c.state = StateConnecting
	c.log.Debug("connecting", "addr", addr)

	conn, err := transport.Dial(ctx, addr, c.opts.DialTimeout)
	if err != nil {
		c.state = StateDisconnected
		return &errors.ConnectionError{Addr: addr, Err: err}
	}

	// Greeting banner drain. Failure here means the stream died underneath
	// us before the first command; treat it as a failed connect.
	discarded, err := conn.Drain(c.opts.SettleDelay)
	if err != nil {
		conn.Close()
		c.state = StateDisconnected
		return &errors.ConnectionError{Addr: addr, Err: fmt.Errorf("banner drain: %w", err)}
	}

	sessionID := ulid.Make().String()
	log := c.log.With("session_id", sessionID)

	c.conn = conn
	c.channel = protocol.NewChannel(conn, c.opts, log)
	c.state = StateConnected

	log.Info("connected", "addr", addr, "banner_bytes", discarded)
	return nil
}

// Disconnect closes the session. Idempotent: calling it on an already
// disconnected client is a no-op, not an error.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	c.channel = nil
	c.state = StateDisconnected

	c.log.Info("disconnected")
	return err
}

// IsConnected reports whether the session is up.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateConnected
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Send writes a directive. Fails fast with ErrNotConnected while the session
// is down; no I/O is attempted.
func (c *Client) Send(command string) error {
	ch, err := c.liveChannel()
	if err != nil {
		return err
	}
	return ch.Send(command)
}

// Query runs one query exchange and returns the decoded reply text.
func (c *Client) Query(command string) (string, error) {
	ch, err := c.liveChannel()
	if err != nil {
		return "", err
	}
	return ch.Query(command)
}

// QueryNumeric runs a query and decodes the reply as a scalar.
func (c *Client) QueryNumeric(command string) (float64, error) {
	ch, err := c.liveChannel()
	if err != nil {
		return 0, err
	}
	return ch.QueryNumeric(command)
}

// QueryWaveform runs a query and decodes one waveform channel resampled to
// length samples.
func (c *Client) QueryWaveform(command string, channel, length int) ([]float64, error) {
	ch, err := c.liveChannel()
	if err != nil {
		return nil, err
	}
	return ch.QueryWaveform(command, channel, length)
}

// liveChannel snapshots the channel under the read lock. Exchanges run
// outside the session lock so Disconnect stays callable, while the channel's
// own lock keeps requests serialized.
func (c *Client) liveChannel() (*protocol.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != StateConnected || c.channel == nil {
		return nil, errors.ErrNotConnected
	}
	return c.channel, nil
}
