package protocol

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lumetric/lockbox-go/internal/config"
	"github.com/lumetric/lockbox-go/internal/decode"
	"github.com/lumetric/lockbox-go/internal/errors"
	"github.com/lumetric/lockbox-go/internal/transport"
)

// Channel performs request/response exchanges on an established stream.
//
// A Channel exists only while the session is connected; the session creates
// one at connect and discards it at disconnect. All methods serialize behind
// an internal lock, preserving the one-outstanding-request discipline the
// fixed-delay correlation depends on.
type Channel struct {
	conn *transport.Conn
	log  *slog.Logger

	settleDelay time.Duration
	retryDelay  time.Duration
	pollWindow  time.Duration
	readTimeout time.Duration
	channels    int

	mu sync.Mutex // one in-flight exchange at a time
}

// NewChannel builds a channel over conn using the session's options.
// Options must already be normalized.
func NewChannel(conn *transport.Conn, opts *config.Options, log *slog.Logger) *Channel {
	return &Channel{
		conn:        conn,
		log:         log.With("component", "channel"),
		settleDelay: opts.SettleDelay,
		retryDelay:  opts.RetryDelay,
		pollWindow:  opts.PollWindow,
		readTimeout: opts.ReadTimeout,
		channels:    opts.ChannelCount,
	}
}

// Send writes a directive without waiting for a reply.
func (ch *Channel) Send(command string) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.log.Debug("send", "command", command)

	if err := ch.conn.WriteLine(command); err != nil {
		return &errors.WriteError{Command: command, Err: err}
	}
	return nil
}

// Query writes a query command, waits the settle delay, drains the reply
// burst, and returns the trimmed text after the first "=" found.
//
// A burst with no "="-bearing line yields an empty string and a nil error;
// directive-style callers distinguish empty-but-successful by content. A
// silent instrument surfaces as a QueryError once the read timeout elapses.
func (ch *Channel) Query(command string) (string, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	return ch.exchange(command)
}

// QueryNumeric performs Query and decodes the reply as a scalar with an
// optional SI magnitude suffix.
func (ch *Channel) QueryNumeric(command string) (float64, error) {
	reply, err := ch.Query(command)
	if err != nil {
		return 0, err
	}
	return decode.Numeric(reply)
}

// QueryWaveform performs Query and decodes the reply as one channel of an
// interleaved waveform, resampled to length samples.
//
// When the first reply carries no samples (nothing arrived, or the
// instrument echoed a channel name instead of data), the query is repeated
// exactly once after the retry delay. A second sample-less reply decodes to
// the all-zero buffer; callers treat that as the soft acquisition-failure
// signal. There is no further automatic retry.
func (ch *Channel) QueryWaveform(command string, channel, length int) ([]float64, error) {
	if channel < 1 || channel > ch.channels {
		return nil, fmt.Errorf("%w: %d of %d", errors.ErrInvalidChannel, channel, ch.channels)
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()

	reply, err := ch.exchange(command)
	if err != nil && !isEmptyReplyTimeout(err) {
		return nil, err
	}

	if err != nil || !decode.HasNumericPayload(reply) {
		ch.log.Debug("waveform reply carried no samples, retrying once",
			"command", command, "reply", reply)
		time.Sleep(ch.retryDelay)

		reply, err = ch.exchange(command)
		if err != nil && !isEmptyReplyTimeout(err) {
			return nil, err
		}
	}

	return decode.Waveform(reply, channel, length, ch.channels)
}

// exchange runs one write-settle-drain cycle. Callers hold ch.mu.
func (ch *Channel) exchange(command string) (string, error) {
	ch.log.Debug("query", "command", command)

	if err := ch.conn.WriteLine(command); err != nil {
		return "", &errors.WriteError{Command: command, Err: err}
	}

	time.Sleep(ch.settleDelay)

	raw, err := ch.conn.ReadBurst(ch.readTimeout, ch.pollWindow)
	if err != nil {
		return "", &errors.QueryError{Command: command, Err: err}
	}

	reply := extractReply(string(raw))
	ch.log.Debug("reply", "command", command, "reply", reply)
	return reply, nil
}

// extractReply scans the drained burst for the answer line. The instrument
// mixes echoes and banner noise into the stream; the answer is the first
// line carrying a key/value delimiter.
func extractReply(raw string) string {
	for _, line := range strings.SplitAfter(raw, "\n") {
		if idx := strings.IndexByte(line, '='); idx >= 0 {
			return strings.TrimSpace(line[idx+1:])
		}
	}
	return ""
}

// isEmptyReplyTimeout reports whether err is a query that simply produced no
// bytes. For waveform acquisition that is the instrument's slow-acquisition
// quirk and is treated like an empty reply, eligible for the single retry.
func isEmptyReplyTimeout(err error) bool {
	var qe *errors.QueryError
	if !stderrors.As(err, &qe) {
		return false
	}
	return stderrors.Is(qe.Err, transport.ErrReadTimeout)
}
