package transport

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"time"
)

// LineEnding terminates every outbound command.
const LineEnding = "\r\n"

// ErrReadTimeout indicates the instrument sent nothing within the read
// timeout. Distinct from net timeouts so callers can test for it directly.
var ErrReadTimeout = errors.New("transport: read timeout")

// Conn wraps the TCP stream with buffered I/O and a write lock.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader

	mu sync.Mutex // serializes writes
}

// Dial connects to the instrument at addr within timeout.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Conn, error) {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewConn(conn), nil
}

// NewConn wraps an established net.Conn.
func NewConn(c net.Conn) *Conn {
	return &Conn{
		raw:    c,
		reader: bufio.NewReader(c),
	}
}

// WriteLine sends line followed by the protocol terminator.
func (c *Conn) WriteLine(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.raw.Write([]byte(line + LineEnding))
	return err
}

// ReadBurst collects one burst of reply bytes.
//
// The first read blocks up to initial; if nothing arrives, ErrReadTimeout is
// returned. Once bytes start flowing, reads continue until the stream stays
// quiet for the quiet window, which ends the burst normally. Any other I/O
// error aborts the burst.
func (c *Conn) ReadBurst(initial, quiet time.Duration) ([]byte, error) {
	var out bytes.Buffer
	buf := make([]byte, 4096)

	deadline := initial
	for {
		if err := c.raw.SetReadDeadline(time.Now().Add(deadline)); err != nil {
			return nil, err
		}

		n, err := c.reader.Read(buf)
		if n > 0 {
			out.Write(buf[:n])
		}

		if err != nil {
			if isTimeout(err) {
				if out.Len() == 0 {
					return nil, ErrReadTimeout
				}
				break
			}
			return out.Bytes(), err
		}

		deadline = quiet
	}

	c.raw.SetReadDeadline(time.Time{})
	return out.Bytes(), nil
}

// Drain reads and discards anything the instrument sends within window.
// Used once after connect to absorb the unsolicited greeting banner.
// Returns the number of bytes discarded.
func (c *Conn) Drain(window time.Duration) (int, error) {
	buf := make([]byte, 4096)
	total := 0

	deadline := time.Now().Add(window)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if err := c.raw.SetReadDeadline(time.Now().Add(remaining)); err != nil {
			return total, err
		}

		n, err := c.reader.Read(buf)
		total += n

		if err != nil {
			if isTimeout(err) {
				break
			}
			return total, err
		}
	}

	c.raw.SetReadDeadline(time.Time{})
	return total, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the instrument's network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
