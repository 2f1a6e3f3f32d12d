package transport

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipePair(t *testing.T) (*Conn, net.Conn) {
	t.Helper()

	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	return NewConn(client), server
}

func TestConn_WriteLine_AppendsTerminator(t *testing.T) {
	conn, server := pipePair(t)

	done := make(chan string, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := server.Read(buf)
		done <- string(buf[:n])
	}()

	require.NoError(t, conn.WriteLine("pid1:gain=0.5"))
	assert.Equal(t, "pid1:gain=0.5\r\n", <-done)
}

func TestConn_ReadBurst_CollectsReply(t *testing.T) {
	conn, server := pipePair(t)

	go func() {
		server.Write([]byte("gain=0.5\r\n"))
	}()

	got, err := conn.ReadBurst(500*time.Millisecond, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "gain=0.5\r\n", string(got))
}

func TestConn_ReadBurst_TimeoutWhenSilent(t *testing.T) {
	conn, _ := pipePair(t)

	_, err := conn.ReadBurst(30*time.Millisecond, 10*time.Millisecond)
	require.ErrorIs(t, err, ErrReadTimeout)
}

// A burst split across two writes inside the quiet window comes back as one
// reply.
func TestConn_ReadBurst_JoinsFragments(t *testing.T) {
	conn, server := pipePair(t)

	go func() {
		server.Write([]byte("1.0e-3\t2."))
		time.Sleep(10 * time.Millisecond)
		server.Write([]byte("0e-3\r\n"))
	}()

	got, err := conn.ReadBurst(500*time.Millisecond, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "1.0e-3\t2.0e-3\r\n", string(got))
}

func TestConn_ReadBurst_PropagatesClose(t *testing.T) {
	conn, server := pipePair(t)

	go func() {
		server.Close()
	}()

	_, err := conn.ReadBurst(500*time.Millisecond, 20*time.Millisecond)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrReadTimeout)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConn_Drain_DiscardsBanner(t *testing.T) {
	conn, server := pipePair(t)

	go func() {
		server.Write([]byte("LockBox RCI ready\r\nfirmware 2.41\r\n"))
	}()

	n, err := conn.Drain(60 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, len("LockBox RCI ready\r\nfirmware 2.41\r\n"), n)
}

func TestConn_Drain_QuietLineIsFine(t *testing.T) {
	conn, _ := pipePair(t)

	n, err := conn.Drain(30 * time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, n)
}
