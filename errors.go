package lockbox

import "github.com/lumetric/lockbox-go/internal/errors"

// Re-export error types from the internal package.

// ConnectionError indicates that establishing the instrument connection
// failed (refused, unreachable, or timed out).
type ConnectionError = errors.ConnectionError

// WriteError indicates an I/O failure while writing a command.
type WriteError = errors.WriteError

// QueryError indicates an I/O failure while waiting for or reading a reply,
// including a silent instrument running out the read timeout.
type QueryError = errors.QueryError

// InvalidResponseError indicates a reply was received but could not be
// decoded as the requested type; Text carries the offending reply.
type InvalidResponseError = errors.InvalidResponseError

// LockboxError is the base interface for all client errors.
type LockboxError = errors.LockboxError

// Re-export sentinel errors from the internal package.
var (
	// ErrNotConnected indicates an operation was attempted while the
	// session is disconnected. No I/O is attempted.
	ErrNotConnected = errors.ErrNotConnected

	// ErrAlreadyConnected indicates Connect was called on a live session.
	ErrAlreadyConnected = errors.ErrAlreadyConnected

	// ErrInvalidChannel indicates a waveform channel outside the
	// instrument's configured channel count.
	ErrInvalidChannel = errors.ErrInvalidChannel
)
